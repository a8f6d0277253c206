package domain

// Authorization policy for all protected resources. Handlers call these
// instead of inlining role checks so the rules cannot drift between
// endpoints. Existence is always checked before ownership: a missing
// resource is a 404 even for callers that would have been forbidden.

// CanModify reports whether the caller may read or mutate a resource owned
// by ownerID. Owners and admins qualify.
func CanModify(ownerID uint, id Identity) bool {
	return id.UserID == ownerID || id.Role == RoleAdmin
}

// IsAdmin reports whether the caller holds the ADMIN role. User management
// endpoints require this unconditionally.
func IsAdmin(id Identity) bool {
	return id.Role == RoleAdmin
}

// CanEditUser reports whether the caller may edit the given user record.
// Self-service edits and admin edits both qualify.
func CanEditUser(targetUserID uint, id Identity) bool {
	return id.UserID == targetUserID || id.Role == RoleAdmin
}
