package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/testutil"
)

func TestUserHandler_AdminOnly(t *testing.T) {
	ts := testutil.NewTestServer(t)

	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, ts.DB.DB)
	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	adminToken := ts.TokenFor(t, admin)
	userToken := ts.TokenFor(t, user)

	// List as admin
	resp := testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/users"), nil, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var users []domain.User
	testutil.AssertJSONResponse(t, resp, &users)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash, "password hash never leaves the API")
	}

	// List as regular user
	resp = testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/users"), nil, userToken)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "Access denied")

	// Create as admin
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/users"),
		map[string]string{
			"name":     "New Member",
			"email":    "member@taskora.test",
			"password": "memberpass123",
			"role":     "USER",
		}, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created domain.User
	testutil.AssertJSONResponse(t, resp, &created)
	assert.Equal(t, "member@taskora.test", created.Email)
	assert.Equal(t, domain.RoleUser, created.Role)

	// The created user can log in
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/auth/login"),
		map[string]string{"email": "member@taskora.test", "password": "memberpass123"}, "")
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	// Create as regular user
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/users"),
		map[string]string{
			"name":     "Sneaky",
			"email":    "sneaky@taskora.test",
			"password": "sneakypass123",
			"role":     "ADMIN",
		}, userToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)

	// Create with missing fields
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/users"),
		map[string]string{"name": "No Email"}, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestUserHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)

	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, ts.DB.DB)
	user, _ := testutil.NewUserBuilder().WithName("Before").Build(t, ts.DB.DB)
	adminToken := ts.TokenFor(t, admin)

	url := ts.APIURL(fmt.Sprintf("/users/%d", user.ID))

	resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, url,
		map[string]string{"name": "After", "role": "ADMIN"}, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated domain.User
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, domain.RoleAdmin, updated.Role)

	// Invalid role value
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, url,
		map[string]string{"role": "SUPERUSER"}, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	// Unknown user
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/users/999999"),
		map[string]string{"name": "Ghost"}, adminToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	// Regular users cannot edit anyone
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, url,
		map[string]string{"name": "Self Serve"}, ts.TokenFor(t, user))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	ts := testutil.NewTestServer(t)

	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, ts.DB.DB)
	user, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	// The profile route is gated on the ADMIN role.
	resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/user/profile"),
		map[string]string{"bio": "just me"}, ts.TokenFor(t, user))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)

	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/user/profile"),
		map[string]string{"name": "Root Admin", "bio": "keeper of the board"}, ts.TokenFor(t, admin))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated domain.User
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, admin.ID, updated.ID, "the caller's own row is updated")
	assert.Equal(t, "Root Admin", updated.Name)
	assert.Equal(t, "keeper of the board", updated.Bio)
}
