package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskora/taskora-api/internal/domain"
	"github.com/taskora/taskora-api/internal/testutil"
)

func projectPath(id uint) string {
	return fmt.Sprintf("/projects/%d", id)
}

func taskPath(projectID, taskID uint) string {
	return fmt.Sprintf("/projects/%d/tasks/%d", projectID, taskID)
}

func TestProjectHandler_CreateAndList(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	ownerToken := ts.TokenFor(t, owner)
	otherToken := ts.TokenFor(t, other)

	// Create
	resp := testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/projects"),
		map[string]string{"name": "Demo"}, ownerToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var created domain.Project
	testutil.AssertJSONResponse(t, resp, &created)
	assert.Equal(t, "Demo", created.Name)
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.Equal(t, domain.ProjectStatusActive, created.Status)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Missing name
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/projects"),
		map[string]string{"description": "no name"}, ownerToken)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "name")

	// A second project to check ordering
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPost, ts.APIURL("/projects"),
		map[string]string{"name": "Newer"}, ownerToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	// List is scoped to the owner, newest first
	resp = testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/projects"), nil, ownerToken)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var projects []domain.Project
	testutil.AssertJSONResponse(t, resp, &projects)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Name)
	assert.Equal(t, "Demo", projects[1].Name)

	// Repeated read with no writes is identical
	resp = testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/projects"), nil, ownerToken)
	defer resp.Body.Close()
	var again []domain.Project
	testutil.AssertJSONResponse(t, resp, &again)
	assert.Equal(t, projects, again)

	// Another user sees none of them
	resp = testutil.DoAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/projects"), nil, otherToken)
	defer resp.Body.Close()
	var othersProjects []domain.Project
	testutil.AssertJSONResponse(t, resp, &othersProjects)
	assert.Empty(t, othersProjects)

	// Unauthenticated list
	plain, err := http.Get(ts.APIURL("/projects"))
	assert.NoError(t, err)
	defer plain.Body.Close()
	testutil.AssertStatusCode(t, plain, http.StatusUnauthorized)
}

func TestProjectHandler_OwnershipIsolation(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	stranger, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	admin, _ := testutil.NewUserBuilder().WithRole(domain.RoleAdmin).Build(t, ts.DB.DB)

	project := testutil.NewProjectBuilder(owner.ID).WithName("Private").Build(t, ts.DB.DB)
	url := ts.APIURL(projectPath(project.ID))

	// Stranger cannot update or delete
	resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, url,
		map[string]string{"name": "Hijacked"}, ts.TokenFor(t, stranger))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)

	resp = testutil.DoAuthenticatedRequest(t, http.MethodDelete, url, nil, ts.TokenFor(t, stranger))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusForbidden)

	// Admin override applies
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, url,
		map[string]string{"description": "seen by admin"}, ts.TokenFor(t, admin))
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var updated domain.Project
	testutil.AssertJSONResponse(t, resp, &updated)
	assert.Equal(t, "Private", updated.Name, "partial update keeps unspecified fields")
	assert.Equal(t, "seen by admin", updated.Description)
}

func TestProjectHandler_UpdateErrors(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, owner)

	// Malformed id
	resp := testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/projects/abc"),
		map[string]string{"name": "x"}, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)

	// Unknown id is a 404 even though the caller owns nothing
	resp = testutil.DoAuthenticatedRequest(t, http.MethodPut, ts.APIURL("/projects/999999"),
		map[string]string{"name": "x"}, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestProjectHandler_DeleteIsNotIdempotent(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
	token := ts.TokenFor(t, owner)
	project := testutil.NewProjectBuilder(owner.ID).Build(t, ts.DB.DB)
	url := ts.APIURL(projectPath(project.ID))

	resp := testutil.DoAuthenticatedRequest(t, http.MethodDelete, url, nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNoContent)

	resp = testutil.DoAuthenticatedRequest(t, http.MethodDelete, url, nil, token)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}
