// AngelaMos | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, provider *fakeUserProvider) chi.Router {
	t.Helper()

	handler := NewHandler(newTestService(t, provider))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func postJSON(
	router chi.Router,
	path, body string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// Short secrets are allowed: there is no length floor on passwords, only
// the upper bound. The whole admission flow has to work with one.
func TestRegisterApproveLoginWithShortSecret(t *testing.T) {
	provider := newFakeUserProvider()
	router := newTestRouter(t, provider)

	rec := postJSON(router, "/auth/register", `{
		"name": "Alice",
		"username": "alice",
		"email": "alice@example.com",
		"password": "s3cret!"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.UserID)

	// Not approved yet: the correct secret still cannot get in.
	rec = postJSON(router, "/auth/login", `{
		"username": "alice",
		"password": "s3cret!"
	}`)
	require.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	provider.users["alice"].IsApproved = true

	rec = postJSON(router, "/auth/login", `{
		"username": "alice",
		"password": "s3cret!"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "alice", login.User.Username)
}

func TestRegisterRejectsMissingPassword(t *testing.T) {
	router := newTestRouter(t, newFakeUserProvider())

	rec := postJSON(router, "/auth/register", `{
		"name": "Alice",
		"username": "alice",
		"email": "alice@example.com",
		"password": ""
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
