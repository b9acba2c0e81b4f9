// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

type stubVerifier struct {
	claims map[string]*TokenClaims
}

func (s *stubVerifier) VerifyToken(
	_ context.Context,
	token string,
) (*TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, core.ErrTokenInvalid
	}
	return claims, nil
}

func newProtectedHandler(verifier TokenVerifier, adminOnly bool) http.Handler {
	var handler http.Handler = http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			core.OK(w, map[string]string{
				"userId": GetUserID(r.Context()),
				"role":   GetUserRole(r.Context()),
			})
		},
	)

	if adminOnly {
		handler = RequireAdmin(handler)
	}
	return Authenticator(verifier)(handler)
}

func testVerifier() *stubVerifier {
	return &stubVerifier{claims: map[string]*TokenClaims{
		"user-token": {
			UserID:   "user-1",
			Username: "alice",
			Role:     "user",
		},
		"admin-token": {
			UserID:   "admin-1",
			Username: "root",
			Role:     "admin",
		},
	}}
}

func doRequest(handler http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticatorMissingToken(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), false)

	rec := doRequest(handler, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), false)

	rec := doRequest(handler, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorValidToken(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), false)

	rec := doRequest(handler, "user-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireAdminRejectsUserRole(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), true)

	rec := doRequest(handler, "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), true)

	rec := doRequest(handler, "admin-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin-1")
}

func TestRequireAdminInvalidTokenIsUnauthorized(t *testing.T) {
	handler := newProtectedHandler(testVerifier(), true)

	// Authentication is checked first: a bad token on an admin route is
	// a 401, not a 403.
	rec := doRequest(handler, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func newOptionalHandler(verifier TokenVerifier) http.Handler {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		core.OK(w, map[string]string{
			"userId": GetUserID(r.Context()),
			"role":   GetUserRole(r.Context()),
		})
	})
	return OptionalAuthenticator(verifier)(handler)
}

func TestOptionalAuthenticatorAnonymous(t *testing.T) {
	handler := newOptionalHandler(testVerifier())

	rec := doRequest(handler, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userId":""`)
}

func TestOptionalAuthenticatorValidToken(t *testing.T) {
	handler := newOptionalHandler(testVerifier())

	rec := doRequest(handler, "user-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestOptionalAuthenticatorInvalidToken(t *testing.T) {
	handler := newOptionalHandler(testVerifier())

	// A presented credential that fails verification is rejected; it is
	// not downgraded to an anonymous request.
	rec := doRequest(handler, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, ExtractToken(req))
		})
	}
}
