package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/identity/internal/identity/service"
	"github.com/verdantlabs/identity/internal/identity/store/drivers/sqlite"
	"github.com/verdantlabs/identity/pkg/cryptox"
	"github.com/verdantlabs/identity/pkg/identsdk"
	"github.com/verdantlabs/identity/pkg/jwtx"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec := jwtx.NewCodec([]byte("test-secret"), "identity-test", 15*time.Minute, 24*time.Hour)

	router := NewRouter("test", st, slog.Default())
	router.AuthService = &service.AuthService{
		Store:  st,
		Hasher: cryptox.NewHasher(4),
		Codec:  codec,
	}
	router.ApplyRoutes()
	return router
}

func doJSON(t *testing.T, router *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "alice@example.com",
		"username": "alice",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user identsdk.UserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, []string{"USER"}, user.Roles)
	require.True(t, user.IsActive)

	// The raw body must never contain the password hash.
	require.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]string{"email": "dup@example.com", "password": "correct-horse"}
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/v1/auth/register", payload).Code)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp identsdk.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, identsdk.ErrorCodeRegistrationFailed, resp.Error)
}

func TestRegisterEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp identsdk.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, identsdk.ErrorCodeValidationFailed, resp.Code)
	require.Contains(t, resp.Details, "email")
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "bob@example.com",
		"password": "correct-horse",
	})

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "bob@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var tokens identsdk.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tokens))
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, "Bearer", tokens.TokenType)
	require.Equal(t, int((15 * time.Minute).Seconds()), tokens.ExpiresIn)
}

func TestLoginEndpointBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "carol@example.com",
		"password": "correct-horse",
	})

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "carol@example.com",
		"password": "wrong-horse",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown email yields an identical response body.
	other := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, rec.Code, other.Code)
	require.JSONEq(t, rec.Body.String(), other.Body.String())
}

func TestRefreshEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "dave@example.com",
		"password": "correct-horse",
	})
	login := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "dave@example.com",
		"password": "correct-horse",
	})

	var tokens identsdk.TokenResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&tokens))

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/refresh", map[string]string{
		"refresh_token": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var refreshed identsdk.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&refreshed))
	require.NotEmpty(t, refreshed.AccessToken)
	require.Empty(t, refreshed.RefreshToken)
}

func TestRefreshEndpointRejectsAccessToken(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/auth/register", map[string]string{
		"email":    "erin@example.com",
		"password": "correct-horse",
	})
	login := doJSON(t, router, http.MethodPost, "/v1/auth/login", map[string]string{
		"email":    "erin@example.com",
		"password": "correct-horse",
	})

	var tokens identsdk.TokenResponse
	require.NoError(t, json.NewDecoder(login.Body).Decode(&tokens))

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/refresh", map[string]string{
		"refresh_token": tokens.AccessToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health identsdk.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}
