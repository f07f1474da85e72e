package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authService "github.com/edulabs/classauth/internal/auth/service"
	"github.com/edulabs/classauth/internal/httputil"
	"github.com/edulabs/classauth/internal/metrics"
)

const testSigningSecret = "test-signing-secret-0123456789abcdef"

// setupProtectedRouter builds a router with the authentication middleware and
// a probe route that echoes the authenticated identity.
func setupProtectedRouter(t *testing.T, tokenService authService.TokenService) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(AuthenticationMiddleware(tokenService, metrics.NewNoOpBusinessMetrics(), createTestLogger()))
	router.GET("/probe", func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	return router
}

func errorBody(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var response httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response.Error
}

func TestAuthenticationMiddleware(t *testing.T) {
	tokenService, err := authService.NewTokenService(testSigningSecret, time.Hour)
	require.NoError(t, err)

	identity := authDomain.NewIdentity(42, "student1", authDomain.RoleStudent, nil)
	token, _, err := tokenService.Issue(identity)
	require.NoError(t, err)

	router := setupProtectedRouter(t, tokenService)

	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})

	t.Run("Success_CaseInsensitiveScheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication token is missing", errorBody(t, w))
	})

	t.Run("Error_EmptyBearerToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication token is missing", errorBody(t, w))
	})

	t.Run("Error_NonBearerScheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication token is missing", errorBody(t, w))
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired authentication token", errorBody(t, w))
	})

	t.Run("Error_TamperedToken", func(t *testing.T) {
		tampered := token[:len(token)-4] + "AAAA"
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+tampered)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		// Tampering and expiry are indistinguishable in the response.
		assert.Equal(t, "Invalid or expired authentication token", errorBody(t, w))
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		expiredService, err := authService.NewTokenService(
			testSigningSecret,
			time.Hour,
			authService.WithTimeFunc(func() time.Time { return past }),
		)
		require.NoError(t, err)
		expiredToken, _, err := expiredService.Issue(identity)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+expiredToken)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired authentication token", errorBody(t, w))
	})
}

func TestRequireCapability(t *testing.T) {
	tokenService, err := authService.NewTokenService(testSigningSecret, time.Hour)
	require.NoError(t, err)

	newRouter := func(capability authDomain.Capability) *gin.Engine {
		router := gin.New()
		router.Use(AuthenticationMiddleware(tokenService, metrics.NewNoOpBusinessMetrics(), createTestLogger()))
		router.POST("/probe",
			RequireCapability(capability, metrics.NewNoOpBusinessMetrics(), createTestLogger()),
			func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
		)
		return router
	}

	issue := func(t *testing.T, role authDomain.Role) string {
		t.Helper()
		token, _, err := tokenService.Issue(authDomain.NewIdentity(42, "someone", role, nil))
		require.NoError(t, err)
		return token
	}

	t.Run("Success_TeacherCanWrite", func(t *testing.T) {
		router := newRouter(authDomain.WriteCapability)
		req := httptest.NewRequest(http.MethodPost, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, authDomain.RoleTeacher))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_StudentCannotWrite", func(t *testing.T) {
		router := newRouter(authDomain.WriteCapability)
		req := httptest.NewRequest(http.MethodPost, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, authDomain.RoleStudent))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You do not have permission to perform this action", errorBody(t, w))
	})

	t.Run("Error_StudentCannotDelete", func(t *testing.T) {
		router := newRouter(authDomain.DeleteCapability)
		req := httptest.NewRequest(http.MethodPost, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, authDomain.RoleStudent))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_UnauthenticatedBeatsForbidden", func(t *testing.T) {
		// A request that is both unauthenticated and unauthorized fails on
		// authentication first.
		router := newRouter(authDomain.WriteCapability)
		req := httptest.NewRequest(http.MethodPost, "/probe", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
