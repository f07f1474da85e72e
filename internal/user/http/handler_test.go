package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authHTTP "github.com/edulabs/classauth/internal/auth/http"
	"github.com/edulabs/classauth/internal/user/domain"
	"github.com/edulabs/classauth/internal/user/http/dto"
	httpMocks "github.com/edulabs/classauth/internal/user/http/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createAuthenticatedContext creates a test Gin context whose request carries
// an authenticated identity, as the authentication middleware would set it.
func createAuthenticatedContext(identity authDomain.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)
	c.Request = req.WithContext(authHTTP.WithIdentity(req.Context(), identity))

	return c, w
}

func TestUserHandler_MeHandler(t *testing.T) {
	identity := authDomain.NewIdentity(42, "student1", authDomain.RoleStudent, nil)

	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, createTestLogger())

		mockUseCase.On("Me", mock.Anything, identity).Return(&domain.User{
			ID:           42,
			Username:     "student1",
			PasswordHash: "argon2id$hash",
			Role:         "student",
			IsActive:     true,
			CreatedAt:    time.Now(),
		}, nil)

		c, w := createAuthenticatedContext(identity)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(42), response.ID)
		assert.Equal(t, "student1", response.Username)
		// The hash must never appear in a response body.
		assert.NotContains(t, w.Body.String(), "argon2id$hash")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Error_AccountRemoved", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, createTestLogger())

		mockUseCase.On("Me", mock.Anything, identity).Return(nil, domain.ErrUserNotFound)

		c, w := createAuthenticatedContext(identity)
		handler.MeHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_NoIdentityInContext", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, createTestLogger())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/v1/user/me", nil)

		handler.MeHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})
}
