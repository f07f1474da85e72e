package http

import (
	"bytes"
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
	"github.com/edulabs/classauth/internal/auth/http/dto"
	httpMocks "github.com/edulabs/classauth/internal/auth/http/mocks"
	authUseCase "github.com/edulabs/classauth/internal/auth/usecase"
	"github.com/edulabs/classauth/internal/httputil"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// createTestLogger creates a test logger that discards output.
func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestContext creates a test Gin context with the given request body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// setupTokenTestHandler creates a test token handler with mocked dependencies.
func setupTokenTestHandler(t *testing.T) (*TokenHandler, *httpMocks.MockLoginUseCase) {
	t.Helper()

	mockLoginUseCase := &httpMocks.MockLoginUseCase{}
	handler := NewTokenHandler(mockLoginUseCase, time.Hour, createTestLogger())

	return handler, mockLoginUseCase
}

func TestTokenHandler_IssueTokenHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		identity := authDomain.NewIdentity(42, "student1", authDomain.RoleStudent, nil)
		mockUseCase.On("Login", mock.Anything, authUseCase.LoginInput{
			Username: "student1",
			Password: "correct-password",
		}).Return(&authUseCase.LoginOutput{
			Token:     "signed.jwt.token",
			ExpiresAt: time.Now().Add(time.Hour),
			Identity:  identity,
		}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "student1",
			Password: "correct-password",
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed.jwt.token", response.Token)
		assert.Equal(t, int64(3600), response.ExpiresIn)
		assert.Equal(t, int64(42), response.User.ID)
		assert.Equal(t, "student1", response.User.Username)
		assert.Equal(t, "student", response.User.Role)
	})

	t.Run("Error_MalformedJSON", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/auth/token", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("{not json")))

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Error_BlankUsername", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "   ",
			Password: "whatever",
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Error_MissingPassword", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/auth/token", map[string]string{
			"username": "student1",
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_BadCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, apperrors.ErrInvalidCredentials).Once()

		c, w := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "student1",
			Password: "wrong-password",
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Invalid username or password", response.Error)
	})

	t.Run("Error_UnknownUserSameBodyAsWrongPassword", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, apperrors.ErrInvalidCredentials).Twice()

		c1, w1 := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "ghost", Password: "whatever",
		})
		handler.IssueTokenHandler(c1)

		c2, w2 := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "student1", Password: "wrong-password",
		})
		handler.IssueTokenHandler(c2)

		assert.Equal(t, w1.Code, w2.Code)
		assert.JSONEq(t, w1.Body.String(), w2.Body.String())
	})

	t.Run("Error_NotEnrolledInScopedCourse", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, authDomain.ErrCourseAccessDenied).Once()

		courseID := int64(3)
		c, w := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "student1",
			Password: "correct-password",
			CourseID: &courseID,
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, apperrors.Wrap(apperrors.ErrUnavailable, "failed to get user by username")).Once()

		c, w := createTestContext(http.MethodPost, "/auth/token", dto.LoginRequest{
			Username: "student1",
			Password: "correct-password",
		})

		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
