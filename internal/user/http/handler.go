// Package http provides HTTP handlers for user account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/edulabs/classauth/internal/auth/http"
	"github.com/edulabs/classauth/internal/httputil"
	"github.com/edulabs/classauth/internal/user/http/dto"
	userUseCase "github.com/edulabs/classauth/internal/user/usecase"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(useCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: useCase,
		logger:      logger,
	}
}

// MeHandler returns the account behind the request's token.
// GET /v1/user/me - requires authentication.
func (h *UserHandler) MeHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleError(c, apperrors.ErrMissingToken, h.logger)
		return
	}

	user, err := h.userUseCase.Me(c.Request.Context(), identity)
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
