package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulabs/classauth/internal/auth/http/dto"
	authUseCase "github.com/edulabs/classauth/internal/auth/usecase"
	"github.com/edulabs/classauth/internal/httputil"

	customValidation "github.com/edulabs/classauth/internal/validation"
)

// TokenHandler handles HTTP requests for token issuance.
type TokenHandler struct {
	loginUseCase authUseCase.LoginUseCase
	tokenTTL     time.Duration
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	loginUseCase authUseCase.LoginUseCase,
	tokenTTL time.Duration,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		loginUseCase: loginUseCase,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// IssueTokenHandler verifies credentials and issues a signed access token.
// POST /auth/token - no authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, its lifetime in seconds, and the user summary.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationError(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationError(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.loginUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Username: req.Username,
		Password: req.Password,
		CourseID: req.CourseID,
	})
	if err != nil {
		httputil.HandleError(c, err, h.logger)
		return
	}

	response := dto.NewTokenResponse(output.Token, int64(h.tokenTTL.Seconds()), output.Identity)
	c.JSON(http.StatusOK, response)
}
