package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authService "github.com/edulabs/classauth/internal/auth/service"
	"github.com/edulabs/classauth/internal/httputil"
	"github.com/edulabs/classauth/internal/metrics"

	apperrors "github.com/edulabs/classauth/internal/errors"
)

// AuthenticationMiddleware authenticates requests via a Bearer token in the
// Authorization header.
//
// A missing header, a header without the bearer scheme, and an empty token all
// fail with the missing-token error; any presented token that does not
// validate fails with the generic invalid-token error. The two cases carry
// distinct messages, but nothing beyond that is revealed about why a token was
// rejected.
//
// On success the validated identity is stored in the request context for
// downstream middleware and handlers via GetIdentity().
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			businessMetrics.RecordAuthRejection(c.Request.Context(), "token_missing")
			httputil.HandleError(c, apperrors.ErrMissingToken, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive scheme)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			businessMetrics.RecordAuthRejection(c.Request.Context(), "token_missing")
			httputil.HandleError(c, apperrors.ErrMissingToken, logger)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			businessMetrics.RecordAuthRejection(c.Request.Context(), "token_missing")
			httputil.HandleError(c, apperrors.ErrMissingToken, logger)
			c.Abort()
			return
		}

		identity, err := tokenService.Validate(token)
		if err != nil {
			logger.Debug("authentication failed: token rejected",
				slog.String("error", err.Error()))
			businessMetrics.RecordAuthRejection(c.Request.Context(), "token_invalid")
			httputil.HandleError(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("user_id", identity.UserID),
			slog.String("role", string(identity.Role)))

		c.Next()
	}
}

// RequireCapability authorizes the authenticated identity for one capability.
//
// Must run after AuthenticationMiddleware. The capability set was resolved
// from the role when the identity was built, so this check never touches the
// store. A missing identity means the middleware chain is miswired and fails
// closed with the missing-token error.
func RequireCapability(
	capability authDomain.Capability,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			logger.Error("authorization failed: no identity in context")
			httputil.HandleError(c, apperrors.ErrMissingToken, logger)
			c.Abort()
			return
		}

		if !identity.Can(capability) {
			logger.Debug("authorization failed: capability denied",
				slog.Int64("user_id", identity.UserID),
				slog.String("role", string(identity.Role)),
				slog.String("capability", string(capability)))
			businessMetrics.RecordAuthRejection(c.Request.Context(), "capability_denied")
			httputil.HandleError(c, authDomain.ErrCapabilityDenied, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
