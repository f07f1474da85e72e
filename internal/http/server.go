// Package http provides the API server: routing, cross-cutting middleware,
// and health endpoints.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	authHTTP "github.com/edulabs/classauth/internal/auth/http"
	authService "github.com/edulabs/classauth/internal/auth/service"
	"github.com/edulabs/classauth/internal/config"
	courseHTTP "github.com/edulabs/classauth/internal/course/http"
	"github.com/edulabs/classauth/internal/httputil"
	"github.com/edulabs/classauth/internal/metrics"
	userHTTP "github.com/edulabs/classauth/internal/user/http"
)

// ServerParams bundles the dependencies needed to assemble the API server.
type ServerParams struct {
	Config          *config.Config
	DB              *sql.DB
	TokenService    authService.TokenService
	BusinessMetrics metrics.BusinessMetrics
	MetricsProvider *metrics.Provider // nil when metrics are disabled
	TokenHandler    *authHTTP.TokenHandler
	UserHandler     *userHTTP.UserHandler
	CourseHandler   *courseHTTP.CourseHandler
	Logger          *slog.Logger
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	params ServerParams
	logger *slog.Logger
}

// NewServer creates a new API server with all routes registered.
func NewServer(params ServerParams) *Server {
	s := &Server{
		params: params,
		logger: params.Logger,
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", params.Config.ServerHost, params.Config.ServerPort),
		Handler:      s.setupRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the gin engine with middleware and routes.
func (s *Server) setupRouter() *gin.Engine {
	cfg := s.params.Config

	router := gin.New()

	// Panics become a JSON 500, never an HTML error page.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		s.logger.Error("panic recovered",
			slog.Any("error", err),
			slog.String("path", c.Request.URL.Path),
			slog.String("method", c.Request.Method),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			httputil.ErrorResponse{Error: httputil.MsgInternal})
	}))
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.params.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			s.params.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Unmatched routes get the JSON envelope too.
	router.NoRoute(httputil.NoRouteHandler())

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Token issuance is the only unauthenticated API route.
	tokenRoutes := router.Group("/auth")
	if cfg.RateLimitTokenEnabled {
		tokenRoutes.Use(authHTTP.TokenRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec, cfg.RateLimitTokenBurst, s.logger))
	}
	tokenRoutes.POST("/token", s.params.TokenHandler.IssueTokenHandler)

	authenticated := router.Group("/v1")
	authenticated.Use(authHTTP.AuthenticationMiddleware(
		s.params.TokenService, s.params.BusinessMetrics, s.logger))

	authenticated.GET("/user/me", s.params.UserHandler.MeHandler)

	s.registerCourseRoutes(authenticated)

	return router
}

// registerCourseRoutes mounts course content routes with per-route capability checks.
func (s *Server) registerCourseRoutes(group *gin.RouterGroup) {
	read := authHTTP.RequireCapability(authDomain.ReadCapability, s.params.BusinessMetrics, s.logger)
	write := authHTTP.RequireCapability(authDomain.WriteCapability, s.params.BusinessMetrics, s.logger)
	del := authHTTP.RequireCapability(authDomain.DeleteCapability, s.params.BusinessMetrics, s.logger)

	handler := s.params.CourseHandler
	courses := group.Group("/courses")

	courses.GET("/:course_id", read, handler.GetCourseHandler)

	courses.POST("/:course_id/sections", write, handler.CreateSectionHandler)
	courses.GET("/:course_id/sections/:section_id", read, handler.GetSectionHandler)
	courses.PUT("/:course_id/sections/:section_id", write, handler.UpdateSectionHandler)
	courses.DELETE("/:course_id/sections/:section_id", del, handler.DeleteSectionHandler)

	courses.POST("/:course_id/activities", write, handler.CreateActivityHandler)
	courses.GET("/:course_id/activities/:activity_id", read, handler.GetActivityHandler)
	courses.PUT("/:course_id/activities/:activity_id", write, handler.UpdateActivityHandler)
	courses.DELETE("/:course_id/activities/:activity_id", del, handler.DeleteActivityHandler)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can actually serve requests,
// which requires a reachable database.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.params.DB == nil {
		components["database"] = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.params.DB.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
		}
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
