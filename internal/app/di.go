// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authHTTP "github.com/edulabs/classauth/internal/auth/http"
	authService "github.com/edulabs/classauth/internal/auth/service"
	authUsecase "github.com/edulabs/classauth/internal/auth/usecase"
	"github.com/edulabs/classauth/internal/config"
	courseHTTP "github.com/edulabs/classauth/internal/course/http"
	courseRepository "github.com/edulabs/classauth/internal/course/repository"
	courseUsecase "github.com/edulabs/classauth/internal/course/usecase"
	"github.com/edulabs/classauth/internal/database"
	"github.com/edulabs/classauth/internal/http"
	"github.com/edulabs/classauth/internal/metrics"
	userHTTP "github.com/edulabs/classauth/internal/user/http"
	userRepository "github.com/edulabs/classauth/internal/user/repository"
	userUsecase "github.com/edulabs/classauth/internal/user/usecase"
)

// userRepo is implemented by both SQL user repositories; it covers the needs
// of the login flow (lookup by username) and the user module (create, get).
type userRepo interface {
	authUsecase.UserRepository
	userUsecase.UserRepository
}

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB

	// Managers and services
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	tokenService    authService.TokenService
	passwordService authService.PasswordService

	// Repositories
	userRepo       userRepo
	courseRepo     courseUsecase.CourseRepository
	enrollmentRepo courseUsecase.EnrollmentRepository

	// Use Cases
	loginUseCase  authUsecase.LoginUseCase
	userUseCase   userUsecase.UserUseCase
	courseUseCase courseUsecase.CourseUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	tokenServiceInit    sync.Once
	passwordSvcInit     sync.Once
	userRepoInit        sync.Once
	courseRepoInit      sync.Once
	enrollmentRepoInit  sync.Once
	loginUseCaseInit    sync.Once
	userUseCaseInit     sync.Once
	courseUseCaseInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op implementation is used when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// TokenService returns the token signing and validation service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		tokenService, err := authService.NewTokenService(c.config.AuthSigningSecret, c.config.AuthTokenTTL)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = tokenService
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordSvcInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userRepo, error) {
	c.userRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.userRepo = userRepository.NewMySQLUserRepository(db, c.config.DBQueryTimeout)
		case "postgres":
			c.userRepo = userRepository.NewPostgreSQLUserRepository(db, c.config.DBQueryTimeout)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// CourseRepository returns the course repository instance.
func (c *Container) CourseRepository() (courseUsecase.CourseRepository, error) {
	c.courseRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["courseRepo"] = fmt.Errorf("failed to get database for course repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.courseRepo = courseRepository.NewMySQLCourseRepository(db, c.config.DBQueryTimeout)
		case "postgres":
			c.courseRepo = courseRepository.NewPostgreSQLCourseRepository(db, c.config.DBQueryTimeout)
		default:
			c.initErrors["courseRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["courseRepo"]; exists {
		return nil, storedErr
	}
	return c.courseRepo, nil
}

// EnrollmentRepository returns the enrollment repository instance.
func (c *Container) EnrollmentRepository() (courseUsecase.EnrollmentRepository, error) {
	c.enrollmentRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["enrollmentRepo"] = fmt.Errorf("failed to get database for enrollment repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.enrollmentRepo = courseRepository.NewMySQLEnrollmentRepository(db, c.config.DBQueryTimeout)
		case "postgres":
			c.enrollmentRepo = courseRepository.NewPostgreSQLEnrollmentRepository(db, c.config.DBQueryTimeout)
		default:
			c.initErrors["enrollmentRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["enrollmentRepo"]; exists {
		return nil, storedErr
	}
	return c.enrollmentRepo, nil
}

// LoginUseCase returns the login use case instance.
func (c *Container) LoginUseCase() (authUsecase.LoginUseCase, error) {
	c.loginUseCaseInit.Do(func() {
		useCase, err := c.initLoginUseCase()
		if err != nil {
			c.initErrors["loginUseCase"] = err
			return
		}
		c.loginUseCase = useCase
	})
	if storedErr, exists := c.initErrors["loginUseCase"]; exists {
		return nil, storedErr
	}
	return c.loginUseCase, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UserUseCase, error) {
	c.userUseCaseInit.Do(func() {
		useCase, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUseCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// CourseUseCase returns the course use case instance.
func (c *Container) CourseUseCase() (courseUsecase.CourseUseCase, error) {
	c.courseUseCaseInit.Do(func() {
		useCase, err := c.initCourseUseCase()
		if err != nil {
			c.initErrors["courseUseCase"] = err
			return
		}
		c.courseUseCase = useCase
	})
	if storedErr, exists := c.initErrors["courseUseCase"]; exists {
		return nil, storedErr
	}
	return c.courseUseCase, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initLoginUseCase creates the login use case with all its dependencies.
func (c *Container) initLoginUseCase() (authUsecase.LoginUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for login use case: %w", err)
	}

	enrollmentRepo, err := c.EnrollmentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment repository for login use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for login use case: %w", err)
	}

	useCase := authUsecase.NewLoginUseCase(userRepo, enrollmentRepo, tokenService, c.PasswordService())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for login use case: %w", err)
	}

	return authUsecase.NewLoginUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UserUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	useCase := userUsecase.NewUserUseCase(userRepo, c.PasswordService())

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
	}

	return userUsecase.NewUserUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initCourseUseCase creates the course use case with all its dependencies.
func (c *Container) initCourseUseCase() (courseUsecase.CourseUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for course use case: %w", err)
	}

	courseRepo, err := c.CourseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get course repository for course use case: %w", err)
	}

	enrollmentRepo, err := c.EnrollmentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment repository for course use case: %w", err)
	}

	useCase := courseUsecase.NewCourseUseCase(txManager, courseRepo, enrollmentRepo)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for course use case: %w", err)
	}

	return courseUsecase.NewCourseUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	loginUseCase, err := c.LoginUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get login use case for http server: %w", err)
	}

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	courseUseCase, err := c.CourseUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get course use case for http server: %w", err)
	}

	server := http.NewServer(http.ServerParams{
		Config:          c.config,
		DB:              db,
		TokenService:    tokenService,
		BusinessMetrics: businessMetrics,
		MetricsProvider: metricsProvider,
		TokenHandler:    authHTTP.NewTokenHandler(loginUseCase, c.config.AuthTokenTTL, logger),
		UserHandler:     userHTTP.NewUserHandler(userUseCase, logger),
		CourseHandler:   courseHTTP.NewCourseHandler(courseUseCase, logger),
		Logger:          logger,
	})

	return server, nil
}
