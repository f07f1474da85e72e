package usecase

import (
	"context"
	"time"

	authDomain "github.com/edulabs/classauth/internal/auth/domain"
	"github.com/edulabs/classauth/internal/metrics"
	"github.com/edulabs/classauth/internal/user/domain"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Me records metrics for profile lookups.
func (u *userUseCaseWithMetrics) Me(
	ctx context.Context,
	identity authDomain.Identity,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Me(ctx, identity)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "me", status)
	u.metrics.RecordDuration(ctx, "user", "me", time.Since(start), status)

	return user, err
}

// Create records metrics for account creation.
func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "user_create", status)
	u.metrics.RecordDuration(ctx, "user", "user_create", time.Since(start), status)

	return user, err
}
