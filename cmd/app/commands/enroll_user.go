package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	courseUseCase "github.com/edulabs/classauth/internal/course/usecase"
)

// RunEnrollUser enrolls a user in a course. Enrolling an already-enrolled user
// is a no-op, so the command can be re-run safely.
//
// Requirements: Database must be migrated and accessible.
func RunEnrollUser(
	ctx context.Context,
	useCase courseUseCase.CourseUseCase,
	logger *slog.Logger,
	writer io.Writer,
	userID int64,
	courseID int64,
) error {
	logger.Info("enrolling user in course",
		slog.Int64("user_id", userID),
		slog.Int64("course_id", courseID),
	)

	if err := useCase.Enroll(ctx, userID, courseID); err != nil {
		return fmt.Errorf("failed to enroll user: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "User %d enrolled in course %d\n", userID, courseID)

	logger.Info("enrollment completed",
		slog.Int64("user_id", userID),
		slog.Int64("course_id", courseID),
	)

	return nil
}
