package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	courseDomain "github.com/edulabs/classauth/internal/course/domain"
	courseUseCase "github.com/edulabs/classauth/internal/course/usecase"
)

// RunCreateCourse creates a new course with a unique code. Outputs the created
// course in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateCourse(
	ctx context.Context,
	useCase courseUseCase.CourseUseCase,
	logger *slog.Logger,
	writer io.Writer,
	code string,
	name string,
	format string,
) error {
	logger.Info("creating new course",
		slog.String("code", code),
		slog.String("name", name),
	)

	course, err := useCase.CreateCourse(ctx, code, name)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	if format == "json" {
		outputCourseJSON(course, writer)
	} else {
		outputCourseText(course, writer)
	}

	logger.Info("course created successfully",
		slog.Int64("course_id", course.ID),
		slog.String("code", course.Code),
	)

	return nil
}

// outputCourseText outputs the created course in human-readable text format.
func outputCourseText(course *courseDomain.Course, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "Course created successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %d\n", course.ID)
	_, _ = fmt.Fprintf(writer, "Code: %s\n", course.Code)
	_, _ = fmt.Fprintf(writer, "Name: %s\n", course.Name)
}

// outputCourseJSON outputs the created course in JSON format for machine consumption.
func outputCourseJSON(course *courseDomain.Course, writer io.Writer) {
	result := map[string]any{
		"id":   course.ID,
		"code": course.Code,
		"name": course.Name,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
