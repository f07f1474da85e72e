package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	userDomain "github.com/edulabs/classauth/internal/user/domain"
	userUseCase "github.com/edulabs/classauth/internal/user/usecase"
)

// RunCreateUser provisions a new user account. The password is hashed before
// storage; the plain text is never persisted or echoed back. Outputs the
// created account in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	username string,
	password string,
	role string,
	isActive bool,
	format string,
) error {
	logger.Info("creating new user",
		slog.String("username", username),
		slog.String("role", role),
	)

	user, err := useCase.Create(ctx, userUseCase.CreateUserInput{
		Username: username,
		Password: password,
		Role:     role,
		IsActive: isActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputUserJSON(user, writer)
	} else {
		outputUserText(user, writer)
	}

	logger.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return nil
}

// outputUserText outputs the created user in human-readable text format.
func outputUserText(user *userDomain.User, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "User created successfully!")
	_, _ = fmt.Fprintf(writer, "ID: %d\n", user.ID)
	_, _ = fmt.Fprintf(writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(writer, "Role: %s\n", user.Role)
	_, _ = fmt.Fprintf(writer, "Active: %t\n", user.IsActive)
}

// outputUserJSON outputs the created user in JSON format for machine consumption.
func outputUserJSON(user *userDomain.User, writer io.Writer) {
	result := map[string]any{
		"id":        user.ID,
		"username":  user.Username,
		"role":      user.Role,
		"is_active": user.IsActive,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
