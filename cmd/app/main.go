// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	var commandList []*cli.Command
	commandList = append(commandList, getSystemCommands()...)
	commandList = append(commandList, getUserCommands()...)
	commandList = append(commandList, getCourseCommands()...)

	cmd := &cli.Command{
		Name:     "classauth",
		Usage:    "Token-based authentication and authorization service for course platforms",
		Version:  version,
		Commands: commandList,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
