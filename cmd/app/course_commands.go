package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/edulabs/classauth/cmd/app/commands"
	"github.com/edulabs/classauth/internal/app"
	"github.com/edulabs/classauth/internal/config"
)

func getCourseCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-course",
			Usage: "Create a new course",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "code",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Unique course code (e.g., GO101)",
				},
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Human-readable course name",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				courseUseCase, err := container.CourseUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateCourse(
					ctx,
					courseUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("code"),
					cmd.String("name"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "enroll-user",
			Usage: "Enroll a user in a course",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "user-id",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "ID of the user to enroll",
				},
				&cli.IntFlag{
					Name:     "course-id",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "ID of the target course",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				courseUseCase, err := container.CourseUseCase()
				if err != nil {
					return err
				}

				return commands.RunEnrollUser(
					ctx,
					courseUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int64(cmd.Int("user-id")),
					int64(cmd.Int("course-id")),
				)
			},
		},
	}
}
