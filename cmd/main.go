package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/yungbote/trivia-backend/internal/app"
)

func init() {
	app.LoadEnvFiles()
}

func main() {
	cliApp := &cli.App{
		Name:  "trivia",
		Usage: "trivia quiz API",
		Commands: []*cli.Command{
			commandServe(),
			commandMigrate(),
			commandSeed(),
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandServe() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "serve address (default :$PORT)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := app.LoadConfig()
			addr := c.String("addr")
			if addr == "" {
				addr = ":" + cfg.Port
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return a.Run(ctx, addr)
		},
	}
}

func commandMigrate() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create missing tables and exit",
		Action: func(c *cli.Context) error {
			// New migrates as part of start-up.
			a, err := app.New(c.Context, app.LoadConfig())
			if err != nil {
				return err
			}
			defer a.Close()
			a.Log.Info("Schema is up to date")
			return nil
		},
	}
}

func commandSeed() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "load categories and questions from a YAML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "seed file; the built-in data set is used when empty",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := app.LoadConfig()
			path := c.String("file")
			if path == "" {
				path = cfg.SeedFile
			}

			a, err := app.New(c.Context, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var r io.Reader
			if path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("open seed file: %w", err)
				}
				defer f.Close()
				r = f
			}
			return runSeed(c.Context, a, r)
		},
	}
}

func runSeed(ctx context.Context, a *app.App, r io.Reader) error {
	res, err := a.Services.Seed.Seed(ctx, r)
	if err != nil {
		return err
	}
	a.Log.Info("Seed finished", "categories_created", res.CategoriesCreated, "questions_created", res.QuestionsCreated)
	return nil
}
