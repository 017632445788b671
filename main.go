package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/rustgen/internal/codegen"
	"github.com/okra-platform/rustgen/internal/commands"
	"github.com/okra-platform/rustgen/internal/ingest"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	flags := &commands.Flags{}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var ctrl *commands.Controller

	app := &cli.Command{
		Name:    "rustgen",
		Usage:   "Generate Rust types, service traits and stubs from a schema",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("RUSTGEN_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to a rustgen.json, rustgen.toml or rustgen.yaml file (default: search upward from the working directory)",
				Sources:     cli.EnvVars("RUSTGEN_CONFIG"),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(flags.LogLevel)
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl = commands.NewController(flags, log.Logger)

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a rustgen config and a starter schema in the current directory",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:    "generate",
				Aliases: []string{"gen"},
				Usage:   "Generate the Rust module described by the config",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "Regenerate whenever a schema file changes",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "formats",
				Usage: "List supported schema formats and target languages",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Println("schema formats:")
					for _, ext := range ingest.DefaultRegistry.Formats() {
						fmt.Println("  " + ext)
					}
					fmt.Println("languages:")
					for _, lang := range codegen.DefaultRegistry.Languages() {
						fmt.Println("  " + lang)
					}
					return nil
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run rustgen")
	}
}
