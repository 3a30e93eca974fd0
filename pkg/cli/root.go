/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/somahealth/soma/pkg/logging"
	"github.com/somahealth/soma/pkg/serializer"
)

const (
	name           = "soma"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags used by multiple commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	heightFlag = &cli.StringFlag{
		Name:     "height",
		Required: true,
		Sources:  cli.EnvVars("SOMA_HEIGHT"),
		Usage:    "Height value (meters by default, see --unit)",
	}

	weightFlag = &cli.StringFlag{
		Name:     "weight",
		Required: true,
		Sources:  cli.EnvVars("SOMA_WEIGHT"),
		Usage:    "Weight in kilograms",
	}

	unitFlag = &cli.StringFlag{
		Name:  "unit",
		Value: "m",
		Usage: "Height unit (supported values: m, cm)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:   "soma - health metrics CLI",
		Description: `soma computes body-mass index and derived health metrics from
height and weight measurements:

bmi    - compute BMI and its health-status category
report - full health report: BMI, BMR (Mifflin-St Jeor), TDEE, water intake

Results can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars(logging.LogLevelEnvVar),
				Usage:   "log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			bmiCmd(),
			reportCmd(),
		},
	}
}

// Run executes the root command with signal-aware cancellation.
// This is called by main.main() and exits the process on error.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported: %v", f, serializer.SupportedFormats())
	}
	return f, nil
}

// serializeResult writes v to the --output destination in the --format format.
func serializeResult(ctx context.Context, cmd *cli.Command, v any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, v)
}
