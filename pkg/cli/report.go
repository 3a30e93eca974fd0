/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/somahealth/soma/pkg/errors"
	"github.com/somahealth/soma/pkg/report"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Build a full health report for a subject",
		Description: `Build a health report from a measurement and subject details:
  - BMI and health-status category
  - BMR (basal metabolic rate, Mifflin-St Jeor) in kcal/day
  - TDEE (total daily energy expenditure) by activity level
  - Suggested daily water intake in liters

# Examples

Basic report:
  soma report --height 1.75 --weight 70 --age 30 --sex female

Active male, height in centimeters, table output:
  soma report --height 182 --unit cm --weight 85 --age 42 --sex male \
    --activity active --format table`,
		Flags: []cli.Flag{
			heightFlag,
			weightFlag,
			unitFlag,
			&cli.StringFlag{
				Name:     "age",
				Required: true,
				Usage:    "Age in years",
			},
			&cli.StringFlag{
				Name:     "sex",
				Required: true,
				Usage:    fmt.Sprintf("Biological sex (supported values: %v)", report.SupportedSexes()),
			},
			&cli.StringFlag{
				Name:  "activity",
				Value: report.ActivityLight.String(),
				Usage: fmt.Sprintf("Activity level (supported values: %v)", report.SupportedActivityLevels()),
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := buildSubjectFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing subject input: %w", err)
			}

			rep, err := report.Build(s)
			if err != nil {
				return fmt.Errorf("error building report: %w", err)
			}

			return serializeResult(ctx, cmd, rep)
		},
	}
}

// buildSubjectFromCmd constructs a validated report.Subject from CLI flags.
func buildSubjectFromCmd(cmd *cli.Command) (report.Subject, error) {
	m, err := buildMeasurementFromCmd(cmd)
	if err != nil {
		return report.Subject{}, err
	}

	rawAge := strings.TrimSpace(cmd.String("age"))
	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return report.Subject{}, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("flag --age is not an integer: %q", rawAge), err)
	}

	s := report.Subject{
		Measurement: m,
		Age:         age,
		Sex:         report.Sex(strings.ToLower(strings.TrimSpace(cmd.String("sex")))),
		Activity:    report.ActivityLevel(strings.ToLower(strings.TrimSpace(cmd.String("activity")))),
	}
	if err := s.Validate(); err != nil {
		return report.Subject{}, err
	}
	return s, nil
}
