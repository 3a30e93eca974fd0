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

	"github.com/somahealth/soma/pkg/bmi"
	"github.com/somahealth/soma/pkg/errors"
)

func bmiCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bmi",
		EnableShellCompletion: true,
		Usage:                 "Compute body-mass index and health-status category",
		Description: `Compute the body-mass index (weight / height²) for the given
measurement and classify it into one of the standard categories:

  bmi < 18.5          Underweight
  18.5 <= bmi < 25.0  Normal
  25.0 <= bmi < 30.0  Overweight
  bmi >= 30.0         Obese

# Examples

Height in meters (default):
  soma bmi --height 1.75 --weight 70

Height in centimeters:
  soma bmi --height 175 --unit cm --weight 70

YAML output to a file:
  soma bmi --height 1.75 --weight 70 --format yaml --output result.yaml`,
		Flags: []cli.Flag{
			heightFlag,
			weightFlag,
			unitFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := buildMeasurementFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing measurement input: %w", err)
			}

			res, err := bmi.Compute(m)
			if err != nil {
				return fmt.Errorf("error computing bmi: %w", err)
			}

			return serializeResult(ctx, cmd, res)
		},
	}
}

// buildMeasurementFromCmd constructs a validated bmi.Measurement from CLI flags.
func buildMeasurementFromCmd(cmd *cli.Command) (bmi.Measurement, error) {
	height, err := parseFloatFlag(cmd, "height")
	if err != nil {
		return bmi.Measurement{}, err
	}
	weight, err := parseFloatFlag(cmd, "weight")
	if err != nil {
		return bmi.Measurement{}, err
	}

	unit := bmi.HeightUnit(strings.ToLower(strings.TrimSpace(cmd.String("unit"))))

	return bmi.NewMeasurement(height, weight, unit)
}

func parseFloatFlag(cmd *cli.Command, flagName string) (float64, error) {
	raw := strings.TrimSpace(cmd.String(flagName))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput,
			fmt.Sprintf("flag --%s is not a number: %q", flagName, raw), err)
	}
	return v, nil
}
