/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/somahealth/soma/pkg/errors"
	"github.com/somahealth/soma/pkg/report"
)

func runSubjectCmd(t *testing.T, flags map[string]string) (report.Subject, error) {
	t.Helper()

	defaults := map[string]string{
		"height":   "1.75",
		"weight":   "70",
		"unit":     "m",
		"age":      "30",
		"sex":      "female",
		"activity": "light",
	}
	for k, v := range flags {
		defaults[k] = v
	}

	cliFlags := make([]cli.Flag, 0, len(defaults))
	for name, value := range defaults {
		cliFlags = append(cliFlags, &cli.StringFlag{Name: name, Value: value})
	}

	var s report.Subject
	var buildErr error

	cmd := &cli.Command{
		Flags: cliFlags,
		Action: func(_ context.Context, c *cli.Command) error {
			s, buildErr = buildSubjectFromCmd(c)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
	return s, buildErr
}

func TestBuildSubjectFromCmd(t *testing.T) {
	t.Run("valid subject", func(t *testing.T) {
		s, err := runSubjectCmd(t, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Age != 30 {
			t.Errorf("Age = %d, want 30", s.Age)
		}
		if s.Sex != report.SexFemale {
			t.Errorf("Sex = %v, want %v", s.Sex, report.SexFemale)
		}
		if s.Activity != report.ActivityLight {
			t.Errorf("Activity = %v, want %v", s.Activity, report.ActivityLight)
		}
	})

	t.Run("centimeter height converted", func(t *testing.T) {
		s, err := runSubjectCmd(t, map[string]string{"height": "182", "unit": "cm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Measurement.Height != 1.82 {
			t.Errorf("Height = %v, want 1.82", s.Measurement.Height)
		}
	})

	t.Run("sex and activity case insensitive", func(t *testing.T) {
		s, err := runSubjectCmd(t, map[string]string{"sex": "Male", "activity": "ACTIVE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Sex != report.SexMale {
			t.Errorf("Sex = %v, want %v", s.Sex, report.SexMale)
		}
		if s.Activity != report.ActivityActive {
			t.Errorf("Activity = %v, want %v", s.Activity, report.ActivityActive)
		}
	})

	errCases := []struct {
		name  string
		flags map[string]string
	}{
		{"non-integer age", map[string]string{"age": "thirty"}},
		{"zero age", map[string]string{"age": "0"}},
		{"invalid sex", map[string]string{"sex": "other"}},
		{"invalid activity", map[string]string{"activity": "couch"}},
		{"invalid measurement", map[string]string{"height": "0"}},
	}

	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runSubjectCmd(t, tt.flags)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected %s error, got: %v", errors.ErrCodeInvalidInput, err)
			}
		})
	}
}
