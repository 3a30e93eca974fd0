/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package report

import (
	"github.com/somahealth/soma/pkg/bmi"
	"github.com/somahealth/soma/pkg/errors"
)

// litersPerKg is the suggested daily water intake in liters per kilogram
// of body weight (35 ml/kg).
const litersPerKg = 0.035

// Validate checks subject invariants beyond the embedded measurement:
// positive age and recognized sex/activity values.
func (s Subject) Validate() error {
	if err := s.Measurement.Validate(); err != nil {
		return err
	}
	if s.Age <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidInput,
			"age must be greater than zero",
			map[string]any{"age": s.Age})
	}
	if !s.Sex.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidInput,
			"unsupported sex %q, supported: %v", s.Sex, SupportedSexes())
	}
	if !s.Activity.IsValid() {
		return errors.Newf(errors.ErrCodeInvalidInput,
			"unsupported activity level %q, supported: %v", s.Activity, SupportedActivityLevels())
	}
	return nil
}

// BMR computes the basal metabolic rate in kcal/day using the
// Mifflin-St Jeor equation.
func BMR(s Subject) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	heightCm := s.Measurement.Height * 100
	v := 10*s.Measurement.Weight + 6.25*heightCm - 5*float64(s.Age)
	if s.Sex == SexMale {
		return v + 5, nil
	}
	return v - 161, nil
}

// TDEE scales a basal metabolic rate by the activity multiplier.
func TDEE(bmr float64, activity ActivityLevel) (float64, error) {
	if !activity.IsValid() {
		return 0, errors.Newf(errors.ErrCodeInvalidInput,
			"unsupported activity level %q, supported: %v", activity, SupportedActivityLevels())
	}
	return bmr * activity.Multiplier(), nil
}

// WaterIntakeLiters returns the suggested daily water intake for the given
// body weight in kilograms.
func WaterIntakeLiters(weightKg float64) float64 {
	return weightKg * litersPerKg
}

// Build assembles the full health report for a subject: BMI value and
// category, BMR, TDEE, and suggested water intake. All values are returned
// at full precision; presentation shells round for display.
func Build(s Subject) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	res, err := bmi.Compute(s.Measurement)
	if err != nil {
		return nil, err
	}

	bmr, err := BMR(s)
	if err != nil {
		return nil, err
	}

	tdee, err := TDEE(bmr, s.Activity)
	if err != nil {
		return nil, err
	}

	return &Report{
		Subject:     s,
		BMI:         res,
		BMR:         bmr,
		TDEE:        tdee,
		WaterLiters: WaterIntakeLiters(s.Measurement.Weight),
	}, nil
}
