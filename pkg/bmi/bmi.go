/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package bmi

import (
	"math"

	"github.com/somahealth/soma/pkg/errors"
)

// HeightUnit represents the unit a height value was supplied in.
type HeightUnit string

const (
	UnitMeters      HeightUnit = "m"
	UnitCentimeters HeightUnit = "cm"
)

// String returns the string representation of the height unit.
func (u HeightUnit) String() string {
	return string(u)
}

// IsValid returns true if the height unit is a supported value.
func (u HeightUnit) IsValid() bool {
	switch u {
	case UnitMeters, UnitCentimeters:
		return true
	default:
		return false
	}
}

// SupportedHeightUnits returns all supported height unit values.
func SupportedHeightUnits() []HeightUnit {
	return []HeightUnit{UnitMeters, UnitCentimeters}
}

// Measurement holds a single validated height/weight observation.
// Height is always stored in meters, weight in kilograms.
type Measurement struct {
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Result represents a computed BMI value and its classification.
type Result struct {
	BMI      float64  `json:"bmi" yaml:"bmi"`
	Category Category `json:"category" yaml:"category"`
}

// NewMeasurement validates raw height/weight input and returns a Measurement
// normalized to meters and kilograms. Heights in centimeters are divided
// by 100; no other conversions are performed.
func NewMeasurement(height, weight float64, unit HeightUnit) (Measurement, error) {
	if !unit.IsValid() {
		return Measurement{}, errors.Newf(errors.ErrCodeInvalidInput,
			"unsupported height unit %q, supported: %v", unit, SupportedHeightUnits())
	}
	if unit == UnitCentimeters {
		height /= 100
	}

	m := Measurement{Height: height, Weight: weight}
	if err := m.Validate(); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

// Validate checks the measurement invariant: both values strictly positive
// and finite.
func (m Measurement) Validate() error {
	if err := validatePositiveFinite("height", m.Height); err != nil {
		return err
	}
	return validatePositiveFinite("weight", m.Weight)
}

func validatePositiveFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.NewWithContext(errors.ErrCodeInvalidInput,
			field+" must be a finite number",
			map[string]any{"field": field, "value": v})
	}
	if v <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidInput,
			field+" must be greater than zero",
			map[string]any{"field": field, "value": v})
	}
	return nil
}

// Compute calculates the body-mass index for the given measurement and
// classifies it. The BMI value is returned at full precision; callers round
// for display. Compute is pure: same measurement, same result.
func Compute(m Measurement) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	v := m.Weight / (m.Height * m.Height)

	cat, err := Classify(v)
	if err != nil {
		return nil, err
	}

	return &Result{BMI: v, Category: cat}, nil
}

// Classify maps a BMI value to its health-status category using half-open
// intervals with inclusive lower bounds. Returns an invalid-input error for
// negative or non-finite values.
func Classify(v float64) (Category, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", errors.NewWithContext(errors.ErrCodeInvalidInput,
			"bmi must be a finite number",
			map[string]any{"bmi": v})
	}
	if v < 0 {
		return "", errors.NewWithContext(errors.ErrCodeInvalidInput,
			"bmi must not be negative",
			map[string]any{"bmi": v})
	}

	for _, b := range bands[:len(bands)-1] {
		if v < b.Max {
			return b.Category, nil
		}
	}
	return bands[len(bands)-1].Category, nil
}
