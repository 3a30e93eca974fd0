/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/
package report

import (
	"github.com/somahealth/soma/pkg/bmi"
)

// Sex represents the biological sex used by the Mifflin-St Jeor equation.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// String returns the string representation of the sex value.
func (s Sex) String() string {
	return string(s)
}

// IsValid returns true if the sex is a supported value.
func (s Sex) IsValid() bool {
	switch s {
	case SexFemale, SexMale:
		return true
	default:
		return false
	}
}

// SupportedSexes returns all supported sex values.
func SupportedSexes() []Sex {
	return []Sex{SexFemale, SexMale}
}

// ActivityLevel represents a weekly exercise frequency bracket used to scale
// BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

// Standard TDEE multipliers per activity bracket.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// String returns the string representation of the activity level.
func (a ActivityLevel) String() string {
	return string(a)
}

// IsValid returns true if the activity level is a supported value.
func (a ActivityLevel) IsValid() bool {
	_, ok := activityMultipliers[a]
	return ok
}

// Multiplier returns the TDEE multiplier for the activity level,
// or 0 if the level is not a supported value.
func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

// SupportedActivityLevels returns all activity levels in ascending intensity order.
func SupportedActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary,
		ActivityLight,
		ActivityModerate,
		ActivityActive,
		ActivityVeryActive,
	}
}

// Subject describes the person a health report is built for.
type Subject struct {
	Measurement bmi.Measurement `json:"measurement" yaml:"measurement"`
	Age         int             `json:"age" yaml:"age"`
	Sex         Sex             `json:"sex" yaml:"sex"`
	Activity    ActivityLevel   `json:"activity" yaml:"activity"`
}

// Report aggregates the derived health metrics for a subject.
type Report struct {
	Subject Subject     `json:"subject" yaml:"subject"`
	BMI     *bmi.Result `json:"bmi" yaml:"bmi"`

	// BMR is the basal metabolic rate in kcal/day (Mifflin-St Jeor).
	BMR float64 `json:"bmr" yaml:"bmr"`

	// TDEE is the total daily energy expenditure in kcal/day.
	TDEE float64 `json:"tdee" yaml:"tdee"`

	// WaterLiters is the suggested daily water intake in liters.
	WaterLiters float64 `json:"waterLiters" yaml:"waterLiters"`
}
