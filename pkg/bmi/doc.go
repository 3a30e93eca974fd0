// Package bmi implements the body-mass-index engine: input validation,
// BMI computation, and classification into health-status categories.
//
// # Overview
//
// The engine is a pure function pair. Compute derives bmi = weight / height²
// from a validated Measurement and returns the full-precision value together
// with its Category. Classify maps any non-negative finite BMI value onto the
// WHO bands using half-open intervals with inclusive lower bounds:
//
//	bmi < 18.5          Underweight
//	18.5 <= bmi < 25.0  Normal
//	25.0 <= bmi < 30.0  Overweight
//	bmi >= 30.0         Obese
//
// Exactly 18.5 is Normal and exactly 30.0 is Obese.
//
// # Validation
//
// Height and weight must be strictly positive and finite. Violations are
// reported as structured errors with code INVALID_INPUT (pkg/errors); the
// engine never recovers, retries, or writes output; presentation shells
// (pkg/cli, the HTTP handler in this package) own user-facing messaging.
//
// # Usage
//
//	m, err := bmi.NewMeasurement(175, 70, bmi.UnitCentimeters)
//	if err != nil {
//	    return err
//	}
//	res, err := bmi.Compute(m)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.1f (%s)\n", res.BMI, res.Category)
package bmi
