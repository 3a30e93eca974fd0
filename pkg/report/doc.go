// Package report derives extended health metrics from a validated
// measurement: basal metabolic rate (Mifflin-St Jeor), total daily energy
// expenditure by activity bracket, and suggested daily water intake.
//
// All functions are pure and stateless; invalid subjects are rejected with
// INVALID_INPUT structured errors the same way pkg/bmi rejects measurements.
package report
