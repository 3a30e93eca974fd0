// Package cli implements the command-line interface for the soma tool.
//
// # Overview
//
// The soma CLI computes body-mass index and derived health metrics from
// user-supplied height and weight measurements.
//
// # Commands
//
// bmi - Compute BMI and category:
//
//	soma bmi --height 1.75 --weight 70 [--unit m|cm] [--output FILE] [--format json|yaml|table]
//
// report - Build a full health report:
//
//	soma report --height 1.75 --weight 70 --age 30 --sex female [--activity light]
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--log-level    Logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid input, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/bmi - BMI computation and classification
//   - pkg/report - BMR/TDEE/water intake derivation
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/somahealth/soma/pkg/cli.version=1.0.0'"
package cli
