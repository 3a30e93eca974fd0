// Package api provides the HTTP layer for the soma daemon.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// the BMI engine and health-report builder via a JSON API, plus an embedded
// single-page calculator UI at the root path.
//
// # Usage
//
// To start the server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/somahealth/soma/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /          - Embedded calculator page (GUI surface)
//   - GET /v1/bmi    - Compute BMI and category from query parameters
//   - GET /v1/report - Build a full health report (BMI, BMR, TDEE, water)
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/bmi)
//
//   - height: height value (required, positive, finite)
//   - weight: weight in kilograms (required, positive, finite)
//   - unit:   height unit, m or cm (optional, default m)
//
// GET /v1/report additionally accepts:
//
//   - age:      age in years (required, positive integer)
//   - sex:      female or male (required)
//   - activity: sedentary, light, moderate, active, very-active (default light)
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/somahealth/soma/pkg/api.version=1.0.0'"
package api
