/*
Copyright © 2025 Soma Health Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package server implements the reusable HTTP server for soma surfaces.
//
// The server is stateless and wraps registered handlers with a standard
// middleware chain:
//
//   - Prometheus RED metrics (request rate, errors, duration)
//   - API version negotiation via Accept header
//   - Request ID tracking (X-Request-Id, google/uuid)
//   - Panic recovery
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Structured request logging
//
// Application handlers additionally run under http.TimeoutHandler so a
// stalled handler cannot hold a connection open indefinitely. System
// endpoints (/health, /ready, /metrics, and the default route) bypass both
// rate limiting and the handler timeout.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("somad"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/bmi": bmi.NewHandler().Handle,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Environment variables:
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30s)
package server
