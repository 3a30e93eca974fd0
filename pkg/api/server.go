package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/somahealth/soma/pkg/bmi"
	"github.com/somahealth/soma/pkg/logging"
	"github.com/somahealth/soma/pkg/report"
	"github.com/somahealth/soma/pkg/server"
)

const (
	name           = "somad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/somahealth/soma/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	r := map[string]http.HandlerFunc{
		"/":          handleIndex,
		"/v1/bmi":    bmi.NewHandler().Handle,
		"/v1/report": report.NewHandler().Handle,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
