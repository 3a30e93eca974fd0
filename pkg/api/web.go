package api

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// handleIndex serves the embedded calculator page: two numeric fields, a
// trigger button, and a result area. All computation happens through the
// JSON endpoints; the page is a thin shell.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(indexHTML); err != nil {
		slog.Warn("failed to write index page", "error", err)
	}
}
