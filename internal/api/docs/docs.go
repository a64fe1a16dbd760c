// Package docs serves the API's OpenAPI description. The document is
// maintained by hand and embedded into the binary, keeping /api/docs
// available without a file system dependency.
package docs

import (
	_ "embed"
	"log/slog"
	"net/http"
)

//go:embed openapi.json
var openAPIDocument []byte

// Handler serves the embedded OpenAPI document as JSON.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(openAPIDocument); err != nil {
			slog.Error("failed to write OpenAPI document", "error", err)
		}
	}
}
