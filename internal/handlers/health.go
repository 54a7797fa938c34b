package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		zap.L().Debug("writing health response failed", zap.Error(err))
	}
}
