package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/derhornspieler/gke-kubeconfig/internal/config"
	"github.com/derhornspieler/gke-kubeconfig/internal/model"
)

// Handler holds shared dependencies injected into all route handlers.
type Handler struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewHandler creates a Handler with all dependencies.
func NewHandler(cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		Config: cfg,
		Logger: logger.Named("handler"),
	}
}

// decodeJSON reads and decodes a JSON request body into v.
func decodeJSON(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1 MB limit
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	model.WriteJSON(w, status, v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	model.WriteError(w, status, code, message)
}
