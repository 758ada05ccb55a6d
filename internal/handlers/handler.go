// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gdpscope/core/internal/app"
	"github.com/gdpscope/core/internal/logging"
)

// Handler serves the charts of one App. When the dataset failed to load it
// is built with NewUnavailable instead and reports the load error.
type Handler struct {
	app     *app.App
	loadErr error
}

func New(a *app.App) *Handler {
	return &Handler{app: a}
}

// NewUnavailable returns a Handler whose chart routes answer 503 with err.
func NewUnavailable(err error) *Handler {
	return &Handler{loadErr: err}
}

// Routes registers every endpoint on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.HealthHandler)
	mux.HandleFunc("/{$}", h.IndexHandler)
	mux.HandleFunc("/chart.svg", h.ChartSVGHandler)
	mux.HandleFunc("/tooltip.svg", h.TooltipSVGHandler)
	mux.HandleFunc("/api/countries", h.CountriesHandler)
	mux.HandleFunc("/api/chart", h.ChartHandler)
	return mux
}

// available writes the load error and returns false when there is no data.
func (h *Handler) available(w http.ResponseWriter) bool {
	if h.loadErr == nil && h.app != nil {
		return true
	}

	msg := "Dataset unavailable"
	if h.loadErr != nil {
		msg += ": " + h.loadErr.Error()
	}
	http.Error(w, msg, http.StatusServiceUnavailable)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	if r.URL.Query().Get("pretty") == "true" {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(v); err != nil {
		logging.Logger().Error("failed to encode response", "path", r.URL.Path, "error", err)
	}
}
