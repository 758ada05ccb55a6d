// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"net/http"

	"github.com/gdpscope/core/internal/app"
	"github.com/gdpscope/core/internal/chart"
	"github.com/gdpscope/core/internal/logging"
)

const headerEmptySelection = "X-Empty-Selection"

type CountriesResponse struct {
	Countries []string `json:"countries"`
	Default   string   `json:"default"`
}

func (h *Handler) CountriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	writeJSON(w, r, CountriesResponse{
		Countries: h.app.ListDistinctCountries(),
		Default:   h.app.DefaultCountry(),
	})
}

// ChartHandler returns the main chart for ?country= as a models.ChartView.
func (h *Handler) ChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	surface := chart.NewViewSurface(h.app.MainOptions())
	state, ok := h.selectCountry(w, r, surface)
	if !ok {
		return
	}

	view := surface.View()
	view.Country = state.Country
	view.Empty = state.Empty()
	if !state.Empty() {
		limits := state.Result.Limits
		view.Limits = &limits
	}

	writeJSON(w, r, view)
}

func (h *Handler) ChartSVGHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	surface := chart.NewSVGSurface(h.app.MainOptions())
	if _, ok := h.selectCountry(w, r, surface); !ok {
		return
	}

	writeSVG(w, surface.Bytes())
}

func (h *Handler) TooltipSVGHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.available(w) {
		return
	}

	writeSVG(w, h.app.TooltipSVG())
}

// selectCountry renders ?country= onto surface and sets the empty-selection
// header. It writes a 500 and returns false when rendering fails.
func (h *Handler) selectCountry(w http.ResponseWriter, r *http.Request, surface chart.Surface) (app.State, bool) {
	country := r.URL.Query().Get("country")

	state, err := h.app.OnCountrySelected(app.State{}, country, surface)
	if err != nil {
		logging.Logger().Error("failed to render chart", "country", country, "error", err)
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return state, false
	}

	if state.Err != nil || state.Empty() {
		w.Header().Set(headerEmptySelection, "true")
	}

	return state, true
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(svg); err != nil {
		logging.Logger().Error("failed to write svg", "error", err)
	}
}
