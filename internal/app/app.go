// Package app ties the dataset, the selector and both charts together. The
// dataset and the pre-rendered tooltip chart never change after New; the
// per-selection state is an explicit State value passed in and returned.
package app

import (
	"errors"
	"fmt"

	"github.com/gdpscope/core/internal/chart"
	"github.com/gdpscope/core/internal/logging"
	"github.com/gdpscope/core/internal/models"
	"github.com/gdpscope/core/internal/selector"
)

type App struct {
	dataset        *models.Dataset
	countries      []string
	defaultCountry string

	mainOpts    chart.Options
	tooltipOpts chart.Options

	tooltipSVG    []byte
	tooltipResult chart.Result
}

// State is the outcome of the latest country selection.
type State struct {
	Country   string
	Selection models.Selection
	Result    chart.Result
	// Err holds an *models.EmptySelectionError when the country has no rows.
	Err error
}

// Empty reports whether the main chart shows the empty state.
func (s State) Empty() bool {
	return s.Result.Empty
}

// New renders the tooltip chart over the whole dataset once.
func New(ds *models.Dataset, mainOpts, tooltipOpts chart.Options, preferredCountry string) (*App, error) {
	if ds == nil {
		return nil, errors.New("app: nil dataset")
	}

	a := &App{
		dataset:     ds,
		countries:   selector.ListDistinctCountries(ds),
		mainOpts:    mainOpts,
		tooltipOpts: tooltipOpts,
	}
	a.defaultCountry = selector.DefaultCountry(a.countries, preferredCountry)

	surface := chart.NewSVGSurface(tooltipOpts)
	tooltip := chart.New(tooltipOpts, surface)
	tooltip.Load(ds.Records, "")

	res, err := tooltip.Render()
	if err != nil {
		return nil, fmt.Errorf("failed to render tooltip chart: %w", err)
	}
	a.tooltipSVG = surface.Bytes()
	a.tooltipResult = res

	logging.Logger().Info("tooltip chart rendered",
		"points", res.Points,
		"skipped", res.Skipped,
		"countries", len(a.countries))

	return a, nil
}

func (a *App) Dataset() *models.Dataset {
	return a.dataset
}

// ListDistinctCountries returns the country names for the drop-down.
func (a *App) ListDistinctCountries() []string {
	return append([]string(nil), a.countries...)
}

func (a *App) DefaultCountry() string {
	return a.defaultCountry
}

func (a *App) MainOptions() chart.Options {
	return a.mainOpts
}

// TooltipSVG returns the tooltip chart rendered by New.
func (a *App) TooltipSVG() []byte {
	return a.tooltipSVG
}

func (a *App) TooltipResult() chart.Result {
	return a.tooltipResult
}

// OnCountrySelected filters the dataset to name and redraws the main chart
// onto surface, which is cleared first. An empty name selects the default
// country. A country without rows yields the empty-state chart and an
// EmptySelectionError in State.Err.
func (a *App) OnCountrySelected(prev State, name string, surface chart.Surface) (State, error) {
	if name == "" {
		name = a.defaultCountry
	}

	next := State{Country: name}

	sel, err := selector.Select(a.dataset, name)
	if err != nil && !errors.Is(err, models.ErrEmptySelection) {
		return prev, err
	}
	if sel.Empty() {
		next.Err = err
		logging.Logger().Info("empty selection", "country", name)
	}
	next.Selection = sel

	main := chart.New(a.mainOpts, surface)
	main.Load(sel.Records, sel.CountryCode)

	res, err := main.Render()
	if err != nil {
		return prev, fmt.Errorf("failed to render %s: %w", name, err)
	}
	next.Result = res

	logging.Logger().Debug("main chart rendered",
		"country", name,
		"previous", prev.Country,
		"points", res.Points,
		"skipped", res.Skipped)

	return next, nil
}
