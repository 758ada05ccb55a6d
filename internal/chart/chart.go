// Package chart lays out scatter plots: it bounds the chosen field pair,
// builds the linear mappings for both axes and issues draw calls to a
// Surface.
package chart

import (
	"errors"
	"fmt"

	"github.com/gdpscope/core/internal/logging"
	"github.com/gdpscope/core/internal/models"
	"github.com/gdpscope/core/internal/scale"
)

var ErrNotLoaded = errors.New("chart has no data loaded")

// State is the lifecycle stage of a chart.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StateRendered
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateRendered:
		return "rendered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result describes the last render.
type Result struct {
	Limits  models.AxisLimits
	Points  int
	Skipped int
	// Empty is set when nothing was plottable and the empty state was drawn.
	Empty bool
	// Degenerate is set when either axis had a zero-width domain.
	Degenerate bool
}

// Chart is one chart instance bound to a surface. It is not safe for
// concurrent use.
type Chart struct {
	opts    Options
	surface Surface

	state   State
	records []models.Record
	caption string
}

func New(opts Options, surface Surface) *Chart {
	return &Chart{opts: opts, surface: surface}
}

func (c *Chart) State() State {
	return c.state
}

func (c *Chart) Options() Options {
	return c.opts
}

// Load replaces the records to plot. caption is drawn at the Caption label
// position on the next render.
func (c *Chart) Load(records []models.Record, caption string) {
	c.records = records
	c.caption = caption
	c.state = StateLoaded
}

// Render clears the surface and draws the loaded records. Records missing a
// value for either axis field are skipped. When nothing is plottable the
// axes are drawn over a unit domain with the empty label.
func (c *Chart) Render() (Result, error) {
	if c.state == StateEmpty {
		return Result{}, ErrNotLoaded
	}

	c.surface.Clear()

	plot, skipped := c.plottable()
	res := Result{Skipped: skipped}

	xs := make([]float64, len(plot))
	ys := make([]float64, len(plot))
	for i, p := range plot {
		xs[i], ys[i] = p.x, p.y
	}

	limits, err := scale.FindLimits(xs, ys)
	if err != nil {
		res.Empty = true
		if err := c.renderEmpty(); err != nil {
			return res, err
		}
		c.state = StateRendered
		return res, nil
	}
	res.Limits = limits

	xMap, err := scale.NewLinear(limits.XMin, limits.XMax, c.opts.X.From, c.opts.X.To, c.opts.X.Padding)
	if err != nil {
		return res, fmt.Errorf("x axis: %w", err)
	}
	yMap, err := scale.NewLinear(limits.YMin, limits.YMax, c.opts.Y.From, c.opts.Y.To, c.opts.Y.Padding)
	if err != nil {
		return res, fmt.Errorf("y axis: %w", err)
	}

	if xMap.Degenerate() || yMap.Degenerate() {
		res.Degenerate = true
		logging.Logger().Debug("falling back to midpoint mapping",
			"chart", c.opts.Name,
			"error", models.ErrDegenerateDomain,
			"x", xMap.Degenerate(),
			"y", yMap.Degenerate())
	}

	c.renderAxes(xMap, yMap)

	for _, p := range plot {
		px, py := xMap.Map(p.x), yMap.Map(p.y)
		c.surface.RenderPoint(px, py, c.hints(p, px, py))
		res.Points++
	}

	c.renderLabels()

	if skipped > 0 {
		logging.Logger().Info("skipped records with missing values",
			"chart", c.opts.Name,
			"skipped", skipped,
			"x", c.opts.X.Field,
			"y", c.opts.Y.Field)
	}

	c.state = StateRendered
	return res, nil
}

type plotPoint struct {
	rec  models.Record
	x, y float64
}

func (c *Chart) plottable() ([]plotPoint, int) {
	points := make([]plotPoint, 0, len(c.records))
	skipped := 0

	for _, rec := range c.records {
		x, xok := rec.Value(c.opts.X.Field)
		y, yok := rec.Value(c.opts.Y.Field)
		if !xok || !yok {
			skipped++
			continue
		}
		points = append(points, plotPoint{rec: rec, x: x, y: y})
	}

	return points, skipped
}

func (c *Chart) renderEmpty() error {
	xMap, err := scale.NewLinear(0, 1, c.opts.X.From, c.opts.X.To, scale.Padding{})
	if err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	yMap, err := scale.NewLinear(0, 1, c.opts.Y.From, c.opts.Y.To, scale.Padding{})
	if err != nil {
		return fmt.Errorf("y axis: %w", err)
	}

	c.renderAxes(xMap, yMap)
	c.renderLabels()
	c.surface.RenderLabel(c.opts.EmptyLabel)

	return nil
}

func (c *Chart) renderAxes(xMap, yMap *scale.Linear) {
	c.surface.RenderAxis(Bottom, xMap, c.opts.X.Ticks, AxisStyle{Offset: c.opts.X.Offset, Format: c.opts.X.Format})
	c.surface.RenderAxis(Left, yMap, c.opts.Y.Ticks, AxisStyle{Offset: c.opts.Y.Offset, Format: c.opts.Y.Format})
}

func (c *Chart) renderLabels() {
	for _, l := range c.opts.Labels {
		c.surface.RenderLabel(l)
	}

	if c.opts.Caption != nil && c.caption != "" {
		caption := *c.opts.Caption
		caption.Text = c.caption
		c.surface.RenderLabel(caption)
	}
}

func (c *Chart) hints(p plotPoint, px, py float64) StyleHints {
	hints := StyleHints{
		Radius:  c.opts.Point.Radius,
		Fill:    c.opts.Point.Fill,
		Stroke:  c.opts.Point.Stroke,
		Opacity: c.opts.Point.Opacity,
		Title: fmt.Sprintf("%s %s: %s",
			p.rec.CountryName,
			c.opts.X.Format.Apply(p.x),
			c.opts.Point.TitleFormat.Apply(p.y)),
	}

	if h := c.opts.Hover; h != nil {
		enter := ShowTooltip(Position{X: px + h.OffsetX, Y: py + h.OffsetY}, h.ShowOpacity, h.ShowDuration)
		leave := HideTooltip(h.HideOpacity, h.HideDuration)
		hints.Enter = &enter
		hints.Leave = &leave
	}

	return hints
}
