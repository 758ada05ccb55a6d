package chart

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdpscope/core/internal/models"
	"github.com/gdpscope/core/internal/scale"
)

func albania() []models.Record {
	return []models.Record{
		{CountryName: "Albania", CountryCode: "ALB", Year: 1960, GDP: 100, Population: 1608800},
		{CountryName: "Albania", CountryCode: "ALB", Year: 1961, GDP: 200, Population: 1659800},
	}
}

// unpadded maps Year onto [50, 850] and GDP onto [50, 550] with no margins.
func unpadded() Options {
	opts := MainDefaults()
	opts.X.Padding = scale.Padding{}
	opts.Y.Padding = scale.Padding{}
	opts.Y.From, opts.Y.To = 50, 550
	return opts
}

func TestChartStates(t *testing.T) {
	surface := &recordingSurface{}
	c := New(MainDefaults(), surface)

	assert.Equal(t, StateEmpty, c.State())

	_, err := c.Render()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Zero(t, surface.clears)

	c.Load(albania(), "ALB")
	assert.Equal(t, StateLoaded, c.State())

	_, err = c.Render()
	require.NoError(t, err)
	assert.Equal(t, StateRendered, c.State())

	_, err = c.Render()
	require.NoError(t, err)
	assert.Equal(t, StateRendered, c.State())
	assert.Equal(t, "rendered", c.State().String())
}

func TestChartRenderAlbania(t *testing.T) {
	t.Run("limits and exact endpoints", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(unpadded(), surface)
		c.Load(albania(), "ALB")

		res, err := c.Render()
		require.NoError(t, err)

		assert.Equal(t, models.AxisLimits{XMin: 1960, XMax: 1961, YMin: 100, YMax: 200}, res.Limits)
		assert.Equal(t, 2, res.Points)
		assert.False(t, res.Empty)

		points := surface.points()
		require.Len(t, points, 2)
		assert.Equal(t, 50.0, points[0].x)
		assert.Equal(t, 50.0, points[0].y)
		assert.Equal(t, 850.0, points[1].x)
		assert.Equal(t, 550.0, points[1].y)
	})

	t.Run("default margins", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(MainDefaults(), surface)
		c.Load(albania(), "ALB")

		_, err := c.Render()
		require.NoError(t, err)

		axes := surface.axes()
		require.Len(t, axes, 2)
		assert.Equal(t, Bottom, axes[0].axis)
		assert.Equal(t, 1955.0, axes[0].lo)
		assert.Equal(t, 1961.0, axes[0].hi)
		assert.Equal(t, Left, axes[1].axis)
		assert.Equal(t, 100.0-100000000, axes[1].lo)
		assert.Equal(t, 200.0, axes[1].hi)

		points := surface.points()
		require.Len(t, points, 2)
		assert.InDelta(t, 716.67, points[0].x, 0.01)
		assert.Equal(t, 850.0, points[1].x)
		assert.Equal(t, 50.0, points[1].y)
	})

	t.Run("labels and caption", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(MainDefaults(), surface)
		c.Load(albania(), "ALB")

		_, err := c.Render()
		require.NoError(t, err)

		assert.Equal(t, []string{
			"Gross Domestic Product Through Time",
			"Year",
			"GDP (Gross Domestic Product)",
			"ALB",
		}, surface.labels())
	})
}

func TestChartHoverCommands(t *testing.T) {
	t.Run("main chart attaches show and hide", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(unpadded(), surface)
		c.Load(albania(), "ALB")

		_, err := c.Render()
		require.NoError(t, err)

		hints := surface.points()[1].hints
		require.NotNil(t, hints.Enter)
		require.NotNil(t, hints.Leave)

		assert.Equal(t, ShowTooltip(Position{X: 850, Y: 522}, 0.9, 200*time.Millisecond), *hints.Enter)
		assert.Equal(t, HideTooltip(0, 500*time.Millisecond), *hints.Leave)
		assert.Equal(t, "Albania 1961: 200", hints.Title)
		assert.Equal(t, 4.0, hints.Radius)
		assert.Equal(t, "#4286f4", hints.Fill)
	})

	t.Run("tooltip chart has none", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(TooltipDefaults(), surface)
		c.Load(albania(), "")

		_, err := c.Render()
		require.NoError(t, err)

		for _, p := range surface.points() {
			assert.Nil(t, p.hints.Enter)
			assert.Nil(t, p.hints.Leave)
		}
	})
}

func TestChartEmptyState(t *testing.T) {
	surface := &recordingSurface{}
	c := New(MainDefaults(), surface)
	c.Load(nil, "")

	res, err := c.Render()
	require.NoError(t, err)

	assert.True(t, res.Empty)
	assert.Zero(t, res.Points)
	assert.Empty(t, surface.points())
	assert.Len(t, surface.axes(), 2)
	assert.Contains(t, surface.labels(), "No data for this country")
	assert.Equal(t, StateRendered, c.State())
}

func TestChartSkipsMissingValues(t *testing.T) {
	records := append(albania(), models.Record{CountryName: "Albania", Year: 1962, GDP: math.NaN()})

	t.Run("partial rows are skipped", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(MainDefaults(), surface)
		c.Load(records, "ALB")

		res, err := c.Render()
		require.NoError(t, err)
		assert.Equal(t, 2, res.Points)
		assert.Equal(t, 1, res.Skipped)
		assert.Equal(t, 1961.0, res.Limits.XMax)
	})

	t.Run("nothing plottable is the empty state", func(t *testing.T) {
		surface := &recordingSurface{}
		c := New(MainDefaults(), surface)
		c.Load(records[2:], "ALB")

		res, err := c.Render()
		require.NoError(t, err)
		assert.True(t, res.Empty)
		assert.Equal(t, 1, res.Skipped)
	})
}

func TestChartDegenerateDomain(t *testing.T) {
	surface := &recordingSurface{}
	c := New(unpadded(), surface)
	c.Load(albania()[:1], "ALB")

	res, err := c.Render()
	require.NoError(t, err)

	assert.True(t, res.Degenerate)
	points := surface.points()
	require.Len(t, points, 1)
	assert.Equal(t, 450.0, points[0].x)
	assert.Equal(t, 300.0, points[0].y)
}

func TestChartRedrawIsIdempotent(t *testing.T) {
	surface := &recordingSurface{}
	c := New(MainDefaults(), surface)
	c.Load(albania(), "ALB")

	_, err := c.Render()
	require.NoError(t, err)
	first := append([]drawCall(nil), surface.calls...)

	_, err = c.Render()
	require.NoError(t, err)

	assert.Equal(t, first, surface.calls)
	assert.Len(t, surface.points(), 2)
	assert.Equal(t, 2, surface.clears)
}
