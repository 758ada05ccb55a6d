package chart

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdpscope/core/internal/models"
	"github.com/gdpscope/core/internal/scale"
)

// Options configures one chart instance. Every visual margin lives here
// instead of inside the mapping code.
type Options struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	X AxisOptions `yaml:"x"`
	Y AxisOptions `yaml:"y"`

	Point  PointStyle `yaml:"point"`
	Labels []Label    `yaml:"labels"`

	// Caption positions the per-load caption text (the country code). Nil
	// disables it.
	Caption *Label `yaml:"caption,omitempty"`

	EmptyLabel Label `yaml:"empty_label"`

	// Hover attaches tooltip commands to every point when set.
	Hover *HoverOptions `yaml:"hover,omitempty"`
}

type AxisOptions struct {
	Field models.Field `yaml:"field"`

	// From and To are the pixel coordinates the low and high ends of the
	// padded domain map to.
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`

	Padding scale.Padding `yaml:"padding"`
	Ticks   int           `yaml:"ticks"`
	Format  scale.Format  `yaml:"format"`

	// Offset is where the axis line sits: the y coordinate of a bottom
	// axis, the x coordinate of a left axis.
	Offset float64 `yaml:"offset"`
}

type PointStyle struct {
	Radius      float64      `yaml:"radius"`
	Fill        string       `yaml:"fill"`
	Stroke      string       `yaml:"stroke"`
	Opacity     float64      `yaml:"opacity"`
	TitleFormat scale.Format `yaml:"title_format"`
}

type Label struct {
	Text     string  `yaml:"text"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize string  `yaml:"font_size"`
	Rotate   float64 `yaml:"rotate,omitempty"`
}

// HoverOptions describes the tooltip transitions requested on hover.
type HoverOptions struct {
	ShowOpacity  float64       `yaml:"show_opacity"`
	ShowDuration time.Duration `yaml:"show_duration"`
	HideOpacity  float64       `yaml:"hide_opacity"`
	HideDuration time.Duration `yaml:"hide_duration"`

	// OffsetX and OffsetY shift the tooltip from the hovered point.
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// MainDefaults returns the options of the per-country GDP chart.
func MainDefaults() Options {
	return Options{
		Name:   "main-chart",
		Width:  900,
		Height: 600,
		X: AxisOptions{
			Field:   models.FieldYear,
			From:    50,
			To:      850,
			Padding: scale.Padding{Lo: 5},
			Ticks:   10,
			Format:  scale.FormatInteger,
			Offset:  550,
		},
		Y: AxisOptions{
			Field:   models.FieldGDP,
			From:    550,
			To:      50,
			Padding: scale.Padding{Lo: 100000000},
			Ticks:   10,
			Format:  scale.FormatSI,
			Offset:  50,
		},
		Point: PointStyle{
			Radius:      4,
			Fill:        "#4286f4",
			Stroke:      "#244ED9",
			Opacity:     0.6,
			TitleFormat: scale.FormatComma,
		},
		Labels: []Label{
			{Text: "Gross Domestic Product Through Time", X: 250, Y: 25, FontSize: "22pt"},
			{Text: "Year", X: 450, Y: 590, FontSize: "10pt"},
			{Text: "GDP (Gross Domestic Product)", X: 10, Y: 375, FontSize: "10pt", Rotate: -90},
		},
		Caption:    &Label{X: 800, Y: 530, FontSize: "14pt"},
		EmptyLabel: Label{Text: "No data for this country", X: 350, Y: 300, FontSize: "14pt"},
		Hover: &HoverOptions{
			ShowOpacity:  0.9,
			ShowDuration: 200 * time.Millisecond,
			HideOpacity:  0,
			HideDuration: 500 * time.Millisecond,
			OffsetY:      -28,
		},
	}
}

// TooltipDefaults returns the options of the population vs GDP chart shown
// inside the tooltip.
func TooltipDefaults() Options {
	return Options{
		Name:   "tooltip-chart",
		Width:  300,
		Height: 300,
		X: AxisOptions{
			Field:  models.FieldPopulation,
			From:   50,
			To:     250,
			Ticks:  7,
			Format: scale.FormatSI,
			Offset: 250,
		},
		Y: AxisOptions{
			Field:   models.FieldGDP,
			From:    250,
			To:      50,
			Padding: scale.Padding{Lo: 25},
			Ticks:   10,
			Format:  scale.FormatSI,
			Offset:  50,
		},
		Point: PointStyle{
			Radius:      3,
			Fill:        "#787777",
			Stroke:      "#000000",
			Opacity:     0.6,
			TitleFormat: scale.FormatSI,
		},
		Labels: []Label{
			{Text: "Population vs GDP", X: 80, Y: 30, FontSize: "12pt"},
			{Text: "Population", X: 125, Y: 280, FontSize: "8pt"},
			{Text: "GDP", X: 17, Y: 170, FontSize: "8pt", Rotate: -90},
		},
		EmptyLabel: Label{Text: "No data", X: 130, Y: 150, FontSize: "10pt"},
	}
}

// Validate reports the first problem that would make the options unusable.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("chart %q: width and height must be positive", o.Name)
	}

	if err := o.X.validate(); err != nil {
		return fmt.Errorf("chart %q: x axis: %w", o.Name, err)
	}
	if err := o.Y.validate(); err != nil {
		return fmt.Errorf("chart %q: y axis: %w", o.Name, err)
	}

	if o.Point.Radius < 0 {
		return fmt.Errorf("chart %q: point radius must not be negative", o.Name)
	}
	if !o.Point.TitleFormat.Valid() {
		return fmt.Errorf("chart %q: unknown point title format %q", o.Name, o.Point.TitleFormat)
	}

	return nil
}

func (a AxisOptions) validate() error {
	switch a.Field {
	case models.FieldYear, models.FieldGDP, models.FieldPopulation:
	default:
		return fmt.Errorf("unknown field %q", a.Field)
	}

	if a.From == a.To {
		return errors.New("pixel range must not be empty")
	}
	if a.Ticks < 0 {
		return errors.New("tick count must not be negative")
	}
	if a.Padding.Lo < 0 || a.Padding.Hi < 0 {
		return errors.New("padding must not be negative")
	}
	if !a.Format.Valid() {
		return fmt.Errorf("unknown format %q", a.Format)
	}

	return nil
}
