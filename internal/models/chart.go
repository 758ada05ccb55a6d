// Package models defines the core data structures shared across the service.
// It includes dataset records, chart views and the error taxonomy.
package models

// AxisLimits holds the extremal values of the x and y fields of a chart.
type AxisLimits struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

type ChartView struct {
	Name    string      `json:"name"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Country string      `json:"country,omitempty"`
	Empty   bool        `json:"empty"`
	Limits  *AxisLimits `json:"limits,omitempty"`
	Axes    []AxisView  `json:"axes"`
	Points  []PointView `json:"points"`
	Labels  []LabelView `json:"labels"`
}

type AxisView struct {
	Orientation string     `json:"orientation"`
	Offset      float64    `json:"offset"`
	DomainMin   float64    `json:"domain_min"`
	DomainMax   float64    `json:"domain_max"`
	Degenerate  bool       `json:"degenerate,omitempty"`
	Ticks       []TickView `json:"ticks"`
}

type TickView struct {
	Value float64 `json:"value"`
	Pixel float64 `json:"pixel"`
	Label string  `json:"label"`
}

type PointView struct {
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	Radius  float64      `json:"r"`
	Fill    string       `json:"fill"`
	Stroke  string       `json:"stroke"`
	Opacity float64      `json:"opacity"`
	Title   string       `json:"title,omitempty"`
	Enter   *CommandView `json:"on_enter,omitempty"`
	Leave   *CommandView `json:"on_leave,omitempty"`
}

// CommandView is a tooltip command in wire form.
type CommandView struct {
	Action     string  `json:"action"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	Opacity    float64 `json:"opacity"`
	DurationMS int64   `json:"duration_ms"`
}

type LabelView struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize string  `json:"font_size,omitempty"`
	Rotate   float64 `json:"rotate,omitempty"`
}
