package chart

import "github.com/gdpscope/core/internal/scale"

type drawCall struct {
	kind  string
	x, y  float64
	hints StyleHints
	label Label
	axis  Orientation
	lo    float64
	hi    float64
	ticks int
}

// recordingSurface keeps every call since the last Clear.
type recordingSurface struct {
	calls  []drawCall
	clears int
}

func (r *recordingSurface) Clear() {
	r.calls = nil
	r.clears++
}

func (r *recordingSurface) RenderAxis(orientation Orientation, mapper *scale.Linear, tickCount int, style AxisStyle) {
	lo, hi := mapper.Domain()
	r.calls = append(r.calls, drawCall{kind: "axis", axis: orientation, lo: lo, hi: hi, ticks: tickCount})
}

func (r *recordingSurface) RenderPoint(x, y float64, hints StyleHints) {
	r.calls = append(r.calls, drawCall{kind: "point", x: x, y: y, hints: hints})
}

func (r *recordingSurface) RenderLabel(label Label) {
	r.calls = append(r.calls, drawCall{kind: "label", label: label})
}

func (r *recordingSurface) points() []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.kind == "point" {
			out = append(out, c)
		}
	}
	return out
}

func (r *recordingSurface) labels() []string {
	var out []string
	for _, c := range r.calls {
		if c.kind == "label" {
			out = append(out, c.label.Text)
		}
	}
	return out
}

func (r *recordingSurface) axes() []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.kind == "axis" {
			out = append(out, c)
		}
	}
	return out
}
