package chart

import (
	"time"

	"github.com/gdpscope/core/internal/scale"
)

type Orientation string

const (
	Bottom Orientation = "bottom"
	Left   Orientation = "left"
)

// AxisStyle carries the placement and tick format of an axis.
type AxisStyle struct {
	Offset float64
	Format scale.Format
}

// Surface is the drawing region a chart renders onto. Clear drops
// everything drawn so far.
type Surface interface {
	Clear()
	RenderAxis(orientation Orientation, mapper *scale.Linear, tickCount int, style AxisStyle)
	RenderPoint(x, y float64, hints StyleHints)
	RenderLabel(label Label)
}

type StyleHints struct {
	Radius  float64
	Fill    string
	Stroke  string
	Opacity float64
	Title   string

	// Enter and Leave are executed by the interaction layer when the
	// pointer enters or leaves the point.
	Enter *TooltipCommand
	Leave *TooltipCommand
}

type TooltipAction string

const (
	ActionShow TooltipAction = "show"
	ActionHide TooltipAction = "hide"
)

type Position struct {
	X float64
	Y float64
}

// TooltipCommand asks the interaction layer to fade the tooltip to Opacity
// over Duration. Position is only meaningful for ActionShow.
type TooltipCommand struct {
	Action   TooltipAction
	Position Position
	Opacity  float64
	Duration time.Duration
}

func ShowTooltip(pos Position, opacity float64, d time.Duration) TooltipCommand {
	return TooltipCommand{Action: ActionShow, Position: pos, Opacity: opacity, Duration: d}
}

func HideTooltip(opacity float64, d time.Duration) TooltipCommand {
	return TooltipCommand{Action: ActionHide, Opacity: opacity, Duration: d}
}
