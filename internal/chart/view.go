package chart

import (
	"github.com/gdpscope/core/internal/models"
	"github.com/gdpscope/core/internal/scale"
)

// ViewSurface records draw calls as a models.ChartView for JSON clients.
type ViewSurface struct {
	view models.ChartView
}

func NewViewSurface(opts Options) *ViewSurface {
	s := &ViewSurface{view: models.ChartView{Name: opts.Name, Width: opts.Width, Height: opts.Height}}
	s.Clear()
	return s
}

func (s *ViewSurface) Clear() {
	s.view.Axes = []models.AxisView{}
	s.view.Points = []models.PointView{}
	s.view.Labels = []models.LabelView{}
}

func (s *ViewSurface) RenderAxis(orientation Orientation, mapper *scale.Linear, tickCount int, style AxisStyle) {
	lo, hi := mapper.Domain()
	axis := models.AxisView{
		Orientation: string(orientation),
		Offset:      style.Offset,
		DomainMin:   lo,
		DomainMax:   hi,
		Degenerate:  mapper.Degenerate(),
		Ticks:       []models.TickView{},
	}

	for _, v := range mapper.Ticks(tickCount) {
		axis.Ticks = append(axis.Ticks, models.TickView{Value: v, Pixel: mapper.Map(v), Label: style.Format.Apply(v)})
	}

	s.view.Axes = append(s.view.Axes, axis)
}

func (s *ViewSurface) RenderPoint(x, y float64, hints StyleHints) {
	s.view.Points = append(s.view.Points, models.PointView{
		X:       x,
		Y:       y,
		Radius:  hints.Radius,
		Fill:    hints.Fill,
		Stroke:  hints.Stroke,
		Opacity: hints.Opacity,
		Title:   hints.Title,
		Enter:   commandView(hints.Enter),
		Leave:   commandView(hints.Leave),
	})
}

func (s *ViewSurface) RenderLabel(label Label) {
	s.view.Labels = append(s.view.Labels, models.LabelView{
		Text:     label.Text,
		X:        label.X,
		Y:        label.Y,
		FontSize: label.FontSize,
		Rotate:   label.Rotate,
	})
}

// View returns a copy of the recorded chart.
func (s *ViewSurface) View() models.ChartView {
	v := s.view
	v.Axes = append([]models.AxisView{}, s.view.Axes...)
	v.Points = append([]models.PointView{}, s.view.Points...)
	v.Labels = append([]models.LabelView{}, s.view.Labels...)
	return v
}

func commandView(cmd *TooltipCommand) *models.CommandView {
	if cmd == nil {
		return nil
	}
	return &models.CommandView{
		Action:     string(cmd.Action),
		X:          cmd.Position.X,
		Y:          cmd.Position.Y,
		Opacity:    cmd.Opacity,
		DurationMS: cmd.Duration.Milliseconds(),
	}
}
