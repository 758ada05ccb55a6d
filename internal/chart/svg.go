package chart

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gdpscope/core/internal/scale"
)

const tickSize = 6

// SVGSurface renders a chart into a standalone SVG document.
type SVGSurface struct {
	id     string
	width  float64
	height float64
	body   bytes.Buffer
}

func NewSVGSurface(opts Options) *SVGSurface {
	return &SVGSurface{
		id:     strcase.ToKebab(opts.Name),
		width:  opts.Width,
		height: opts.Height,
	}
}

func (s *SVGSurface) Clear() {
	s.body.Reset()
}

func (s *SVGSurface) RenderAxis(orientation Orientation, mapper *scale.Linear, tickCount int, style AxisStyle) {
	p0, p1 := mapper.Range()
	b := &s.body

	switch orientation {
	case Left:
		fmt.Fprintf(b, `<g class="axis axis-left" transform="translate(%s,0)">`, num(style.Offset))
		fmt.Fprintf(b, `<path class="domain" stroke="currentColor" fill="none" d="M-%d,%sH0V%sH-%d"/>`, tickSize, num(p0), num(p1), tickSize)
		for _, v := range mapper.Ticks(tickCount) {
			fmt.Fprintf(b, `<g class="tick" transform="translate(0,%s)"><line stroke="currentColor" x2="-%d"/><text fill="currentColor" x="-%d" dy="0.32em" text-anchor="end" font-size="10">%s</text></g>`,
				num(mapper.Map(v)), tickSize, tickSize+3, html.EscapeString(style.Format.Apply(v)))
		}
	default:
		fmt.Fprintf(b, `<g class="axis axis-bottom" transform="translate(0,%s)">`, num(style.Offset))
		fmt.Fprintf(b, `<path class="domain" stroke="currentColor" fill="none" d="M%s,%dV0H%sV%d"/>`, num(p0), tickSize, num(p1), tickSize)
		for _, v := range mapper.Ticks(tickCount) {
			fmt.Fprintf(b, `<g class="tick" transform="translate(%s,0)"><line stroke="currentColor" y2="%d"/><text fill="currentColor" y="%d" dy="0.71em" text-anchor="middle" font-size="10">%s</text></g>`,
				num(mapper.Map(v)), tickSize, tickSize+3, html.EscapeString(style.Format.Apply(v)))
		}
	}

	b.WriteString(`</g>`)
}

func (s *SVGSurface) RenderPoint(x, y float64, hints StyleHints) {
	b := &s.body

	fmt.Fprintf(b, `<circle class="dot" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" style="opacity:%s"`,
		num(x), num(y), num(hints.Radius), cssColor(hints.Fill), cssColor(hints.Stroke), num(hints.Opacity))
	writeCommand(b, "enter", hints.Enter)
	writeCommand(b, "leave", hints.Leave)

	if hints.Title == "" {
		b.WriteString(`/>`)
		return
	}
	fmt.Fprintf(b, `><title>%s</title></circle>`, html.EscapeString(hints.Title))
}

func (s *SVGSurface) RenderLabel(label Label) {
	b := &s.body
	b.WriteString(`<text`)
	if label.Rotate != 0 {
		fmt.Fprintf(b, ` transform="translate(%s,%s)rotate(%s)"`, num(label.X), num(label.Y), num(label.Rotate))
	} else {
		fmt.Fprintf(b, ` x="%s" y="%s"`, num(label.X), num(label.Y))
	}
	if label.FontSize != "" {
		fmt.Fprintf(b, ` style="font-size:%s"`, html.EscapeString(label.FontSize))
	}
	fmt.Fprintf(b, `>%s</text>`, html.EscapeString(label.Text))
}

// Bytes returns the SVG document for everything drawn since the last Clear.
func (s *SVGSurface) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" width="%s" height="%s" viewBox="0 0 %s %s">`,
		html.EscapeString(s.id), num(s.width), num(s.height), num(s.width), num(s.height))
	out.Write(s.body.Bytes())
	out.WriteString(`</svg>`)
	return out.Bytes()
}

func writeCommand(b *bytes.Buffer, event string, cmd *TooltipCommand) {
	if cmd == nil {
		return
	}
	fmt.Fprintf(b, ` data-%s="%s" data-%s-opacity="%s" data-%s-ms="%d"`,
		event, cmd.Action, event, num(cmd.Opacity), event, cmd.Duration.Milliseconds())
	if cmd.Action == ActionShow {
		fmt.Fprintf(b, ` data-%s-x="%s" data-%s-y="%s"`, event, num(cmd.Position.X), event, num(cmd.Position.Y))
	}
}

// num prints v with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// cssColor normalises #rgb and #rrggbb colours to rgba(); anything else,
// such as a colour name, passes through escaped.
func cssColor(c string) string {
	hex := strings.TrimPrefix(c, "#")
	if hex == c || (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return html.EscapeString(c)
	}
	return drawing.ColorFromHex(hex).String()
}
