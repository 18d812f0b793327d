package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/polyview/internal/palette"
	"github.com/san-kum/polyview/internal/render"
	"github.com/san-kum/polyview/internal/viz"
)

// FrameToSVG writes every polygon of frame as a filled, stroked <polygon> in
// draw order on top of the background and grid.
func FrameToSVG(frame render.Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, frame.Width, frame.Height, frame.Width, frame.Height, frame.Background.Clamped().Hex()))

	if len(frame.Grid) > 0 {
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-opacity="%.3f" stroke-width="1">
`, frame.GridColor.Clamped().Hex(), frame.GridColor.A))
		for _, l := range frame.Grid {
			sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, l.From.X, l.From.Y, l.To.X, l.To.Y))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(`<g stroke-linejoin="round">
`)
	for _, p := range frame.Polygons {
		if len(p.Points) < 3 {
			continue
		}
		sb.WriteString(`<polygon points="`)
		for i, pt := range p.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.2f,%.2f", pt.X, pt.Y))
		}
		sb.WriteString(fmt.Sprintf(`" fill="%s" fill-opacity="%.3f"%s/>
`, p.Fill.Clamped().Hex(), p.Fill.A, stroke(p.Outline, p.OutlineWidth)))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func stroke(c palette.Color, width float64) string {
	if width <= 0 || c.A <= 0 {
		return ` stroke="none"`
	}
	return fmt.Sprintf(` stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"`, c.Clamped().Hex(), c.A, width)
}

// CanvasToSVG converts a Braille canvas to SVG format. Tinted cells keep
// their color; the rest use fallback.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fallback string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fallback))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			fill := ""
			if c, ok := canvas.Tint(row, col); ok {
				fill = fmt.Sprintf(` fill="%s"`, c.Clamped().Hex())
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := col*2+dx, row*4+dy
					if !canvas.IsSet(x, y) {
						continue
					}
					cx := float64(x)*scale + scale/2
					cy := float64(y)*scale + scale/2
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"%s/>
`, cx, cy, dotRadius, fill))
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
