package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/palette"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot matrix with an optional color per cell. Sub-pixel
// coordinates run from (0, 0) to (Width*2-1, Height*4-1).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	tint          [][]palette.Color
	tinted        [][]bool
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		tint:   make([][]palette.Color, h),
		tinted: make([][]bool, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.tint[i] = make([]palette.Color, w)
		c.tinted[i] = make([]bool, w)
	}
	c.Clear()
	return c
}

// PixelSize returns the canvas size in sub-pixels.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

func (c *Canvas) cell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = x/2, y/4
	if col >= c.Width || row >= c.Height {
		return 0, 0, false
	}
	return row, col, true
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetColor sets a pixel and tints its cell. The last color written to a cell
// wins.
func (c *Canvas) SetColor(x, y int, col palette.Color) {
	row, cc, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][cc] |= rune(pixelMap[y%4][x%2])
	c.tint[row][cc] = col
	c.tinted[row][cc] = true
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	row, col, ok := c.cell(x, y)
	if !ok {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	row, col, ok := c.cell(x, y)
	if !ok {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Tint returns the color of a cell and whether one was written.
func (c *Canvas) Tint(row, col int) (palette.Color, bool) {
	if row < 0 || col < 0 || row >= c.Height || col >= c.Width {
		return palette.Color{}, false
	}
	return c.tint[row][col], c.tinted[row][col]
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.tinted[i][j] = false
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	c.line(pt(x0, y0), pt(x1, y1), c.Set)
}

// DrawLineColor is DrawLine with a cell tint.
func (c *Canvas) DrawLineColor(x0, y0, x1, y1 int, col palette.Color) {
	c.line(pt(x0, y0), pt(x1, y1), func(x, y int) { c.SetColor(x, y, col) })
}

// EraseLine clears the pixels along a line.
func (c *Canvas) EraseLine(x0, y0, x1, y1 int) {
	c.line(pt(x0, y0), pt(x1, y1), c.Unset)
}

func pt(x, y int) geom.Point2D { return geom.Point2D{X: float64(x), Y: float64(y)} }

// bounds is the pixel area lines are clipped to, one pixel of slack on
// each side.
func (c *Canvas) bounds() geom.Rect {
	w, h := c.PixelSize()
	return geom.Rect{MinX: -1, MinY: -1, MaxX: float64(w), MaxY: float64(h)}
}

// line clips a-b to the canvas before walking it.
func (c *Canvas) line(a, b geom.Point2D, plot func(x, y int)) {
	a, b, ok := geom.ClipSegment(a, b, c.bounds())
	if !ok {
		return
	}
	bresenham(int(math.Floor(a.X)), int(math.Floor(a.Y)), int(math.Floor(b.X)), int(math.Floor(b.Y)), plot)
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillPolygon fills pts with the even-odd rule, sampling each pixel at its
// center. Every covered pixel is set and its cell tinted with col.
func (c *Canvas) FillPolygon(pts []geom.Point2D, col palette.Color) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	w, h := c.PixelSize()
	if maxY < 0 || minY > float64(h) {
		return
	}
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(h-1, int(math.Ceil(maxY)))

	xs := make([]float64, 0, len(pts))
	for y := y0; y <= y1; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo := math.Max(xs[i], -1)
			hi := math.Min(xs[i+1], float64(w)+1)
			from := max(0, int(math.Ceil(lo-0.5)))
			to := min(w-1, int(math.Ceil(hi-0.5))-1)
			for x := from; x <= to; x++ {
				c.SetColor(x, y, col)
			}
		}
	}
}

// DrawPolygon strokes the closed outline of pts.
func (c *Canvas) DrawPolygon(pts []geom.Point2D, col palette.Color) {
	polyEdges(pts, func(a, b geom.Point2D) { c.line(a, b, func(x, y int) { c.SetColor(x, y, col) }) })
}

// ErasePolygon clears the outline of pts, leaving a dark seam between
// neighbouring filled faces.
func (c *Canvas) ErasePolygon(pts []geom.Point2D) {
	polyEdges(pts, func(a, b geom.Point2D) { c.line(a, b, c.Unset) })
}

func polyEdges(pts []geom.Point2D, edge func(a, b geom.Point2D)) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		edge(pts[i], pts[(i+1)%len(pts)])
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// ColorString renders the canvas with each tinted cell colored by lipgloss.
// Runs of cells sharing a color are styled together.
func (c *Canvas) ColorString() string {
	var b strings.Builder
	for i, row := range c.Grid {
		var run []rune
		runHex := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runHex == "" {
				b.WriteString(string(run))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runHex)).Render(string(run)))
			}
			run = run[:0]
		}
		for j, r := range row {
			hex := ""
			if c.tinted[i][j] && r != brailleBlank {
				hex = c.tint[i][j].Clamped().Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run = append(run, r)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
