package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/motion"
	"github.com/san-kum/polyview/internal/render"
)

const (
	minCols, maxCols = 20, 160
	minRows, maxRows = 8, 60
	maxRecordFrames  = 600
	defaultGrid      = 16.0
)

type TickMsg time.Time

// Options seed a viewer session.
type Options struct {
	Kind        mesh.Kind
	Params      mesh.Params
	Rotation    geom.Rotation
	AutoRotate  bool
	Period      time.Duration
	Theme       string
	Cols, Rows  int
	FPS         int
	GridSpacing float64
}

// Model is the interactive shape viewer. Mouse drag rotates the shape while
// auto-rotation is off.
type Model struct {
	renderer    *render.Renderer
	ctrl        *motion.Controller
	initial     geom.Rotation
	kinds       []mesh.Kind
	kindIdx     int
	params      mesh.Params
	theme       Theme
	cols, rows  int
	fps         int
	gridSpacing float64
	showGrid    bool
	canvas      *Canvas
	frame       render.Frame
	now         time.Time
	ticks       int

	dragging     bool
	lastX, lastY int

	recording bool
	recorded  []render.Frame
	showHelp  bool
}

func NewModel(opts Options, r *render.Renderer) Model {
	if r == nil {
		r = render.New(mesh.NewCache(0))
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	cols := clampInt(opts.Cols, minCols, maxCols)
	rows := clampInt(opts.Rows, minRows, maxRows)

	kinds := mesh.Kinds()
	idx := 0
	for i, k := range kinds {
		if k == opts.Kind {
			idx = i
		}
	}

	now := time.Now()
	ctrl := motion.NewController(opts.Rotation, opts.Period)
	if opts.AutoRotate {
		ctrl.SetAuto(true, now)
	}

	spacing := opts.GridSpacing
	if spacing <= 0 {
		spacing = defaultGrid
	}

	m := Model{
		renderer:    r,
		ctrl:        ctrl,
		initial:     opts.Rotation,
		kinds:       kinds,
		kindIdx:     idx,
		params:      opts.Params.WithDefaults(),
		theme:       GetTheme(opts.Theme),
		cols:        cols,
		rows:        rows,
		fps:         opts.FPS,
		gridSpacing: spacing,
		showGrid:    opts.GridSpacing > 0,
		canvas:      NewCanvas(cols, rows),
		now:         now,
	}
	m.redraw()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.ctrl.Toggle(m.now)
		case "tab":
			m.kindIdx = (m.kindIdx + 1) % len(m.kinds)
		case "shift+tab":
			m.kindIdx = (m.kindIdx + len(m.kinds) - 1) % len(m.kinds)
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "g":
			m.showGrid = !m.showGrid
		case "+", "=":
			m.resize(m.cols+8, m.rows+4)
		case "-", "_":
			m.resize(m.cols-8, m.rows-4)
		case "0":
			period := m.ctrl.Period
			m.ctrl = motion.NewController(m.initial, period)
		case "r":
			m.recording = !m.recording
			if m.recording {
				m.recorded = m.recorded[:0]
			}
		case "?":
			m.showHelp = !m.showHelp
		}
		m.redraw()

	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.dragging = true
			m.lastX, m.lastY = msg.X, msg.Y
		case msg.Action == tea.MouseActionMotion && m.dragging:
			// one cell is two braille dots wide and four tall
			dx := float64(msg.X-m.lastX) * 2
			dy := float64(msg.Y-m.lastY) * 4
			m.ctrl.Drag(dx, dy)
			m.lastX, m.lastY = msg.X, msg.Y
			m.redraw()
		case msg.Action == tea.MouseActionRelease:
			m.dragging = false
		}

	case TickMsg:
		m.now = time.Time(msg)
		m.ticks++
		m.redraw()
		if m.recording && len(m.recorded) < maxRecordFrames {
			m.recorded = append(m.recorded, m.frame)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(cols, rows int) {
	cols = clampInt(cols, minCols, maxCols)
	rows = clampInt(rows, minRows, maxRows)
	if cols == m.cols && rows == m.rows {
		return
	}
	m.cols, m.rows = cols, rows
	m.canvas = NewCanvas(cols, rows)
}

// Scene describes what the current frame shows.
func (m Model) Scene() render.Scene {
	w, h := m.canvas.PixelSize()
	s := render.Scene{
		Kind:     m.kinds[m.kindIdx],
		Params:   m.params,
		Rotation: m.ctrl.Rotation(m.now),
		Width:    w,
		Height:   h,
		Palette:  m.theme.Palette(),
	}
	if m.showGrid {
		s.GridSpacing = m.gridSpacing
	}
	return s
}

func (m *Model) redraw() {
	m.frame = m.renderer.Render(m.Scene())
	m.canvas.Clear()
	Paint(m.canvas, m.frame)
}

// Frame returns the most recently rendered frame.
func (m Model) Frame() render.Frame { return m.frame }

// Recorded returns the frames captured while recording was on.
func (m Model) Recorded() []render.Frame { return m.recorded }

// FPS is the tick rate the model animates at.
func (m Model) FPS() int { return m.fps }

// View renders the TUI interface.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.ColorString())
	scene := m.Scene()

	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(scene.Kind.String()), m.theme.Primary, m.theme.Secondary) + "\n")
	s.WriteString(valueStyle.Render(scene.Kind.Description()) + "\n\n")

	status := StatusPaused.Render("MANUAL")
	if m.ctrl.AutoRotating() {
		status = StatusRunning.Render(AnimatedSpinner(m.ticks/4) + " AUTO")
	}
	if m.recording {
		status += "  " + StatusRecording.Render(fmt.Sprintf("● REC %d", len(m.recorded)))
	}
	s.WriteString(status + "\n\n")

	r := scene.Rotation
	s.WriteString(labelStyle.Render("Rotate X") + valueStyle.Render(fmt.Sprintf("%6.1f°", r.X)) + "\n")
	s.WriteString(labelStyle.Render("Rotate Y") + valueStyle.Render(fmt.Sprintf("%6.1f°", r.Y)) + "\n")
	s.WriteString(labelStyle.Render("Rotate Z") + valueStyle.Render(fmt.Sprintf("%6.1f°", r.Z)) + "\n")
	s.WriteString(labelStyle.Render("Faces") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Polygons))) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")
	for _, f := range mesh.Fields(scene.Kind) {
		s.WriteString(labelStyle.Render(f) + valueStyle.Render(fmt.Sprintf("%.2f", m.params.Get(f))) + "\n")
	}

	depths, light := profile(m.frame)
	if len(depths) > 1 {
		chart := asciigraph.Plot(depths, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("depth (draw order)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if len(light) > 0 {
		s.WriteString(labelStyle.Render("Light") + SparklineChart(light, 26) + "\n")
	}

	s.WriteString(helpStyle.Render(Separator(34) + "\nSP:Auto  TAB:Shape  T:Theme\nG:Grid   +/-:Size   R:Record\n0:Reset  ?:Help     Q:Quit"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Drag     - Rotate (manual mode)     ║
║  Space    - Toggle auto-rotation     ║
║  Tab      - Next shape               ║
║  T        - Cycle themes             ║
║  G        - Toggle grid              ║
║  +/-      - Grow/shrink canvas       ║
║  R        - Toggle GIF recording     ║
║  0        - Reset rotation           ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

func profile(f render.Frame) (depths, light []float64) {
	depths = make([]float64, len(f.Polygons))
	light = make([]float64, len(f.Polygons))
	for i, p := range f.Polygons {
		depths[i] = p.Depth
		light[i] = p.Intensity
	}
	return depths, light
}

// Run starts the viewer in the alternate screen with mouse tracking and
// returns the final model once the user quits.
func Run(opts Options, r *render.Renderer) (Model, error) {
	p := tea.NewProgram(NewModel(opts, r), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	return final.(Model), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
