package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/polyview/internal/geom"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/motion"
	"github.com/san-kum/polyview/internal/render"
	"github.com/san-kum/polyview/internal/viz"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	maxTelemetry = 240
)

// HUD colors
var (
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type App struct {
	Renderer    *render.Renderer
	Ctrl        *motion.Controller
	Initial     geom.Rotation
	Kinds       []mesh.Kind
	Selected    int
	Params      mesh.Params
	Theme       viz.Theme
	ShowGrid    bool
	GridSpacing float64
	Font        rl.Font
	Telemetry   []float64 // mean light intensity per frame
	FPS         int32
}

// initWindow opens the window, sets the target FPS and disables the default
// exit key.
func initWindow(fps int32) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "polyview")
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when present and falls back to the raylib
// default font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(opts viz.Options, r *render.Renderer) *App {
	if r == nil {
		r = render.New(mesh.NewCache(0))
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	kinds := mesh.Kinds()
	sel := 0
	for i, k := range kinds {
		if k == opts.Kind {
			sel = i
		}
	}
	ctrl := motion.NewController(opts.Rotation, opts.Period)
	if opts.AutoRotate {
		ctrl.SetAuto(true, time.Now())
	}
	spacing := opts.GridSpacing
	if spacing <= 0 {
		spacing = 40
	}
	return &App{
		Renderer:    r,
		Ctrl:        ctrl,
		Initial:     opts.Rotation,
		Kinds:       kinds,
		Selected:    sel,
		Params:      opts.Params.WithDefaults(),
		Theme:       viz.GetTheme(opts.Theme),
		ShowGrid:    opts.GridSpacing > 0,
		GridSpacing: spacing,
		Telemetry:   make([]float64, 0, maxTelemetry),
		FPS:         int32(opts.FPS),
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts viz.Options, r *render.Renderer) {
	app := NewApp(opts, r)
	initWindow(app.FPS)
	defer rl.CloseWindow()
	app.Font = loadFont()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		now := time.Now()
		if !a.Update(now) {
			return
		}
		a.Draw(now)
	}
}

// Update handles input. It returns false when the user quits.
func (a *App) Update(now time.Time) bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Ctrl.Toggle(now)
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.Selected = (a.Selected + 1) % len(a.Kinds)
		a.Telemetry = a.Telemetry[:0]
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.Theme = viz.NextTheme(a.Theme.Name)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.ShowGrid = !a.ShowGrid
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Ctrl = motion.NewController(a.Initial, a.Ctrl.Period)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		a.Ctrl.Drag(float64(d.X), float64(d.Y))
	}
	return true
}

// Scene returns what the window shows at now.
func (a *App) Scene(now time.Time) render.Scene {
	s := render.Scene{
		Kind:     a.Kinds[a.Selected],
		Params:   a.Params,
		Rotation: a.Ctrl.Rotation(now),
		Width:    windowWidth,
		Height:   windowHeight,
		Palette:  a.Theme.Palette(),
	}
	if a.ShowGrid {
		s.GridSpacing = a.GridSpacing
	}
	return s
}

func (a *App) Draw(now time.Time) {
	scene := a.Scene(now)
	frame := a.Renderer.Render(scene)
	a.record(frame)

	rl.BeginDrawing()
	rl.ClearBackground(toColor(frame.Background))
	DrawFrame(frame)
	a.DrawHUD(scene, frame)
	rl.EndDrawing()
}

func (a *App) record(frame render.Frame) {
	if len(frame.Polygons) == 0 {
		return
	}
	var sum float64
	for _, p := range frame.Polygons {
		sum += p.Intensity
	}
	if len(a.Telemetry) == maxTelemetry {
		copy(a.Telemetry, a.Telemetry[1:])
		a.Telemetry = a.Telemetry[:maxTelemetry-1]
	}
	a.Telemetry = append(a.Telemetry, sum/float64(len(frame.Polygons)))
}

func (a *App) DrawHUD(scene render.Scene, frame render.Frame) {
	a.drawText("polyview", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", scene.Kind), 160, 34, 16, ColText)
	a.drawText(scene.Kind.Description(), 30, 60, 14, ColTextDim)

	status := "MANUAL"
	col := ColTextDim
	if a.Ctrl.AutoRotating() {
		status = "AUTO"
		col = ColSelect
	}
	a.drawText(status, 1150, 30, 16, col)

	r := scene.Rotation
	a.drawText(fmt.Sprintf("rx %6.1f  ry %6.1f  rz %6.1f", r.X, r.Y, r.Z), 30, 90, 14, ColText)
	a.drawText(fmt.Sprintf("%d faces  theme %s", len(frame.Polygons), a.Theme.Name), 30, 110, 14, ColText)

	a.DrawTelemetry()

	a.drawText("[DRAG] ROTATE  [SPACE] AUTO  [TAB] SHAPE  [T] THEME  [G] GRID  [R] RESET  [Q] QUIT", 520, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawTelemetry() {
	if len(a.Telemetry) < 2 {
		return
	}

	rectX, rectY := 30, 600
	width, height := 400, 60

	// intensity is bounded, so the plot uses the fixed shading range
	lo, hi := render.MinIntensity, render.MaxIntensity

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(rectX) + (float32(i)/float32(maxTelemetry))*float32(width)
		norm := (val - lo) / (hi - lo)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("light %.2f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}
