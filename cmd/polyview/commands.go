package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/polyview/internal/config"
	"github.com/san-kum/polyview/internal/export"
	"github.com/san-kum/polyview/internal/gui"
	"github.com/san-kum/polyview/internal/mesh"
	"github.com/san-kum/polyview/internal/motion"
	"github.com/san-kum/polyview/internal/render"
	"github.com/san-kum/polyview/internal/storage"
	"github.com/san-kum/polyview/internal/viz"
	"github.com/spf13/cobra"
)

const recordingPath = "polyview.gif"

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	opts, err := viewerOptions(cfg)
	if err != nil {
		return err
	}

	final, err := viz.Run(opts, newRenderer())
	if err != nil {
		return err
	}

	frames := final.Recorded()
	if len(frames) == 0 {
		return nil
	}
	f, err := os.Create(recordingPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteGIF(f, frames, export.GIFOptions{Delay: export.DelayForFPS(final.FPS())}); err != nil {
		return err
	}
	fmt.Printf("saved %d frames to %s\n", len(frames), recordingPath)
	return nil
}

// brailleFrame renders cfg onto a fresh terminal canvas.
func brailleFrame(cfg *config.Config) (*viz.Canvas, render.Scene, render.Frame, error) {
	canvas := viz.NewCanvas(cfg.Canvas.Cols, cfg.Canvas.Rows)
	w, h := canvas.PixelSize()
	scene, err := makeScene(cfg, w, h)
	if err != nil {
		return nil, scene, render.Frame{}, err
	}
	frame := newRenderer().Render(scene)
	viz.Paint(canvas, frame)
	return canvas, scene, frame, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	canvas, scene, _, err := brailleFrame(cfg)
	if err != nil {
		return err
	}

	if plain {
		fmt.Print(canvas.String())
	} else {
		fmt.Print(canvas.ColorString())
	}
	r := scene.Rotation
	fmt.Printf("%s  rx=%.1f ry=%.1f rz=%.1f\n", scene.Kind, r.X, r.Y, r.Z)
	return nil
}

func outputFile(shape, ext string) string {
	if outPath != "" {
		return outPath
	}
	return shape + "." + ext
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	var svg string
	if braille {
		canvas, _, _, err := brailleFrame(cfg)
		if err != nil {
			return err
		}
		svg = export.CanvasToSVG(canvas, 4, "#00ff00")
	} else {
		scene, err := makeScene(cfg, imgWidth, imgHeight)
		if err != nil {
			return err
		}
		svg = export.FrameToSVG(newRenderer().Render(scene))
	}

	path := outputFile(cfg.Shape, "svg")
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportPNG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	scene, err := makeScene(cfg, imgWidth, imgHeight)
	if err != nil {
		return err
	}

	path := outputFile(cfg.Shape, "png")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WritePNG(f, newRenderer().Render(scene), cfg.Shape); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// exportGIF sweeps one full auto-rotation period.
func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if numFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", numFrames)
	}
	base, err := makeScene(cfg, imgWidth, imgHeight)
	if err != nil {
		return err
	}

	scenes := make([]render.Scene, numFrames)
	for i := range scenes {
		scenes[i] = base
		scenes[i].Rotation = motion.Resolve(motion.Input{
			Rotation:     cfg.Rotation,
			AutoRotating: true,
			Elapsed:      cfg.Period() * time.Duration(i) / time.Duration(numFrames),
			Period:       cfg.Period(),
		})
	}
	frames, err := newRenderer().RenderAll(cmd.Context(), scenes)
	if err != nil {
		return err
	}

	path := outputFile(cfg.Shape, "gif")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	delay := int(cfg.Period().Milliseconds()/10) / numFrames
	if err := export.WriteGIF(f, frames, export.GIFOptions{Delay: max(delay, 2), Caption: cfg.Shape}); err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", numFrames, path)
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	_, scene, frame, err := brailleFrame(cfg)
	if err != nil {
		return err
	}
	metrics := storage.FrameMetrics(frame)

	fmt.Printf("shape: %s (%s)\n", scene.Kind, scene.Kind.Description())
	fmt.Printf("faces: %d\n", len(frame.Polygons))
	fmt.Printf("rotation: %s\n", scene.Rotation)
	fmt.Printf("depth: %.3f .. %.3f\n", metrics["depth_min"], metrics["depth_max"])
	fmt.Printf("mean light: %.3f\n\n", metrics["intensity_mean"])

	depths := make([]float64, len(frame.Polygons))
	for i, p := range frame.Polygons {
		depths[i] = p.Depth
	}
	if len(depths) > 1 {
		fmt.Println(asciigraph.Plot(depths, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("average z in draw order")))
		fmt.Println()
	}

	hist := intensityHistogram(frame, 10)
	fmt.Println(asciigraph.Plot(hist, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("faces per light level (0.2 .. 1.0)")))
	return nil
}

func intensityHistogram(frame render.Frame, buckets int) []float64 {
	hist := make([]float64, buckets)
	span := render.MaxIntensity - render.MinIntensity
	for _, p := range frame.Polygons {
		i := int((p.Intensity - render.MinIntensity) / span * float64(buckets))
		hist[min(max(i, 0), buckets-1)]++
	}
	return hist
}

func openStore() (*storage.Store, error) {
	st := storage.New(settings.GetString("data"))
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func saveSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	_, scene, frame, err := brailleFrame(cfg)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	id, err := st.Save(scene, frame)
	if err != nil {
		return err
	}
	slog.Debug("snapshot saved", "id", id, "faces", len(frame.Polygons))
	fmt.Printf("snapshot: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	st := storage.New(settings.GetString("data"))
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tFACES\tROTATION\tTHEME")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			s.ID,
			s.Shape,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Faces,
			s.Rotation,
			s.Theme,
		)
	}
	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	st := storage.New(settings.GetString("data"))
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	polys, err := st.LoadPolygons(meta.ID)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot: %s\n", meta.ID)
	fmt.Printf("shape: %s\n", meta.Shape)
	fmt.Printf("rotation: %s\n", meta.Rotation)
	fmt.Printf("saved: %s\n\n", meta.Timestamp.Format(time.RFC3339))

	canvas := viz.NewCanvas(max((meta.Width+1)/2, 1), max((meta.Height+3)/4, 1))
	viz.Paint(canvas, render.Frame{Width: meta.Width, Height: meta.Height, Polygons: polys})
	fmt.Print(canvas.ColorString())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	shapes := make([]string, 0, len(mesh.Kinds()))
	if len(args) > 0 {
		k, err := mesh.ParseKind(args[0])
		if err != nil {
			return err
		}
		shapes = append(shapes, k.String())
	} else {
		for _, k := range mesh.Kinds() {
			shapes = append(shapes, k.String())
		}
	}

	for _, shape := range shapes {
		presets := config.ListPresets(shape)
		if len(presets) == 0 {
			continue
		}
		fmt.Printf("%s: %s\n", shape, strings.Join(presets, ", "))
	}
	return nil
}

func listShapes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHAPE\tFACES\tPARAMS\tDESCRIPTION")
	for _, k := range mesh.Kinds() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", k, mesh.FaceCount(k), strings.Join(mesh.Fields(k), ","), k.Description())
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	opts, err := viewerOptions(cfg)
	if err != nil {
		return err
	}
	gui.Run(opts, newRenderer())
	return nil
}
