package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/san-kum/polyview/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	frameRate  int
	verbose    bool
	// shape dimensions
	side, radius, height, length, width, depth, major, minor float64
	// rotation state and input
	rx, ry, rz     float64
	dragDX, dragDY float64
	auto           bool
	elapsed        time.Duration
	period         time.Duration
	// terminal canvas
	cols, rows int
	grid       float64
	// file output
	outPath   string
	imgWidth  int
	imgHeight int
	braille   bool
	plain     bool
	numFrames int
)

var settings *viper.Viper

// main registers commands and flags, launches the terminal viewer when no
// subcommand is given and exits with status 1 if a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "polyview [shape]",
		Short: "procedural 3d shape viewer",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE:         runViewer,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	registerSceneFlags(pf)

	settings = newSettings(pf)

	renderCmd := &cobra.Command{
		Use:   "render [shape]",
		Short: "print one frame as colored braille",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().BoolVar(&plain, "plain", false, "no color")

	svgCmd := &cobra.Command{
		Use:   "svg [shape]",
		Short: "write one frame as svg",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().BoolVar(&braille, "braille", false, "export the braille canvas instead of polygons")

	pngCmd := &cobra.Command{
		Use:   "png [shape]",
		Short: "write one frame as png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportPNG,
	}

	gifCmd := &cobra.Command{
		Use:   "gif [shape]",
		Short: "write one auto-rotation period as an animated gif",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	gifCmd.Flags().IntVar(&numFrames, "frames", 60, "frames per period")

	for _, c := range []*cobra.Command{svgCmd, pngCmd, gifCmd} {
		c.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <shape>.<ext>)")
		c.Flags().IntVar(&imgWidth, "px-width", 640, "image width in pixels")
		c.Flags().IntVar(&imgHeight, "px-height", 480, "image height in pixels")
	}

	statsCmd := &cobra.Command{
		Use:   "stats [shape]",
		Short: "face count, depth profile and light histogram",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showStats,
	}

	snapCmd := &cobra.Command{
		Use:   "snap [shape]",
		Short: "save one frame to the snapshot store",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveSnapshot,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list snapshots",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "print a saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  showSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list shape kinds",
		Args:  cobra.NoArgs,
		RunE:  listShapes,
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}

	guiCmd := &cobra.Command{
		Use:   "gui [shape]",
		Short: "open the shape in a raylib window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}

	rootCmd.AddCommand(renderCmd, svgCmd, pngCmd, gifCmd, statsCmd, snapCmd, listCmd, showCmd, presetsCmd, shapesCmd, initCmd, guiCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// registerSceneFlags defines the flags every scene-producing command shares.
func registerSceneFlags(pf *pflag.FlagSet) {
	pf.StringVar(&dataDir, "data", ".polyview", "snapshot directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	pf.Float64Var(&side, "side", 0, "edge length (cube, pyramid, triangular_prism)")
	pf.Float64Var(&radius, "radius", 0, "radius (sphere, hemisphere, cylinder, cone)")
	pf.Float64Var(&height, "height", 0, "height (cylinder, cone, pyramid)")
	pf.Float64Var(&length, "length", 0, "length (rectangular_prism, triangular_prism)")
	pf.Float64Var(&width, "width", 0, "width (rectangular_prism)")
	pf.Float64Var(&depth, "depth", 0, "depth (rectangular_prism)")
	pf.Float64Var(&major, "major", 0, "major radius (torus)")
	pf.Float64Var(&minor, "minor", 0, "minor radius (torus)")

	pf.Float64Var(&rx, "rx", 0, "rotation about x in degrees")
	pf.Float64Var(&ry, "ry", 0, "rotation about y in degrees")
	pf.Float64Var(&rz, "rz", 0, "rotation about z in degrees")
	pf.Float64Var(&dragDX, "drag-dx", 0, "horizontal drag in pixels")
	pf.Float64Var(&dragDY, "drag-dy", 0, "vertical drag in pixels")
	pf.BoolVar(&auto, "auto", false, "auto-rotate about y")
	pf.DurationVar(&elapsed, "elapsed", 0, "time since auto-rotation started")
	pf.DurationVar(&period, "period", time.Duration(config.DefaultPeriodMs)*time.Millisecond, "auto-rotation period")

	pf.IntVar(&cols, "cols", config.DefaultCols, "canvas columns")
	pf.IntVar(&rows, "rows", config.DefaultRows, "canvas rows")
	pf.Float64Var(&grid, "grid", config.DefaultGrid, "background grid spacing in pixels (0 = off)")
}
