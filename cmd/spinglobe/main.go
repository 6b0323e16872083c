package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinglobe/internal/anim"
	"github.com/san-kum/spinglobe/internal/config"
	"github.com/san-kum/spinglobe/internal/debuglog"
	"github.com/san-kum/spinglobe/internal/export"
	"github.com/san-kum/spinglobe/internal/metrics"
	"github.com/san-kum/spinglobe/internal/render"
	"github.com/san-kum/spinglobe/internal/screen"
	"github.com/san-kum/spinglobe/internal/storage"
	"github.com/san-kum/spinglobe/internal/texture"
	"github.com/san-kum/spinglobe/internal/viz"
)

var (
	dataDir    string
	configFile string
	debugFile  string
	preset     string
	// Overrides for config values
	texturePath       string
	glyphs            string
	theme             string
	step              float64
	fps               int
	frames            int
	recordFrames      int
	benchFrames       int
	presenter         string
	ignoreWriteErrors bool
	// Single-frame commands
	rotation float64
	outFile  string
	svgScale float64

	debugCloser io.Closer
)

// main plays the animation when no subcommand is given. An unreadable
// texture exits with status 1 and no output.
func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, texture.ErrUnreadable) {
			fmt.Fprintf(os.Stderr, "spinglobe: %v\n", err)
		}
		os.Exit(1)
	}
}

// run executes one command line. The debug log is closed however the
// command ends, since cobra skips post-run hooks after an error.
func run(args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	defer closeDebugLog()
	return rootCmd.Execute()
}

func closeDebugLog() {
	if debugCloser == nil {
		return
	}
	debugCloser.Close()
	debugCloser = nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "spinglobe",
		Short:         "rotating texture-mapped sphere for the terminal",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runAnimation,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFile == "" {
				return nil
			}
			c, err := debuglog.Open(debugFile)
			if err != nil {
				return err
			}
			debugCloser = c
			debuglog.Printf("spinglobe: %s started", cmd.Name())
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".spinglobe", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&debugFile, "debug", "", "write debug log to file")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&texturePath, "texture", config.DefaultTexture, "texture file")
	pf.StringVar(&glyphs, "glyphs", config.DefaultGlyphs, "glyph source ("+strings.Join(texture.SourceNames(), ", ")+")")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.Float64Var(&step, "step", config.DefaultStep, "rotation per frame in radians")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")

	rootCmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames (0 runs forever)")
	rootCmd.Flags().StringVar(&presenter, "presenter", config.DefaultPresenter, "output (ansi, screen)")
	rootCmd.Flags().BoolVar(&ignoreWriteErrors, "ignore-write-errors", false, "keep running when output fails")

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render a single frame",
		Args:  cobra.NoArgs,
		RunE:  renderFrame,
	}
	frameCmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation in radians")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record the animation as an asciicast",
		Args:  cobra.NoArgs,
		RunE:  recordAnimation,
	}
	recordCmd.Flags().IntVar(&recordFrames, "frames", 180, "number of frames")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure frame time and coverage",
		Args:  cobra.NoArgs,
		RunE:  benchmark,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 360, "number of frames")

	svgCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "render a single frame as SVG",
		Args:  cobra.NoArgs,
		RunE:  exportSVG,
	}
	svgCmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation in radians")
	svgCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	svgCmd.Flags().Float64Var(&svgScale, "scale", export.DefaultSVGOptions().Scale, "dot cell size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(frameCmd, tuiCmd, recordCmd, listCmd, benchCmd, svgCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file, and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("texture") {
		cfg.Texture = texturePath
	}
	if flags.Changed("glyphs") {
		cfg.Glyphs = glyphs
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("presenter") {
		cfg.Presenter = presenter
	}
	if flags.Changed("ignore-write-errors") {
		cfg.IgnoreWriteErrors = ignoreWriteErrors
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if debuglog.Enabled() {
		if data, err := yaml.Marshal(cfg); err == nil {
			debuglog.Printf("config:\n%s", data)
		}
	}
	return cfg, nil
}

func loadRenderer(cfg *config.Config) (*render.Renderer, error) {
	src, err := texture.ParseSource(cfg.Glyphs)
	if err != nil {
		return nil, err
	}
	m, err := texture.Load(cfg.Texture)
	if err != nil {
		debuglog.Printf("texture: %v", err)
		return nil, err
	}
	debuglog.Printf("texture: loaded %s (%dx%d, %d glyphs), source %s",
		cfg.Texture, m.Width(), m.Height(), len(m.Glyphs()), src)
	return render.New(texture.NewSampler(m, src)), nil
}

func setup(cmd *cobra.Command) (*config.Config, *render.Renderer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	r, err := loadRenderer(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, r, nil
}

// frameCount prefers an explicit --frames, then a bounded config, then the
// command's default.
func frameCount(cmd *cobra.Command, flagValue, configured int) int {
	if cmd.Flags().Changed("frames") || configured == 0 {
		return flagValue
	}
	return configured
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func noPause(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, r, err := setup(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("frames") {
		if frames < 0 {
			return fmt.Errorf("%w, got %d", config.ErrInvalidFrames, frames)
		}
		cfg.Frames = frames
	}

	ctx, stop := signalContext()
	defer stop()

	var p anim.Presenter
	switch cfg.Presenter {
	case "screen":
		sp, err := screen.New()
		if err != nil {
			return err
		}
		defer sp.Close()
		sp.SetForeground(tcell.GetColor(string(viz.GetTheme(cfg.Theme).Globe)))

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		sp.Watch(cancel)
		p = sp
	default:
		p = anim.NewANSIPresenter(os.Stdout)
	}

	loop := anim.New(r, p,
		anim.WithStep(cfg.Step),
		anim.WithInterval(cfg.Interval()),
		anim.WithMaxFrames(cfg.Frames),
		anim.WithIgnoreWriteErrors(cfg.IgnoreWriteErrors),
	)
	return loop.Run(ctx)
}

func renderFrame(cmd *cobra.Command, args []string) error {
	_, r, err := setup(cmd)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(r.Render(rotation).Bytes())
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, r, err := setup(cmd)
	if err != nil {
		return err
	}
	return viz.Run(viz.New(r, viz.Options{
		Step:     cfg.Step,
		Interval: cfg.Interval(),
		Theme:    cfg.Theme,
		Glyphs:   cfg.Glyphs,
	}))
}

func recordAnimation(cmd *cobra.Command, args []string) error {
	cfg, r, err := setup(cmd)
	if err != nil {
		return err
	}
	cfg.Frames = frameCount(cmd, recordFrames, cfg.Frames)
	if cfg.Frames <= 0 {
		return fmt.Errorf("record needs a positive frame count")
	}

	st := storage.New(dataDir)
	id, f, err := st.Create(cfg.Glyphs)
	if err != nil {
		return err
	}
	defer f.Close()

	rec, err := storage.NewCastRecorder(f, r.Width(), r.Height(), cfg.Interval())
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(metrics.NewCoverage(), metrics.NewGlyphVariety())
	ctx, stop := signalContext()
	defer stop()

	loop := anim.New(r, rec,
		anim.WithStep(cfg.Step),
		anim.WithInterval(cfg.Interval()),
		anim.WithMaxFrames(cfg.Frames),
		anim.WithSleep(noPause),
	)
	loop.AddObserver(collector)
	if err := loop.Run(ctx); err != nil {
		return err
	}

	meta := storage.RecordingMetadata{
		ID:        id,
		Texture:   cfg.Texture,
		Glyphs:    cfg.Glyphs,
		Timestamp: time.Now(),
		Step:      cfg.Step,
		FPS:       cfg.FPS,
		Frames:    loop.Frames(),
		Width:     r.Width(),
		Height:    r.Height(),
		Metrics:   collector.Results(),
	}
	if err := st.SaveMetadata(meta); err != nil {
		return err
	}

	fmt.Printf("saved %s (%d frames) to %s\n", id, loop.Frames(), st.CastPath(id))
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGLYPHS\tTIME\tFRAMES\tSIZE\tCOVERAGE")

	for _, rec := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dx%d\t%.1f%%\n",
			rec.ID,
			rec.Glyphs,
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.Frames,
			rec.Width,
			rec.Height,
			rec.Metrics["coverage"]*100,
		)
	}

	return w.Flush()
}

func benchmark(cmd *cobra.Command, args []string) error {
	cfg, r, err := setup(cmd)
	if err != nil {
		return err
	}
	cfg.Frames = frameCount(cmd, benchFrames, cfg.Frames)
	if cfg.Frames <= 0 {
		return fmt.Errorf("bench needs a positive frame count")
	}

	frameTime := metrics.NewFrameTime()
	coverage := metrics.NewCoverage()
	collector := metrics.NewCollector(frameTime, coverage)
	collector.Add(metrics.NewGlyphVariety())

	ctx, stop := signalContext()
	defer stop()

	start := time.Now()
	loop := anim.New(r, anim.NewANSIPresenter(io.Discard),
		anim.WithStep(cfg.Step),
		anim.WithMaxFrames(cfg.Frames),
		anim.WithSleep(noPause),
		anim.WithObserver(collector),
	)
	if err := loop.Run(ctx); err != nil {
		return err
	}
	elapsed := time.Since(start)

	results := collector.Results()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "size\t%dx%d\n", r.Width(), r.Height())
	fmt.Fprintf(w, "frames\t%d\n", loop.Frames())
	fmt.Fprintf(w, "total\t%v\n", elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "frame_ms\t%.3f\n", results["frame_ms"])
	fmt.Fprintf(w, "max fps\t%.0f\n", float64(loop.Frames())/elapsed.Seconds())
	fmt.Fprintf(w, "coverage\t%.1f%%\n", results["coverage"]*100)
	fmt.Fprintf(w, "glyph_variety\t%.0f\n", results["glyph_variety"])
	if err := w.Flush(); err != nil {
		return err
	}

	if series := frameTime.Series(); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("frame time (ms)"),
		))
	}
	if series := coverage.Series(); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("sphere coverage"),
		))
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, r, err := setup(cmd)
	if err != nil {
		return err
	}

	opts := export.DefaultSVGOptions()
	opts.Scale = svgScale
	svg := export.FrameToSVG(r.Render(rotation), opts)

	if outFile == "" {
		_, err := fmt.Println(svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTEP\tFPS\tGLYPHS\tTHEME")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f°\t%d\t%s\t%s\n", name, p.Step*180/math.Pi, p.FPS, p.Glyphs, p.Theme)
	}
	return w.Flush()
}
