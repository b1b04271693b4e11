package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bucketsim/internal/automation"
	"github.com/san-kum/bucketsim/internal/config"
	"github.com/san-kum/bucketsim/internal/dynamo"
	"github.com/san-kum/bucketsim/internal/experiment"
	"github.com/san-kum/bucketsim/internal/gui"
	"github.com/san-kum/bucketsim/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	preset     string

	frames     int
	scriptFile string
	realtime   bool
	compare    string
	noPlot     bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bucketsim: ")

	rootCmd := &cobra.Command{
		Use:   "bucketsim",
		Short: "ball in a parabolic bucket",
		Args:  cobra.NoArgs,
		RunE:  runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset (see 'presets')")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTerminal,
	}

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "run without a window and report",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	headlessCmd.Flags().IntVar(&frames, "frames", 600, "render frames to run")
	headlessCmd.Flags().StringVar(&scriptFile, "script", "", "YAML pointer script")
	headlessCmd.Flags().BoolVar(&realtime, "realtime", false, "throttle to the render rate")
	headlessCmd.Flags().StringVar(&compare, "compare", "", "comma separated presets to run side by side")
	headlessCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the height plot")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, headlessCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --config and --preset. A config file takes precedence.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		if preset != "" {
			log.Printf("--config %s overrides --preset %s", configFile, preset)
		}
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	err = gui.Run(cfg)
	if errors.Is(err, dynamo.ErrBackendUnavailable) {
		log.Printf("%v; try 'bucketsim tui'", err)
	}
	return err
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sess, err := experiment.Setup(cfg)
	if err != nil {
		return err
	}
	return viz.Run(sess, cfg.Title)
}

// wrapLogger reports every frame in which a body crossed an edge.
type wrapLogger struct{}

func (wrapLogger) OnFrame(f dynamo.Frame) {
	if f.Wraps > 0 {
		log.Printf("frame %d (t=%.2fs): wrapped to %v, v=%v", f.Index, f.Time, f.Position, f.Velocity)
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := experiment.RunOptions{Frames: frames, Realtime: realtime}
	if scriptFile != "" {
		script, err := automation.LoadScript(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to load script: %w", err)
		}
		if script.Frames() > frames {
			log.Printf("script runs to frame %d, only %d frames requested", script.Frames(), frames)
		}
		opts.Script = script
	}

	if compare != "" {
		return runCompare(ctx, strings.Split(compare, ","), opts)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	exp := experiment.New(cfg)
	if err := exp.Setup(); err != nil {
		return err
	}
	exp.Session().AddObserver(wrapLogger{})

	res, err := exp.Run(ctx, opts)
	if errors.Is(err, context.Canceled) {
		log.Printf("interrupted after %d frames", len(res.Frames))
	} else if err != nil {
		return err
	}

	printResult(res, cfg)
	return nil
}

func printResult(res *experiment.Result, cfg *config.Config) {
	last := dynamo.Frame{}
	if n := len(res.Frames); n > 0 {
		last = res.Frames[n-1]
	}

	fmt.Printf("frames: %d (%d physics steps, %.2fs simulated, %v wall)\n", len(res.Frames), res.Steps, last.Time, res.Elapsed.Round(time.Millisecond))
	fmt.Printf("final: pos=%v vel=%v\n", last.Position, last.Velocity)
	fmt.Printf("wraps: %d\n", res.Wraps)
	fmt.Printf("peak speed: %.2f\n", res.PeakSpeed)

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %.4f\n", name, res.Metrics[name])
	}

	if noPlot || len(res.Frames) < 2 {
		return
	}
	// screen y grows downward; plot height above the bottom edge instead
	heights := res.Heights()
	for i, y := range heights {
		heights[i] = cfg.Viewport.Height - y
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("ball height above bottom edge (px)"),
	))
}

func runCompare(ctx context.Context, names []string, opts experiment.RunOptions) error {
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	runs, err := experiment.PresetRuns(names)
	if err != nil {
		return err
	}

	results, err := experiment.RunEnsemble(ctx, runs, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tFRAMES\tWRAPS\tPEAK SPEED\tFINAL Y")
	for _, r := range results {
		if r == nil {
			continue
		}
		finalY := 0.0
		if n := len(r.Frames); n > 0 {
			finalY = r.Frames[n-1].Position.Y
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n", r.Name, len(r.Frames), r.Wraps, r.PeakSpeed, finalY)
	}
	return w.Flush()
}
