package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaelum/glimmer/internal/art"
	"github.com/kaelum/glimmer/internal/config"
	"github.com/kaelum/glimmer/internal/sim"
	"github.com/kaelum/glimmer/internal/stats"
	"github.com/kaelum/glimmer/internal/term"
	"github.com/kaelum/glimmer/internal/tui"
	"github.com/spf13/cobra"
)

var (
	width  int
	height int
	fps    int
	seed   int64
	theme  string
	// Config file
	configFile string
	// Preset name
	preset string
	// Art output
	svgPath string
	// Stats options
	samples int
	csvPath string
)

// main registers the glimmer commands and runs the particle animation
// when no subcommand is given. It exits with status 1 if command
// execution returns an error, so an interrupted animation still exits 0.
func main() {
	rootCmd := &cobra.Command{
		Use:   "glimmer",
		Short: "terminal particle animations and generative art",
		RunE:  runAnimation,
	}
	rootCmd.Flags().IntVar(&width, "width", 0, "frame width (0 = terminal width)")
	rootCmd.Flags().IntVar(&height, "height", 0, "frame height (0 = terminal height)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the particle animation",
		Args:  cobra.NoArgs,
		RunE:  runAnimation,
	}
	runCmd.Flags().IntVar(&width, "width", 0, "frame width (0 = terminal width)")
	runCmd.Flags().IntVar(&height, "height", 0, "frame height (0 = terminal height)")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "dashboard view with live particle charts",
		Args:  cobra.NoArgs,
		RunE:  runDashboard,
	}
	tuiCmd.Flags().IntVar(&width, "width", 70, "canvas width")
	tuiCmd.Flags().IntVar(&height, "height", 20, "canvas height")
	tuiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	tuiCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	tuiCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	tuiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	tuiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "menu-driven animation studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	artCmd := &cobra.Command{
		Use:   "art [pattern]",
		Short: "render generative art patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runArt,
	}
	artCmd.Flags().IntVar(&width, "width", 100, "canvas width")
	artCmd.Flags().IntVar(&height, "height", 35, "canvas height")
	artCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	artCmd.Flags().StringVar(&svgPath, "svg", "", "write the pattern as SVG to this file")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "benchmark entropy sources",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&samples, "samples", stats.DefaultSamples, "samples per source")
	statsCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	statsCmd.Flags().StringVar(&csvPath, "csv", "", "export the summary to this CSV file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list animation presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("available presets:")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				size := "terminal size"
				if cfg.Width > 0 {
					size = fmt.Sprintf("%dx%d", cfg.Width, cfg.Height)
				}
				fmt.Printf("  %-10s %s, %d fps, %s theme\n", name, size, cfg.FPS, cfg.Theme)
			}
		},
	}

	rootCmd.AddCommand(runCmd, tuiCmd, interactiveCmd, artCmd, statsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnimation(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}

	fmt.Println("\n*** glimmer ***")
	fmt.Println("press ctrl+c to exit")
	time.Sleep(800 * time.Millisecond)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := sim.New(term.NewRenderer(os.Stdout))
	_, err := runner.Run(ctx, sim.Config{
		Width:  width,
		Height: height,
		FPS:    fps,
		Seed:   seed,
	})
	return err
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if err := resolveConfig(cmd); err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := tea.NewProgram(tui.NewModel(width, height, fps, seed, theme))
	_, err := p.Run()
	return err
}

func runArt(cmd *cobra.Command, args []string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if len(args) == 0 {
		if svgPath != "" {
			return fmt.Errorf("--svg needs a pattern name (available: %s)", strings.Join(art.PatternNames(), ", "))
		}
		art.Gallery(os.Stdout, width, height, seed)
		return nil
	}

	p := art.GetPattern(args[0])
	if p == nil {
		return fmt.Errorf("unknown pattern: %s (available: %s)", args[0], strings.Join(art.PatternNames(), ", "))
	}

	c := art.NewCanvas(width, height)
	p.Draw(c, seed)

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(art.CanvasToSVG(c, p.Title)), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	fmt.Printf("%s - %s\n\n", p.Title, p.Desc)
	fmt.Print(c.String())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	if samples < 100 {
		return fmt.Errorf("need at least 100 samples, got %d", samples)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	records, err := stats.Report(os.Stdout, samples, seed)
	if err != nil {
		return err
	}

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return fmt.Errorf("failed to create csv: %w", err)
		}
		defer f.Close()
		if err := stats.WriteCSV(f, records); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	return nil
}

// resolveConfig layers preset, config file and flags onto the shared
// option variables. Explicit flags always win over the config file;
// presets are an explicit request, so they overwrite the defaults.
func resolveConfig(cmd *cobra.Command) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
		width = cfg.Width
		height = cfg.Height
		fps = cfg.FPS
		if cfg.Theme != "" {
			theme = cfg.Theme
		}
		if cfg.Seed != 0 {
			seed = cfg.Seed
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("width") {
			width = cfg.Width
		}
		if !cmd.Flags().Changed("height") {
			height = cfg.Height
		}
		if !cmd.Flags().Changed("fps") {
			fps = cfg.FPS
		}
		if cfg.Theme != "" && !cmd.Flags().Changed("theme") {
			theme = cfg.Theme
		}
		if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = cfg.Seed
		}
	}

	if width <= 0 || height <= 0 {
		w, h := term.Size()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	return nil
}
