// Command orbix is a terminal orrery: the sun, eight planets, the moon and an
// asteroid belt animated in a Bubble Tea UI, with headless modes for scripts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/orbix/internal/assets"
	"github.com/litescript/orbix/internal/astro"
	"github.com/litescript/orbix/internal/audio"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/logging"
	"github.com/litescript/orbix/internal/orbit"
	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/prefs"
	"github.com/litescript/orbix/internal/scene"
	"github.com/litescript/orbix/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	asciiMode    bool
	snapshotPath string
	pathBody     string
	segments     int
	atTime       float64
)

func main() {
	// Parse flags
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to this file (the TUI owns the terminal)")
	timeScale := flag.Float64("time-scale", 1, "Initial time scale (0 pauses, otherwise 0.2-10)")
	rotation := flag.String("rotation", "frame", "Self-rotation mode (frame, time)")
	easeName := flag.String("ease", "out-quad", "Camera easing ("+strings.Join(camera.EaseNames(), ", ")+")")
	transition := flag.Duration("transition", 2*time.Second, "Camera transition duration")
	presetPath := flag.String("preset", "", "Load playground values from a YAML preset")
	texturesDir := flag.String("textures", "textures", "Texture directory (empty disables textures)")
	prefsPath := flag.String("prefs", prefs.DefaultPath(), "Preferences file")
	mute := flag.Bool("mute", false, "Start with sound off")
	resetWelcome := flag.Bool("reset-welcome", false, "Show the welcome screen again")
	flag.BoolVar(&summaryMode, "summary", false, "Print a table of body positions instead of the TUI")
	flag.BoolVar(&asciiMode, "ascii", false, "Print one rendered frame instead of the TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.StringVar(&pathBody, "path", "", "Print the orbit polyline of a planet")
	flag.IntVar(&segments, "segments", orbit.DefaultSegments, "Orbit polyline segments")
	flag.Float64Var(&atTime, "at", 0, "Sim time for headless output")
	flag.Parse()

	// Validate transition duration
	*transition = camera.ClampDuration(*transition)

	ease, ok := camera.ParseEase(*easeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown easing %q (want one of %s)\n", *easeName, strings.Join(camera.EaseNames(), ", "))
		os.Exit(1)
	}

	headless := summaryMode || asciiMode || snapshotPath != "" || pathBody != ""

	// Set up logging
	level := logging.ParseLevel(*logLevel)
	logger := logging.Discard()
	if headless {
		logger = logging.New(level)
	}
	if *logFile != "" {
		l, closer, err := logging.OpenFile(*logFile, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger = l
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Initialize components
	store, err := playground.LoadStore(*presetPath, explicitFloat("time-scale", timeScale))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := scene.DefaultConfig()
	cfg.Rotation = orbit.ParseRotationMode(*rotation)
	cfg.Camera.Ease = ease
	cfg.Camera.Duration = *transition
	if headless {
		cfg.StageInterval = 0
	}

	opts := []scene.Option{scene.WithLogger(logger.With("scene"))}
	var loader *assets.Loader
	if *texturesDir != "" {
		loader = assets.NewLoader(*texturesDir, logger.With("assets"))
		opts = append(opts, scene.WithLoader(loader))
	}
	composer := scene.NewComposer(store, cfg, opts...)

	// Headless mode: no TUI
	if headless {
		if err := runHeadless(composer, loader, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	prefStore := prefs.Open(*prefsPath)
	if *resetWelcome {
		if err := prefStore.ResetVisited(); err != nil {
			logger.Warn("reset welcome: %v", err)
		}
	}

	player := audio.NewPlayer(logger.With("audio"), *mute)
	if err := player.Start(); err != nil {
		player = nil
	} else {
		defer player.Close()
	}

	// Create TUI model
	model := ui.New(composer, ui.Options{Player: player, Prefs: prefStore, Logger: logger.With("ui")})

	// Create Bubble Tea program
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// explicitFloat returns v only if the named flag was given on the command line.
func explicitFloat(name string, v *float64) *float64 {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if !set {
		return nil
	}
	return v
}

// runHeadless renders the scene at --at and writes the requested outputs.
func runHeadless(composer *scene.Composer, loader *assets.Loader, out io.Writer) error {
	composer.Seek(atTime)
	f := composer.Step(0)
	if loader != nil {
		// The first step requested every texture; wait so the output reflects them.
		loader.Wait()
		f = composer.Step(0)
	}

	// Export JSON if requested
	if snapshotPath != "" {
		export := scene.ExportSnapshot(f, composer.Store().Snapshot())
		if snapshotPath == "-" {
			if err := export.WriteJSON(out); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			file, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer file.Close()
			if err := export.WriteJSON(file); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	// Print summary table if requested
	if summaryMode {
		scene.WriteSummaryTable(out, f)
	}

	if pathBody != "" {
		points, err := composer.Path(pathBody, segments)
		if err != nil {
			return err
		}
		scene.WritePath(out, points)
	}

	if asciiMode {
		writeASCII(out, f)
	}
	return nil
}

// writeASCII prints one canvas frame, coloured when stdout is a terminal.
func writeASCII(out io.Writer, f scene.Frame) {
	width, height := 100, 36
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if isTTY {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h-1
		}
	}

	c := ui.NewCanvas(ui.CanvasConfig{
		Width:      width,
		Height:     height,
		Projection: ui.ProjectPerspective,
		Map:        astro.DefaultProjectionConfig(),
		Labels:     ui.LabelAll,
		Stars:      true,
	})
	c.Render(f)
	if isTTY {
		fmt.Fprintln(out, c.String())
	} else {
		fmt.Fprintln(out, c.Plain())
	}
}
