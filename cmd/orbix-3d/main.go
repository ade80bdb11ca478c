// Command orbix-3d draws the solar system in a desktop window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/litescript/orbix/internal/assets"
	"github.com/litescript/orbix/internal/camera"
	"github.com/litescript/orbix/internal/logging"
	"github.com/litescript/orbix/internal/orbit"
	"github.com/litescript/orbix/internal/playground"
	"github.com/litescript/orbix/internal/render3d"
	"github.com/litescript/orbix/internal/scene"
)

func init() {
	// raylib needs every call on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	timeScale := flag.Float64("time-scale", 1, "Initial time scale (0 pauses, otherwise 0.2-10)")
	rotation := flag.String("rotation", "frame", "Self-rotation mode (frame, time)")
	easeName := flag.String("ease", "out-quad", "Camera easing ("+strings.Join(camera.EaseNames(), ", ")+")")
	transition := flag.Duration("transition", 2*time.Second, "Camera transition duration")
	presetPath := flag.String("preset", "", "Load playground values from a YAML preset")
	texturesDir := flag.String("textures", "textures", "Texture directory (empty disables textures)")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	fps := flag.Int("fps", 60, "Target frame rate")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	ease, ok := camera.ParseEase(*easeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown easing %q (want one of %s)\n", *easeName, strings.Join(camera.EaseNames(), ", "))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	var scaleOverride *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "time-scale" {
			scaleOverride = timeScale
		}
	})
	store, err := playground.LoadStore(*presetPath, scaleOverride)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *presetPath != "" {
		logger.Info("preset %s loaded", *presetPath)
	}

	cfg := scene.DefaultConfig()
	cfg.Rotation = orbit.ParseRotationMode(*rotation)
	cfg.Camera.Ease = ease
	cfg.Camera.Duration = camera.ClampDuration(*transition)

	opts := []scene.Option{scene.WithLogger(logger.With("scene"))}
	if *texturesDir != "" {
		opts = append(opts, scene.WithLoader(assets.NewLoader(*texturesDir, logger.With("assets"))))
	}
	composer := scene.NewComposer(store, cfg, opts...)

	win := render3d.New(composer, render3d.Config{
		Width:  *width,
		Height: *height,
		Title:  "Orbix",
		FPS:    *fps,
	}, logger.With("render3d"))

	if err := win.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
