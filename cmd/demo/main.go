// Package main is the entry point for the sunlit lighting demo.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/assets"
	"github.com/Faultbox/sunlit/internal/config"
	"github.com/Faultbox/sunlit/internal/engine/camera"
	"github.com/Faultbox/sunlit/internal/engine/input/sdlinput"
	"github.com/Faultbox/sunlit/internal/engine/renderer"
	"github.com/Faultbox/sunlit/internal/engine/screenshot"
	"github.com/Faultbox/sunlit/internal/engine/window"
	"github.com/Faultbox/sunlit/internal/game"
	"github.com/Faultbox/sunlit/internal/game/demo"
	"github.com/Faultbox/sunlit/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Sunlit ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	gfx := cfg.Graphics

	win, err := window.New(window.Config{
		Title:      gfx.Title,
		Width:      gfx.Width,
		Height:     gfx.Height,
		Fullscreen: gfx.Fullscreen,
		VSync:      gfx.VSync,
		Samples:    gfx.MSAA,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	mgr := assets.NewManager()
	defer mgr.Close()
	for _, dir := range cfg.Data.AssetPaths {
		if err := mgr.AddDir(dir); err != nil {
			logger.Warn("skipping asset root", zap.String("path", dir), zap.Error(err))
		}
	}

	r := renderer.New(renderer.Config{
		Projection:    camera.Projection{FOV: gfx.FOV, Near: gfx.Near, Far: gfx.Far},
		Ambient:       gfx.Ambient,
		SpecularPower: gfx.SpecularPower,
	})

	scene := demo.NewScene(demo.SettingsFromConfig(cfg.Scene), mgr, r)
	shots := screenshot.New(gfx.ScreenshotDir, "sunlit")
	engine := game.New(game.Config{
		FPSLimit: gfx.FPSLimit,
		Screenshot: func() (string, error) {
			return shots.SavePixels(r.ReadPixels())
		},
	}, win, sdlinput.New(), scene)

	// Ctrl+C in the terminal leaves through the normal cleanup path.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		if sig, ok := <-sigs; ok {
			logger.Info("signal received, stopping", zap.String("signal", sig.String()))
			engine.Stop()
		}
	}()

	return engine.Run()
}
