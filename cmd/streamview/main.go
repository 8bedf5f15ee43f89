// StreamView - full-screen dual-panel camera viewer.
//
// Shows the raw camera stream beside a single-channel filtered stream,
// with clickable RGB filter buttons in the header.
package main

import (
	"flag"
	"os"

	"github.com/percept3d/streamview/internal/config"
	"github.com/percept3d/streamview/internal/log"
	"github.com/percept3d/streamview/pkg/capture"
	"github.com/percept3d/streamview/pkg/display"
	"github.com/percept3d/streamview/pkg/session"
	"github.com/percept3d/streamview/pkg/ui"
)

func main() {
	var (
		cameraIndex = flag.Int("camera", -1, "camera index (overrides config)")
		configPath  = flag.String("config", "", "path to YAML config file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *cameraIndex >= 0 {
		cfg.Capture.Index = *cameraIndex
	}

	log.Init(cfg.Log.Level, log.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	var open capture.Opener
	switch cfg.Capture.Backend {
	case "v4l2":
		open = capture.ByDevice(cfg.Capture.Device, cfg.Capture.Width, cfg.Capture.Height)
	default:
		open = capture.ByIndex(cfg.Capture.Index)
	}

	surface := display.NewWindow(cfg.Window.Name, cfg.Window.Width, cfg.Window.Height)

	theme, err := cfg.ApplyTheme(ui.DefaultTheme())
	if err != nil {
		log.Error("invalid theme", "error", err)
		os.Exit(1)
	}
	theme.Label = cfg.Window.Name

	opts := session.DefaultOptions()
	opts.Theme = theme
	opts.Ratio = cfg.Render.Ratio
	opts.Fullscreen = !cfg.Window.Windowed
	opts.Initial = cfg.StartupFilter()

	log.Info("starting", "backend", cfg.Capture.Backend, "camera", cfg.Capture.Index)
	if err := session.New(open, surface, opts).Run(); err != nil {
		log.Error("session ended with error", "error", err)
		os.Exit(1)
	}
	log.Info("session ended")
}
