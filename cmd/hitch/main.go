// Command hitch opens a window with the robot truck and its trailer. Fold
// the truck (R, T, Y) and drive the trailer into it with the arrow keys to
// start the coupling sequence.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/hitch"
	"github.com/phanxgames/hitch/config"
	"github.com/phanxgames/hitch/internal/logx"
	"github.com/phanxgames/hitch/view"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; reloaded on change")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	debug := flag.Bool("debug", false, "enable debug checks, per-tick logging and collision boxes")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	scriptPath := flag.String("script", "", "JSON command script to replay")
	exitAfter := flag.Bool("exit", false, "exit when the script finishes")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	shots := flag.String("screenshots", "screenshots", "directory for F12 screenshots")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.Write(*writeConfig, hitch.DefaultConfig()); err != nil {
			log.Fatal(err)
		}
		return
	}

	level := *logLevel
	if *debug {
		level = "debug"
	}
	logger, err := logx.New(level, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := hitch.DefaultConfig()
	var reload <-chan hitch.Config
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
		w, err := config.Watch(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer w.Close()
		reload = w.Configs
		go func() {
			for err := range w.Errors {
				logger.Warn("config reload failed", zap.Error(err))
			}
		}()
	}

	session := hitch.NewSession(cfg)
	session.SetLogger(logger)
	session.SetDebugMode(*debug)

	var runner *hitch.ScriptRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		if runner, err = hitch.LoadScript(data); err != nil {
			log.Fatal(err)
		}
	}

	logger.Info("starting",
		zap.String("config", *configPath),
		zap.String("script", *scriptPath),
		zap.Bool("debug", *debug))

	if err := view.Run(session, view.RunConfig{
		Title:           "hitch",
		Width:           *width,
		Height:          *height,
		ScreenshotDir:   *shots,
		ShowBoxes:       *debug,
		Script:          runner,
		ExitOnScriptEnd: *exitAfter,
		Reload:          reload,
		Logger:          logger,
	}); err != nil {
		log.Fatal(err)
	}
}
