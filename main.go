package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quibbler01/WaveLoadingCircleView/internal/config"
	"github.com/quibbler01/WaveLoadingCircleView/internal/game"
	"github.com/quibbler01/WaveLoadingCircleView/internal/logger"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

var (
	configFile string
	cfg        *config.Config
	logFile    io.Closer
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "waveloader",
		Short: "wave loading indicator: staggered bouncing circles",
		Long: `waveloader shows a row of circles bouncing up and down in a staggered wave.

With no subcommand it opens a window. Settings come from, lowest precedence
first: built-in defaults, the --config YAML file, WAVELOADER_* environment
variables (e.g. WAVELOADER_WIDGET_CIRCLECOUNT) and flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return game.Run(cmd.Context(), cfg)
		},
	}

	defaults := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int("circle-count", defaults.Widget.CircleCount, "number of circles")
	pf.Float64("circle-radius", defaults.Widget.CircleRadius, "circle radius in pixels")
	pf.Float64("circle-margin", defaults.Widget.CircleMargin, "space between circles in pixels")
	pf.Float64("distance", defaults.Widget.AnimDistance, "vertical travel in pixels")
	pf.Int("duration", defaults.Widget.AnimDuration, "duration of one sweep in ms")
	pf.Int("delay", defaults.Widget.AnimDelay, "start delay between neighbouring circles in ms")
	pf.String("interpolator", defaults.Widget.AnimInterpolator.String(), "easing curve, by name or number 0-6")
	pf.StringSlice("colors", defaults.Widget.Colors, "circle colours as #RRGGBB, cycled")
	pf.Bool("clamp-overshoot", defaults.Widget.ClampOvershoot, "keep overshooting curves inside the travel range")
	pf.Int("width", defaults.Window.Width, "window width")
	pf.Int("height", defaults.Window.Height, "window height")
	pf.Int("tps", defaults.Window.TPS, "window ticks per second")
	pf.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	pf.String("log-format", defaults.Log.Format, "log format (text, json)")
	pf.String("log-file", "", "also write logs to this file")

	rootCmd.AddCommand(
		newTermCmd(),
		newPlotCmd(),
		newSampleCmd(),
		newSnapshotCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// setup resolves the configuration and puts a logger on the command context.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	opts := []logger.Option{logger.WithLevel(level), logger.WithFormat(cfg.Log.Format)}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		opts = append(opts, logger.WithWriter(f))
	}
	l := logger.New(opts...)
	cmd.SetContext(logger.WithLogger(cmd.Context(), l))
	logger.Debug(cmd.Context(), "Config resolved", "file", configFile, "circles", cfg.Widget.CircleCount)
	return nil
}

// newWave builds a widget from the resolved configuration.
func newWave() (*widget.Wave, error) {
	wc, err := cfg.Widget.Resolve()
	if err != nil {
		return nil, fmt.Errorf("widget config: %w", err)
	}
	return widget.New(wc), nil
}
