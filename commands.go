package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quibbler01/WaveLoadingCircleView/internal/config"
	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
	"github.com/quibbler01/WaveLoadingCircleView/internal/export"
	"github.com/quibbler01/WaveLoadingCircleView/internal/logger"
	"github.com/quibbler01/WaveLoadingCircleView/internal/report"
	"github.com/quibbler01/WaveLoadingCircleView/internal/term"
)

func newTermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "preview the wave in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWave()
			if err != nil {
				return err
			}
			return term.Run(cmd.Context(), w)
		},
	}
}

func newPlotCmd() *cobra.Command {
	var (
		cycles  int
		samples int
	)
	cmd := &cobra.Command{
		Use:   "plot [curve]",
		Short: "plot one circle's offset over time",
		Long: `plot draws the vertical offset of a single circle over a number of sweeps.
The curve defaults to the configured interpolator; pass a name or number to
override it, or "all" to plot every curve.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := []easing.Kind{cfg.Widget.AnimInterpolator}
			if len(args) == 1 {
				if args[0] == "all" {
					kinds = easing.Kinds()
				} else {
					k, err := easing.Parse(args[0])
					if err != nil {
						return err
					}
					kinds = []easing.Kind{k}
				}
			}
			wc, err := cfg.Widget.Resolve()
			if err != nil {
				return err
			}
			for _, k := range kinds {
				fmt.Fprintln(cmd.OutOrStdout(), report.Plot(wc, k, cycles, samples))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&cycles, "sweeps", 4, "number of sweeps to plot")
	cmd.Flags().IntVar(&samples, "samples", 40, "samples per sweep")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var (
		step  time.Duration
		until time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "print every circle's offset at fixed steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWave()
			if err != nil {
				return err
			}
			return report.WriteSamples(cmd.OutOrStdout(), w, step, until)
		},
	}
	cmd.Flags().DurationVar(&step, "step", 50*time.Millisecond, "time between samples")
	cmd.Flags().DurationVar(&until, "until", time.Second, "last sample time")
	return cmd
}

func newSnapshotCmd() *cobra.Command {
	var (
		at     time.Duration
		output string
		width  float64
		height float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWave()
			if err != nil {
				return err
			}
			w.OnAttached()
			w.Advance(at)
			w.OnDetached()

			if width <= 0 {
				width = w.Width() + 2*cfg.Widget.CircleMargin
			}
			if height <= 0 {
				height = 2*cfg.Widget.CircleRadius + cfg.Widget.AnimDistance + 2*cfg.Widget.CircleMargin
			}
			c := export.Frame(w, width, height)

			if output == "" || output == "-" {
				_, err = c.WriteTo(cmd.OutOrStdout())
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create snapshot: %w", err)
			}
			if _, err := c.WriteTo(f); err != nil {
				_ = f.Close()
				return fmt.Errorf("write snapshot: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			logger.Info(cmd.Context(), "Snapshot written", "path", output, "at", at, "circles", c.Count())
			return nil
		},
	}
	cmd.Flags().DurationVar(&at, "at", 0, "time since attach")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().Float64Var(&width, "frame-width", 0, "frame width, 0 fits the row")
	cmd.Flags().Float64Var(&height, "frame-height", 0, "frame height, 0 fits the travel")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "waveloader.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cfg.Widget
			report.WriteAttributes(cmd.OutOrStdout(), []report.Attribute{
				{Name: "circleCount", Value: w.CircleCount},
				{Name: "circleRadius", Value: w.CircleRadius},
				{Name: "circleMargin", Value: w.CircleMargin},
				{Name: "animDistance", Value: w.AnimDistance},
				{Name: "animDuration", Value: fmt.Sprintf("%dms", w.AnimDuration)},
				{Name: "animDelay", Value: fmt.Sprintf("%dms", w.AnimDelay)},
				{Name: "animInterpolator", Value: fmt.Sprintf("%d (%s)", int(w.AnimInterpolator), w.AnimInterpolator)},
				{Name: "colors", Value: strings.Join(w.Colors, " ")},
				{Name: "clampOvershoot", Value: w.ClampOvershoot},
			})
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
