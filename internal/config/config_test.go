package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waveloader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
	assert.Equal(t, TPS, cfg.Window.TPS)
	assert.Equal(t, 4, cfg.Widget.CircleCount)
	assert.Equal(t, 20.0, cfg.Widget.CircleRadius)
	assert.Equal(t, 20.0, cfg.Widget.CircleMargin)
	assert.Equal(t, 50.0, cfg.Widget.AnimDistance)
	assert.Equal(t, 500, cfg.Widget.AnimDuration)
	assert.Equal(t, 150, cfg.Widget.AnimDelay)
	assert.Equal(t, easing.Accelerate, cfg.Widget.AnimInterpolator)
	assert.Equal(t, []string{"#4285F4", "#DB4437", "#F4B400", "#0F9D58"}, cfg.Widget.Colors)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestWidgetConfig_Resolve(t *testing.T) {
	wc, err := Default().Widget.Resolve()
	require.NoError(t, err)
	assert.Equal(t, widget.DefaultConfig(), wc)

	bad := Default().Widget
	bad.Colors = []string{"#4285F4", "blue"}
	_, err = bad.Resolve()
	require.Error(t, err)

	bad = Default().Widget
	bad.AnimInterpolator = 9
	_, err = bad.Resolve()
	require.Error(t, err)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
widget:
  circleCount: 6
  circleRadius: 12.5
  animDuration: 800
  animInterpolator: overshoot
  colors: ["#FF0000", "#00FF00"]
window:
  width: 640
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Widget.CircleCount)
	assert.Equal(t, 12.5, cfg.Widget.CircleRadius)
	assert.Equal(t, 800, cfg.Widget.AnimDuration)
	assert.Equal(t, easing.Overshoot, cfg.Widget.AnimInterpolator)
	assert.Equal(t, []string{"#FF0000", "#00FF00"}, cfg.Widget.Colors)
	assert.Equal(t, 640, cfg.Window.Width)
	// untouched keys keep their defaults
	assert.Equal(t, 20.0, cfg.Widget.CircleMargin)
	assert.Equal(t, 150, cfg.Widget.AnimDelay)
	assert.Equal(t, WindowHeight, cfg.Window.Height)

	wc, err := cfg.Widget.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 800*time.Millisecond, wc.AnimDuration)
	assert.Len(t, wc.Colors, 2)
}

func TestLoad_NumericInterpolator(t *testing.T) {
	path := writeFile(t, "widget:\n  animInterpolator: 4\n")
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, easing.AnticipateOvershoot, cfg.Widget.AnimInterpolator)
}

func TestLoad_BadInterpolator(t *testing.T) {
	for _, v := range []string{"bounce", "9", "-1", "2.5"} {
		t.Run(v, func(t *testing.T) {
			path := writeFile(t, "widget:\n  animInterpolator: "+v+"\n")
			_, err := Load(path, nil)
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "widget:\n  circleCount: 6\n  animDelay: 90\n")
	t.Setenv("WAVELOADER_WIDGET_CIRCLECOUNT", "9")
	t.Setenv("WAVELOADER_WIDGET_ANIMINTERPOLATOR", "linear")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Widget.CircleCount, "env beats file")
	assert.Equal(t, 90, cfg.Widget.AnimDelay)
	assert.Equal(t, easing.Linear, cfg.Widget.AnimInterpolator)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("circle-count", 4, "")
	flags.Int("delay", 150, "")
	require.NoError(t, flags.Parse([]string{"--circle-count=3"}))

	cfg, err = Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Widget.CircleCount, "changed flag beats env")
	assert.Equal(t, 90, cfg.Widget.AnimDelay, "unchanged flag does not override file")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "waveloader.yaml")
	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
