package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Wave Loading - Space: attach/detach, O: open config, T: trail, Esc/Q: quit"
	TPS          = 60

	// Number of past frames drawn as a trail behind each circle.
	TrailFrames = 12

	EnvPrefix = "WAVELOADER"
)

type Config struct {
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	Widget WidgetConfig `mapstructure:"widget" yaml:"widget"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Title  string `mapstructure:"title" yaml:"title"`
	TPS    int    `mapstructure:"tps" yaml:"tps"`
	Trail  int    `mapstructure:"trail" yaml:"trail"`
}

// WidgetConfig mirrors the widget's declarative attributes. Durations are in
// milliseconds and colours are hex strings.
type WidgetConfig struct {
	CircleCount      int         `mapstructure:"circleCount" yaml:"circleCount"`
	CircleRadius     float64     `mapstructure:"circleRadius" yaml:"circleRadius"`
	CircleMargin     float64     `mapstructure:"circleMargin" yaml:"circleMargin"`
	AnimDistance     float64     `mapstructure:"animDistance" yaml:"animDistance"`
	AnimDuration     int         `mapstructure:"animDuration" yaml:"animDuration"`
	AnimDelay        int         `mapstructure:"animDelay" yaml:"animDelay"`
	AnimInterpolator easing.Kind `mapstructure:"animInterpolator" yaml:"animInterpolator"`
	Colors           []string    `mapstructure:"colors" yaml:"colors"`
	ClampOvershoot   bool        `mapstructure:"clampOvershoot" yaml:"clampOvershoot"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	wc := widget.DefaultConfig()
	colors := make([]string, len(wc.Colors))
	for i, c := range wc.Colors {
		colors[i] = widget.FormatHex(c)
	}
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
			TPS:    TPS,
			Trail:  TrailFrames,
		},
		Widget: WidgetConfig{
			CircleCount:      wc.CircleCount,
			CircleRadius:     wc.CircleRadius,
			CircleMargin:     wc.CircleMargin,
			AnimDistance:     wc.AnimDistance,
			AnimDuration:     int(wc.AnimDuration / time.Millisecond),
			AnimDelay:        int(wc.AnimDelay / time.Millisecond),
			AnimInterpolator: wc.Interpolator,
			Colors:           colors,
			ClampOvershoot:   wc.ClampOvershoot,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Resolve converts the attribute form into a widget configuration.
func (c WidgetConfig) Resolve() (widget.Config, error) {
	if !c.AnimInterpolator.Valid() {
		return widget.Config{}, fmt.Errorf("animInterpolator %d out of range 0..%d", int(c.AnimInterpolator), len(easing.Kinds())-1)
	}
	colors, err := widget.ParsePalette(c.Colors)
	if err != nil {
		return widget.Config{}, err
	}
	return widget.Config{
		CircleCount:    c.CircleCount,
		CircleRadius:   c.CircleRadius,
		CircleMargin:   c.CircleMargin,
		AnimDistance:   c.AnimDistance,
		AnimDuration:   time.Duration(c.AnimDuration) * time.Millisecond,
		AnimDelay:      time.Duration(c.AnimDelay) * time.Millisecond,
		Interpolator:   c.AnimInterpolator,
		Colors:         colors,
		ClampOvershoot: c.ClampOvershoot,
	}, nil
}

// FlagKeys maps CLI flag names to config keys. Load binds every flag in the
// set whose name appears here.
var FlagKeys = map[string]string{
	"circle-count":    "widget.circleCount",
	"circle-radius":   "widget.circleRadius",
	"circle-margin":   "widget.circleMargin",
	"distance":        "widget.animDistance",
	"duration":        "widget.animDuration",
	"delay":           "widget.animDelay",
	"interpolator":    "widget.animInterpolator",
	"colors":          "widget.colors",
	"clamp-overshoot": "widget.clampOvershoot",
	"width":           "window.width",
	"height":          "window.height",
	"tps":             "window.tps",
	"log-level":       "log.level",
	"log-format":      "log.format",
	"log-file":        "log.file",
}

// Load resolves the configuration from, lowest precedence first: built-in
// defaults, the YAML file at path (if path is not empty), WAVELOADER_*
// environment variables and changed flags.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		easingKindHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("window.tps", cfg.Window.TPS)
	v.SetDefault("window.trail", cfg.Window.Trail)

	v.SetDefault("widget.circleCount", cfg.Widget.CircleCount)
	v.SetDefault("widget.circleRadius", cfg.Widget.CircleRadius)
	v.SetDefault("widget.circleMargin", cfg.Widget.CircleMargin)
	v.SetDefault("widget.animDistance", cfg.Widget.AnimDistance)
	v.SetDefault("widget.animDuration", cfg.Widget.AnimDuration)
	v.SetDefault("widget.animDelay", cfg.Widget.AnimDelay)
	v.SetDefault("widget.animInterpolator", int(cfg.Widget.AnimInterpolator))
	v.SetDefault("widget.colors", cfg.Widget.Colors)
	v.SetDefault("widget.clampOvershoot", cfg.Widget.ClampOvershoot)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
}

// easingKindHook lets animInterpolator be written as a name ("overshoot") as
// well as a number. Numbers outside 0..6 are rejected, from YAML the same as
// from a flag or the environment.
func easingKindHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(easing.Kind(0)) {
		return data, nil
	}
	switch from.Kind() {
	case reflect.String:
		return easing.Parse(data.(string))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return easing.Parse(fmt.Sprint(data))
	}
	return data, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
