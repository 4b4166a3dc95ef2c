// Package game is the window host: an ebiten game that lays out the wave
// widget in the middle of the window and drives it on ebiten's tick clock.
package game

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/quibbler01/WaveLoadingCircleView/internal/config"
	"github.com/quibbler01/WaveLoadingCircleView/internal/logger"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

var backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}

type Game struct {
	ctx   context.Context
	cfg   *config.Config
	wave  *widget.Wave
	trace *widget.Trace

	// input edge detection
	prevKey map[ebiten.Key]bool

	showTrail bool
	lastErr   error
}

// New builds the host and the widget it displays. The widget is not attached
// until Run starts the game loop.
func New(ctx context.Context, cfg *config.Config) (*Game, error) {
	wc, err := cfg.Widget.Resolve()
	if err != nil {
		return nil, fmt.Errorf("widget config: %w", err)
	}
	return &Game{
		ctx:     ctx,
		cfg:     cfg,
		wave:    widget.New(wc),
		trace:   widget.NewTrace(cfg.Window.Trail + 1),
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

// Wave returns the displayed widget.
func (g *Game) Wave() *widget.Wave { return g.wave }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.toggleAttached()
	}
	if justPressed(ebiten.KeyT) {
		g.showTrail = !g.showTrail
		g.trace.Reset()
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openConfigDialog(); err != nil {
			g.lastErr = err
			logger.Warn(g.ctx, "Config not loaded, keeping current widget", "err", err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = config.TPS
	}
	g.wave.Advance(time.Second / time.Duration(tps))
	if g.showTrail && g.wave.Attached() {
		g.trace.Record(g.wave.Positions())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
	if g.showTrail {
		g.drawTrail(screen, w, h)
	}
	g.wave.Draw(canvas{dst: screen}, w, h)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

// drawTrail paints past frames, oldest faintest, skipping the live frame.
func (g *Game) drawTrail(screen *ebiten.Image, w, h float64) {
	frames := g.trace.Snapshot(g.trace.Len())
	if len(frames) < 2 {
		return
	}
	frames = frames[:len(frames)-1]
	for i, f := range frames {
		alpha := 0.35 * float64(i+1) / float64(len(frames)+1)
		g.wave.DrawAt(fadeCanvas{canvas: canvas{dst: screen}, alpha: alpha}, w, h, f)
	}
}

func (g *Game) status() string {
	state := "detached"
	if g.wave.Attached() {
		state = "attached"
	}
	wc := g.wave.Config()
	trail := "off"
	if g.showTrail {
		trail = "on"
	}
	status := fmt.Sprintf("%s %s | circles %d | %s | trail %s",
		state, formatDuration(g.wave.Elapsed()), wc.CircleCount, wc.Interpolator, trail)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) toggleAttached() {
	if g.wave.Attached() {
		g.wave.OnDetached()
		logger.Info(g.ctx, "Widget detached", "elapsed", g.wave.Elapsed())
		return
	}
	g.wave.OnAttached()
	g.trace.Reset()
	logger.Info(g.ctx, "Widget attached")
}

func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Wave Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.reload(filename)
}

// reload swaps in a widget built from the config file at path. The window
// size stays as it is.
func (g *Game) reload(path string) error {
	cfg, err := config.Load(path, nil)
	if err != nil {
		return err
	}
	wc, err := cfg.Widget.Resolve()
	if err != nil {
		return fmt.Errorf("widget config: %w", err)
	}

	wasAttached := g.wave.Attached()
	g.wave.OnDetached()
	g.wave = widget.New(wc)
	g.cfg.Widget = cfg.Widget
	g.trace.Reset()
	g.lastErr = nil
	if wasAttached {
		g.wave.OnAttached()
	}
	logger.Info(g.ctx, "Config loaded", "path", path, "circles", wc.CircleCount, "interpolator", wc.Interpolator)
	return nil
}

// Run opens the window, attaches the widget and blocks until the window is
// closed or the user quits.
func Run(ctx context.Context, cfg *config.Config) error {
	g, err := New(ctx, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.TPS > 0 {
		ebiten.SetTPS(cfg.Window.TPS)
	}

	g.wave.OnAttached()
	defer g.wave.OnDetached()
	logger.Info(ctx, "Window opened", "width", cfg.Window.Width, "height", cfg.Window.Height)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
