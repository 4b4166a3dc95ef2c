package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

// canvas draws onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

// fadeCanvas scales the alpha of everything drawn through it.
type fadeCanvas struct {
	canvas widget.Canvas
	alpha  float64
}

func (c fadeCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	c.canvas.FillCircle(cx, cy, r, widget.Fade(clr, c.alpha))
}
