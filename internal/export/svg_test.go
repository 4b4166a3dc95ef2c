package export

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

func TestFrame_DefaultWave(t *testing.T) {
	w := widget.New(widget.DefaultConfig())
	c := Frame(w, 400, 200)

	assert.Equal(t, 4, c.Count())
	doc := c.String()
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0"`))
	assert.Contains(t, doc, `width="400" height="200"`)
	assert.Equal(t, 4, strings.Count(doc, "<circle "))
	assert.Contains(t, doc, `<circle cx="110.00" cy="100.00" r="20.00" fill="#4285F4"/>`)
	assert.Contains(t, doc, `<circle cx="170.00" cy="100.00" r="20.00" fill="#DB4437"/>`)
	assert.Contains(t, doc, `<circle cx="230.00" cy="100.00" r="20.00" fill="#F4B400"/>`)
	assert.Contains(t, doc, `<circle cx="290.00" cy="100.00" r="20.00" fill="#0F9D58"/>`)
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
}

func TestFrame_AfterAdvance(t *testing.T) {
	w := widget.New(widget.DefaultConfig())
	w.OnAttached()
	w.Advance(150 * time.Millisecond)
	doc := Frame(w, 400, 200).String()

	// circle 1 has just started at the top of its travel
	assert.Contains(t, doc, `<circle cx="170.00" cy="75.00" r="20.00" fill="#DB4437"/>`)
}

func TestSVGCanvas_SkipsDegenerate(t *testing.T) {
	c := NewSVGCanvas(10, 10)
	c.FillCircle(5, 5, 0, widget.ColorRed)
	c.FillCircle(5, 5, -2, widget.ColorRed)
	c.FillCircle(5, 5, 2, color.NRGBA{})
	assert.Zero(t, c.Count())
}

func TestSVGCanvas_Translucent(t *testing.T) {
	c := NewSVGCanvas(10, 10)
	c.FillCircle(5, 5, 2, widget.Fade(color.NRGBA{R: 200, G: 100, B: 50, A: 255}, 0.5))
	assert.Contains(t, c.String(), `fill="#C86432" fill-opacity="0.498"`)
}

func TestFrame_TranslucentPaletteEntry(t *testing.T) {
	green, err := widget.ParseHex("#800F9D58")
	require.NoError(t, err)

	cfg := widget.DefaultConfig()
	cfg.CircleCount = 1
	cfg.Colors = []color.NRGBA{green}
	doc := Frame(widget.New(cfg), 100, 100).String()

	assert.Contains(t, doc, `<circle cx="50.00" cy="50.00" r="20.00" fill="#0F9D58" fill-opacity="0.502"/>`)
}

func TestSVGCanvas_WriteTo(t *testing.T) {
	c := NewSVGCanvas(10, 10)
	c.Background = ""
	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.NotContains(t, buf.String(), "<rect")
}
