package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

// SVGCanvas collects filled circles and renders them as an SVG document.
// It implements widget.Canvas.
type SVGCanvas struct {
	Width      float64
	Height     float64
	Background string // empty for transparent
	sb         strings.Builder
	count      int
}

var _ widget.Canvas = (*SVGCanvas)(nil)

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{Width: width, Height: height, Background: "#FFFFFF"}
}

// FillCircle implements widget.Canvas.
func (c *SVGCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 || clr.A == 0 {
		return
	}
	opacity := ""
	if clr.A != 0xFF {
		opacity = fmt.Sprintf(` fill-opacity="%.3f"`, float64(clr.A)/255)
		clr.A = 0xFF
	}
	c.sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>
`, cx, cy, r, widget.FormatHex(clr), opacity))
	c.count++
}

// Count returns the number of circles drawn so far.
func (c *SVGCanvas) Count() int { return c.count }

// String renders the whole document.
func (c *SVGCanvas) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, c.Width, c.Height, c.Width, c.Height))
	if c.Background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, c.Background))
	}
	sb.WriteString(c.sb.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteTo writes the document to w.
func (c *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}

// Frame draws w's current frame into a new canvas of the given size.
func Frame(w *widget.Wave, width, height float64) *SVGCanvas {
	c := NewSVGCanvas(width, height)
	w.Draw(c, width, height)
	return c
}
