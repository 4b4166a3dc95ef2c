// Package report renders wave motion as text: sampled position tables and
// terminal plots.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/quibbler01/WaveLoadingCircleView/internal/anim"
	"github.com/quibbler01/WaveLoadingCircleView/internal/easing"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

// CurveData samples the first circle's driver, built from wc with the curve
// replaced by kind, over the given number of sweeps. Values are negated so
// that upward motion on screen plots upward.
func CurveData(wc widget.Config, kind easing.Kind, sweeps, perSweep int) []float64 {
	if sweeps < 1 {
		sweeps = 1
	}
	if perSweep < 2 {
		perSweep = 2
	}
	d := anim.NewDriver(anim.DriverConfig{
		From:     -wc.AnimDistance / 2,
		To:       wc.AnimDistance / 2,
		Duration: wc.AnimDuration,
		Curve:    kind.Curve(),
		Clamp:    wc.ClampOvershoot,
	})
	n := sweeps * perSweep
	data := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		e := wc.AnimDuration * time.Duration(i) / time.Duration(perSweep)
		v, _ := d.ValueAt(e)
		data = append(data, -v)
	}
	return data
}

// Plot draws CurveData for kind as an ascii graph.
func Plot(wc widget.Config, kind easing.Kind, sweeps, perSweep int) string {
	data := CurveData(wc, kind, sweeps, perSweep)
	caption := fmt.Sprintf("%s, %s per sweep, travel %.0f", kind, wc.AnimDuration, wc.AnimDistance)
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// WriteSamples attaches w, advances it from zero to until in fixed steps and
// writes a table with one row per step and one column per circle. The widget
// is detached on return.
func WriteSamples(out io.Writer, w *widget.Wave, step, until time.Duration) error {
	if step <= 0 {
		return fmt.Errorf("sample step must be positive, got %s", step)
	}
	n := len(w.Positions())
	header := table.Row{"t"}
	for i := 0; i < n; i++ {
		header = append(header, "#"+strconv.Itoa(i))
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)

	w.OnAttached()
	defer w.OnDetached()
	w.Advance(0)
	for {
		row := table.Row{w.Elapsed().String()}
		for _, p := range w.Positions() {
			row = append(row, fmt.Sprintf("%+.2f", p))
		}
		t.AppendRow(row)
		if w.Elapsed()+step > until {
			break
		}
		w.Advance(step)
	}
	t.Render()
	return nil
}

// Attribute is one row of a config listing.
type Attribute struct {
	Name  string
	Value any
}

// WriteAttributes writes a two-column attribute table.
func WriteAttributes(out io.Writer, attrs []Attribute) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"attribute", "value"})
	for _, a := range attrs {
		t.AppendRow(table.Row{a.Name, a.Value})
	}
	t.Render()
}
