package term

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

const (
	// Pixel size of one terminal cell. Cells are roughly twice as tall as
	// they are wide, so circles stay round.
	DefaultCellW = 5.0
	DefaultCellH = 10.0

	fillRune  = '█'
	emptyRune = ' '
)

// Grid rasterises circles into terminal cells. It implements widget.Canvas.
type Grid struct {
	Cols, Rows   int
	CellW, CellH float64

	cells  []color.NRGBA
	filled []bool
	styles map[color.NRGBA]lipgloss.Style
}

var _ widget.Canvas = (*Grid)(nil)

func NewGrid(cols, rows int, cellW, cellH float64) *Grid {
	g := &Grid{CellW: cellW, CellH: cellH, styles: map[color.NRGBA]lipgloss.Style{}}
	g.Resize(cols, rows)
	return g
}

// Resize changes the grid dimensions and clears it.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.Cols, g.Rows = cols, rows
	g.cells = make([]color.NRGBA, cols*rows)
	g.filled = make([]bool, cols*rows)
}

// Size returns the grid's extent in pixels.
func (g *Grid) Size() (width, height float64) {
	return float64(g.Cols) * g.CellW, float64(g.Rows) * g.CellH
}

func (g *Grid) Clear() {
	for i := range g.filled {
		g.filled[i] = false
	}
}

// FillCircle fills every cell whose centre lies inside the circle.
func (g *Grid) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if r <= 0 {
		return
	}
	c0 := max(0, int((cx-r)/g.CellW))
	c1 := min(g.Cols-1, int((cx+r)/g.CellW))
	r0 := max(0, int((cy-r)/g.CellH))
	r1 := min(g.Rows-1, int((cy+r)/g.CellH))
	for row := r0; row <= r1; row++ {
		y := (float64(row)+0.5)*g.CellH - cy
		for col := c0; col <= c1; col++ {
			x := (float64(col)+0.5)*g.CellW - cx
			if x*x+y*y <= r*r {
				i := row*g.Cols + col
				g.cells[i] = clr
				g.filled[i] = true
			}
		}
	}
}

// At returns the colour of a cell and whether it is filled.
func (g *Grid) At(col, row int) (color.NRGBA, bool) {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return color.NRGBA{}, false
	}
	i := row*g.Cols + col
	return g.cells[i], g.filled[i]
}

// Render returns the grid as rows of styled text.
func (g *Grid) Render() string {
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		col := 0
		for col < g.Cols {
			i := row*g.Cols + col
			if !g.filled[i] {
				sb.WriteRune(emptyRune)
				col++
				continue
			}
			// group runs of one colour into a single styled span
			clr := g.cells[i]
			n := 1
			for col+n < g.Cols && g.filled[i+n] && g.cells[i+n] == clr {
				n++
			}
			sb.WriteString(g.style(clr).Render(strings.Repeat(string(fillRune), n)))
			col += n
		}
	}
	return sb.String()
}

func (g *Grid) style(clr color.NRGBA) lipgloss.Style {
	s, ok := g.styles[clr]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(widget.FormatHex(color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: 0xFF})))
		g.styles[clr] = s
	}
	return s
}
