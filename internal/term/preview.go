// Package term previews the wave in a terminal.
package term

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quibbler01/WaveLoadingCircleView/internal/logger"
	"github.com/quibbler01/WaveLoadingCircleView/internal/widget"
)

const (
	FPS = 60

	defaultCols = 60
	defaultRows = 12
)

var (
	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	subtle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

type tickMsg time.Time

// frame is the last rendered grid. It is redrawn only when the widget asks
// for a redraw or the grid changes size.
type frame struct {
	text  string
	valid bool
}

// Model is the bubbletea model of the preview.
type Model struct {
	wave  *widget.Wave
	grid  *Grid
	frame *frame
	last  time.Time
}

func NewModel(w *widget.Wave) Model {
	return Model{
		wave:  w,
		grid:  NewGrid(defaultCols, defaultRows, DefaultCellW, DefaultCellH),
		frame: &frame{},
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := time.Second / FPS
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.wave.Advance(dt)
		return m, tick()

	case tea.WindowSizeMsg:
		// keep one line for the status bar
		m.grid.Resize(msg.Width, msg.Height-1)
		m.frame.valid = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.wave.OnDetached()
			return m, tea.Quit
		case " ":
			if m.wave.Attached() {
				m.wave.OnDetached()
			} else {
				m.wave.OnAttached()
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.wave.Dirty() || !m.frame.valid {
		m.grid.Clear()
		w, h := m.grid.Size()
		m.wave.Draw(m.grid, w, h)
		m.wave.ClearDirty()
		m.frame.text = m.grid.Render()
		m.frame.valid = true
	}

	state := statusRunning.Render("running")
	if !m.wave.Attached() {
		state = statusPaused.Render("detached")
	}
	status := fmt.Sprintf("%s %s", state,
		subtle.Render(fmt.Sprintf("%s  space: attach/detach  q: quit", m.wave.Elapsed().Truncate(time.Millisecond))))
	return m.frame.text + "\n" + status
}

// Run attaches w and shows it until the user quits.
func Run(ctx context.Context, w *widget.Wave, opts ...tea.ProgramOption) error {
	w.OnAttached()
	defer w.OnDetached()

	logger.Info(ctx, "Terminal preview started", "circles", len(w.Positions()))
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(w), opts...).Run(); err != nil {
		return fmt.Errorf("terminal preview: %w", err)
	}
	logger.Info(ctx, "Terminal preview stopped", "elapsed", w.Elapsed())
	return nil
}
