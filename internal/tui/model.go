package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kaelum/glimmer/internal/particle"
)

const historyCapacity = 600

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the interactive particle view.
type Model struct {
	system       *particle.System
	width        int
	height       int
	fps          int
	seed         int64
	running      bool
	showHelp     bool
	countHistory []float64
}

// NewModel seeds a particle system and UI state for the given canvas size.
func NewModel(width, height, fps int, seed int64, theme string) Model {
	SetTheme(theme)
	return Model{
		system:       particle.NewSystem(width, height, particle.NewSource(seed)),
		width:        width,
		height:       height,
		fps:          fps,
		seed:         seed,
		running:      true,
		countHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.system.Step()
			m.countHistory = append(m.countHistory, float64(m.system.Count()))
			if len(m.countHistory) > historyCapacity {
				m.countHistory = m.countHistory[1:]
			}
		}
		return m, tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// reset restarts the animation from the same seed.
func (m *Model) reset() {
	m.system = particle.NewSystem(m.width, m.height, particle.NewSource(m.seed))
	m.countHistory = m.countHistory[:0]
}

// View renders the TUI interface.
func (m Model) View() string {
	theme := CurrentTheme
	var styles [particle.NumColors]lipgloss.Style
	for i, c := range theme.Palette {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	headerStyle := lipgloss.NewStyle().Foreground(theme.Header).Bold(true).MarginBottom(1)
	graphStyle := lipgloss.NewStyle().Foreground(theme.Graph).Padding(1, 0)

	canvasView := canvasStyle.Render(renderRuns(m.system.Render(), styles))

	var s strings.Builder
	s.WriteString(headerStyle.Render("GLIMMER") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))
	if len(m.countHistory) > 1 {
		chart := asciigraph.Plot(m.countHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Particles"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("Frames") + valueStyle.Render(fmt.Sprintf("%d", m.system.Ticks())) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", m.system.Count())) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.fps)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(theme.Name) + "\n")
	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  R        - Restart with same seed   ║
║  Q        - Quit                     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// renderRuns colors each row in runs so repeated hues share one escape.
func renderRuns(f *particle.Frame, styles [particle.NumColors]lipgloss.Style) string {
	var b strings.Builder

	for y := 0; y < f.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runColor := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor < 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(styles[runColor].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if c.Glyph == particle.GlyphNone {
				run.WriteByte(' ')
				continue
			}
			if int(c.Color) != runColor {
				flush()
				runColor = int(c.Color)
			}
			run.WriteRune(c.Glyph.Rune())
		}
		flush()
	}
	return b.String()
}
