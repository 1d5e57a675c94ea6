package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kaelum/glimmer/internal/config"
	"github.com/kaelum/glimmer/internal/particle"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var presetInfo = map[string]string{
	"classic": "steady 80x24 session",
	"wide":    "broad canvas, faster pace",
	"chill":   "terminal-sized, slow drift",
	"frantic": "high frame rate",
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateSim
)

type model struct {
	state    state
	cursor   int
	presets  []string
	selected string

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	running      bool
	paused       bool
	system       *particle.System
	speed        float64
	countHistory []float64
	lastFrame    time.Time
	fps          float64

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state:   stateMenu,
		presets: config.ListPresets(),
		params: map[string]float64{
			"width": 80, "height": 24, "fps": config.DefaultFPS, "seed": 0,
		},
		paramNames:   []string{"width", "height", "fps", "seed"},
		speed:        1.0,
		countHistory: make([]float64, 0, historyCapacity),
		width:        80,
		height:       24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick(fps int) tea.Cmd {
	if fps < 1 {
		fps = 1
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if m.running && !m.paused && m.system != nil {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				dt := now.Sub(m.lastFrame).Seconds()
				if dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		if m.running && m.state == stateSim {
			return m, tick(int(m.params["fps"]))
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.presets[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
		m.loadPreset()
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing = false
			m.editBuf = ""
		case "esc", "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "escape":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.0f", m.params[m.paramNames[m.paramCursor]])
	case "s":
		m.start()
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick(int(m.params["fps"])))
	case "t":
		m.cycleTheme()
	case "left", "h":
		m.params[m.paramNames[m.paramCursor]] -= 1
	case "right", "l":
		m.params[m.paramNames[m.paramCursor]] += 1
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "escape":
		m.running = false
		m.state = stateMenu
		m.reset()
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "c":
		m.running = false
		m.state = stateConfig
		m.reset()
		return m, tea.ClearScreen
	case "t":
		m.cycleTheme()
	case "+", "=":
		if m.speed < 16 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 0.25 {
			m.speed /= 2
		}
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m *model) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			break
		}
	}
}

// loadPreset copies preset values into the editable params. Presets with
// zero size take the current window, less room for the chrome rows.
func (m *model) loadPreset() {
	cfg := config.GetPreset(m.selected)
	if cfg == nil {
		return
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = m.width-8, m.height-12
		if w < 50 {
			w = 50
		}
		if h < 12 {
			h = 12
		}
	}
	m.params["width"] = float64(w)
	m.params["height"] = float64(h)
	m.params["fps"] = float64(cfg.FPS)
	SetTheme(cfg.Theme)
}

func (m *model) start() {
	w, h := int(m.params["width"]), int(m.params["height"])
	if w < 10 {
		w = 10
	}
	if h < 5 {
		h = 5
	}
	fps := int(m.params["fps"])
	if fps < 1 {
		fps = 1
	}
	m.params["width"], m.params["height"], m.params["fps"] = float64(w), float64(h), float64(fps)

	seed := int64(m.params["seed"])
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.system = particle.NewSystem(w, h, particle.NewSource(seed))
	m.countHistory = m.countHistory[:0]
	m.speed = 1.0
	m.lastFrame = time.Time{}
	m.fps = 0
	m.running = true
	m.paused = false
}

func (m *model) reset() {
	m.system = nil
	m.countHistory = m.countHistory[:0]
	m.fps = 0
}

func (m *model) step() {
	m.system.Step()
	m.countHistory = append(m.countHistory, float64(m.system.Count()))
	if len(m.countHistory) > historyCapacity {
		m.countHistory = m.countHistory[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("g l i m m e r") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter configure   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected) + "  " + dim.Render(presetInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.0f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + yellow.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", "theme")) + dim.Render(fmt.Sprintf("%8s", CurrentTheme.Name)) + "\n")

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  t theme  s start  esc back") + "\n")

	return b.String()
}

func (m model) viewSim() string {
	if m.system == nil {
		return ""
	}

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.selected), statusText))
	b.WriteString(fmt.Sprintf("   %s  %s  %s\n\n",
		dim.Render(fmt.Sprintf("frame %d", m.system.Ticks())),
		dim.Render(fmt.Sprintf("%d particles", m.system.Count())),
		dim.Render(fmt.Sprintf("%.0ffps ×%.2g", m.fps, m.speed))))

	theme := CurrentTheme
	var styles [particle.NumColors]lipgloss.Style
	for i, c := range theme.Palette {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	for _, row := range strings.Split(renderRuns(m.system.Render(), styles), "\n") {
		b.WriteString("   " + row + "\n")
	}

	ps := m.system.Particles()
	fresh := 0
	for i := range ps {
		if ps[i].LifeRatio() >= 0.5 {
			fresh++
		}
	}
	if total := len(ps); total > 0 {
		barWidth := 20
		fbar := fresh * barWidth / total
		b.WriteString(fmt.Sprintf("\n   life   %s%s  %s %d  %s %d\n",
			green.Render(strings.Repeat("█", fbar)),
			yellow.Render(strings.Repeat("█", barWidth-fbar)),
			green.Render("fresh"), fresh,
			yellow.Render("fading"), total-fresh))
	}

	if len(m.countHistory) > 1 {
		spark := m.sparkline(m.countHistory, 24)
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("count"), cyan.Render(spark)))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r restart  t theme  c config  q quit") + "\n")

	return b.String()
}

func (m model) sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
