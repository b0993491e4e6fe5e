// Package tui renders a diffusion march live in the terminal.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffuse"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var heatRamp = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type model struct {
	cfg     *config.Config
	grid    diffuse.Grid
	initial diffuse.Profile

	profile diffuse.Profile
	step    int
	simTime float64

	running bool
	paused  bool
	failed  error
	speed   int

	width  int
	height int
}

// NewLive prepares a live view of the march of u0 under cfg.
func NewLive(cfg *config.Config, u0 diffuse.Profile) *model {
	return &model{
		cfg:     cfg,
		grid:    cfg.Grid(),
		initial: u0,
		profile: u0.Clone(),
		running: true,
		speed:   1,
		width:   80,
		height:  24,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.running && !m.paused && m.failed == nil {
			for i := 0; i < m.speed && m.step < m.grid.Nt-1; i++ {
				m.advance()
			}
		}
		if m.running {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m *model) advance() {
	next, err := diffuse.Step(m.profile, m.grid.Dx(), m.grid.Dt(), m.grid.Alpha)
	if err != nil {
		m.failed = err
		return
	}
	m.profile = next
	m.step++
	m.simTime += m.grid.Dt()
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.running = false
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.profile = m.initial.Clone()
		m.step = 0
		m.simTime = 0
		m.failed = nil
		m.paused = false
	case "+", "=":
		if m.speed < 64 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 1 {
			m.speed /= 2
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	switch {
	case m.failed != nil:
		statusIcon = red.Render("✗")
		statusText = red.Render(m.failed.Error())
	case m.step >= m.grid.Nt-1:
		statusIcon = cyan.Render("●")
		statusText = cyan.Render("done")
	case m.paused:
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render(m.cfg.Profile), statusText))

	progress := 0.0
	if m.grid.Nt > 1 {
		progress = float64(m.step) / float64(m.grid.Nt-1)
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	timeStr := fmt.Sprintf("t=%.3fs/%.2fs", m.simTime, m.grid.Tmax)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(timeStr), dim.Render(fmt.Sprintf("%dx speed", m.speed))))

	b.WriteString(m.renderField())

	lo, hi := m.profile.MinMax()
	b.WriteString(fmt.Sprintf("\n   %s%s  %s%s  %s%s\n",
		dim.Render("min="), white.Render(fmt.Sprintf("%.3f", lo)),
		dim.Render("max="), white.Render(fmt.Sprintf("%.3f", hi)),
		dim.Render("r="), magenta.Render(fmt.Sprintf("%.3f", m.grid.Ratio()))))

	b.WriteString("\n" + dim.Render("   space pause  ± speed  r reset  q quit") + "\n")

	return b.String()
}

// renderField draws the profile as one bar column per node, resampled
// to the terminal width.
func (m *model) renderField() string {
	cols := m.width - 8
	if cols < 20 {
		cols = 20
	}
	if cols > m.grid.Nx {
		cols = m.grid.Nx
	}

	lo, hi := m.initial.MinMax()
	plo, phi := m.profile.MinMax()
	if plo < lo {
		lo = plo
	}
	if phi > hi {
		hi = phi
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	rows := 8
	field := make([][]rune, rows)
	for r := range field {
		field[r] = make([]rune, cols)
		for c := range field[r] {
			field[r][c] = ' '
		}
	}

	for c := 0; c < cols; c++ {
		idx := c * (m.grid.Nx - 1) / (cols - 1)
		level := (m.profile[idx] - lo) / span * float64(rows*8)
		for r := 0; r < rows; r++ {
			cell := level - float64(r*8)
			if cell >= 8 {
				field[rows-1-r][c] = '█'
			} else if cell > 0 {
				field[rows-1-r][c] = heatRamp[int(cell)]
			}
		}
	}

	var b strings.Builder
	for _, row := range field {
		b.WriteString("   " + cyan.Render(string(row)) + "\n")
	}
	b.WriteString("   " + dimmer.Render(strings.Repeat("─", cols)) + "\n")
	b.WriteString("   " + dim.Render(fmt.Sprintf("x=0%sx=%.1f", strings.Repeat(" ", max(cols-10, 1)), m.grid.Length)) + "\n")
	return b.String()
}

// RunLive blocks until the user quits the live view.
func RunLive(cfg *config.Config, u0 diffuse.Profile) error {
	p := tea.NewProgram(NewLive(cfg, u0), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
