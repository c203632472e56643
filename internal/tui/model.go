// Package tui is a gate-by-gate stepper: it shows the circuit with a cursor on
// the next gate and the probability histogram after the gates applied so far.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qlct/internal/quantum"
	"qlct/internal/render"
)

// gateWindow is the default number of gate rows in the circuit panel.
const gateWindow = 16

// Model represents the stepper state.
type Model struct {
	sim       *quantum.Simulator
	gates     []quantum.Gate
	target    int
	probs     []float64
	width     int
	height    int
	help      help.Model
	statusMsg string
}

// New returns a stepper over circuit c, highlighting target in the histogram.
func New(c *quantum.Circuit, target int) (Model, error) {
	sim, err := quantum.NewSimulator(c)
	if err != nil {
		return Model{}, err
	}
	return Model{
		sim:    sim,
		gates:  c.Gates(),
		target: target,
		probs:  sim.Probabilities(),
		help:   help.New(),
	}, nil
}

// Run starts the stepper on the alternate screen and blocks until it exits.
func Run(c *quantum.Circuit, target int) error {
	m, err := New(c, target)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.statusMsg = ""
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			if !m.sim.Step() {
				m.statusMsg = "Circuit complete"
			}
		case key.Matches(msg, keys.Prev):
			m.stepBack()
		case key.Matches(msg, keys.Run):
			m.sim.Run()
		case key.Matches(msg, keys.Reset):
			m.sim.Reset()
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.probs = m.sim.Probabilities()
	}
	return m, nil
}

// stepBack replays the circuit up to one gate before the current position.
// Gates are not inverted in place so the vector only ever moves forward.
func (m *Model) stepBack() {
	applied := m.sim.Applied()
	if applied == 0 {
		m.statusMsg = "At initial state"
		return
	}
	m.sim.Reset()
	for range applied - 1 {
		m.sim.Step()
	}
}

func (m Model) View() string {
	header := render.Title(fmt.Sprintf("Grover stepper · %d qubits · target |%s⟩ · gate %d/%d",
		m.sim.NumQubits(), render.Bits(m.target, m.sim.NumQubits()), m.sim.Applied(), m.sim.Len()))

	gatePanel := render.Panel(render.GateList(m.gates, m.sim.Applied(), m.gateRows()))
	histPanel := render.Panel(render.Histogram(m.probs, m.target, m.barWidth()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, gatePanel, histPanel)

	footer := m.help.View(keys)
	if m.statusMsg != "" {
		footer = render.Dim(m.statusMsg) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// gateRows fits the gate list to the terminal height, gateWindow before the first resize.
func (m Model) gateRows() int {
	if m.height == 0 {
		return gateWindow
	}
	return max(4, m.height-10)
}

// barWidth fits the histogram next to the gate panel, 0 before the first resize.
func (m Model) barWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(10, min(40, m.width-60))
}
