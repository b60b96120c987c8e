package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/attractor/internal/ode"
	"github.com/san-kum/attractor/internal/sim"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	trailLength  = 2000
	stepsPerTick = 8
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model animates a trajectory as it is computed, with an orbiting camera
// and live parameter tuning.
type Model struct {
	name    string
	sys     ode.System
	stepper ode.Stepper
	dt      float64

	state     ode.State
	iteration int
	trail     sim.Trajectory
	canvas    *Canvas
	camera    *Camera
	running   bool
	diverged  bool

	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	initialState  ode.State
}

// NewModel initializes the live view for a configured system.
func NewModel(name string, sys ode.System, stepper ode.Stepper, init ode.State, dt float64) Model {
	params := make(map[string]float64)
	if c, ok := sys.(ode.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initialParams := make(map[string]float64)
	for k, v := range params {
		keys = append(keys, k)
		initialParams[k] = v
	}
	sort.Strings(keys)

	return Model{
		name:          name,
		sys:           sys,
		stepper:       stepper,
		dt:            dt,
		state:         init,
		trail:         make(sim.Trajectory, 0, trailLength),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		camera:        NewCamera(),
		running:       true,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
		initialState:  init,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the trajectory.
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
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running && !m.diverged {
			for i := 0; i < stepsPerTick; i++ {
				m.step()
			}
		}
		// Slow auto-orbit keeps the 3D structure readable.
		m.camera.RotateY(0.004)
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// step advances the trajectory by one state.
func (m *Model) step() {
	m.state = m.stepper.Step(m.sys, m.state, m.dt)
	m.iteration++

	if !m.state.IsValid() {
		m.diverged = true
		return
	}

	m.trail = append(m.trail, m.state)
	if len(m.trail) > trailLength {
		m.trail = m.trail[1:]
	}
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	m.params[key] *= factor
	if c, ok := m.sys.(ode.Configurable); ok {
		c.SetParam(key, m.params[key])
	}
}

// reset restores the initial state and parameters.
func (m *Model) reset() {
	m.state = m.initialState
	m.iteration = 0
	m.trail = m.trail[:0]
	m.diverged = false
	for k, v := range m.initialParams {
		m.params[k] = v
		if c, ok := m.sys.(ode.Configurable); ok {
			c.SetParam(k, v)
		}
	}
}

// View renders the canvas beside the stats panel.
func (m Model) View() string {
	m.canvas.Clear()
	DrawTrajectory3D(m.canvas, m.trail, m.camera)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(strings.ReplaceAll(m.name, "_", " "))) + "\n")

	status := "RUNNING"
	if m.diverged {
		status = "DIVERGED"
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Iteration") + valueStyle.Render(fmt.Sprintf("%d", m.iteration)) + "\n")
	s.WriteString(labelStyle.Render("X") + valueStyle.Render(fmt.Sprintf("%.4f", m.state[0])) + "\n")
	s.WriteString(labelStyle.Render("Y") + valueStyle.Render(fmt.Sprintf("%.4f", m.state[1])) + "\n")
	s.WriteString(labelStyle.Render("Z") + valueStyle.Render(fmt.Sprintf("%.4f", m.state[2])) + "\n")

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) > 0 {
		for i, k := range m.paramKeys {
			line := fmt.Sprintf("%-8s %.4f", k, m.params[k])
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Param ↑↓:Tune\nx/y/z:Rotate +/-:Zoom"))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

// Run starts the live view and blocks until the user quits.
func Run(name string, sys ode.System, stepper ode.Stepper, init ode.State, dt float64) error {
	p := tea.NewProgram(NewModel(name, sys, stepper, init, dt))
	_, err := p.Run()
	return err
}
