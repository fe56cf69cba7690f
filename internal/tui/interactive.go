package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/engcalc/internal/calc"
	"github.com/san-kum/engcalc/internal/config"
	"github.com/san-kum/engcalc/internal/flow"
	"github.com/san-kum/engcalc/internal/gaslaw"
	"github.com/san-kum/engcalc/internal/prompt"
	"github.com/san-kum/engcalc/internal/session"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type calculator struct {
	name   string
	title  string
	desc   string
	fields []string
	accept string
}

var calculators = []calculator{
	{
		name:   "gas",
		title:  "Ideal Gas Law",
		desc:   "PV = nRT, solve for one unknown",
		fields: []string{"P (Pa)", "V (m³)", "n (mol)", "T (K)"},
		accept: "0123456789.-+eExX",
	},
	{
		name:   "flow",
		title:  "Reynolds Number",
		desc:   "pipe flow regime",
		fields: []string{"ρ (kg/m³)", "v (m/s)", "D (m)", "μ (Pa·s)"},
		accept: "0123456789.-+eE",
	},
}

type state int

const (
	stateMenu state = iota
	stateForm
	stateResult
)

type model struct {
	cfg *config.Config

	state  state
	cursor int

	values      []string
	fieldCursor int
	err         string

	result []string
	plot   string

	width  int
	height int
}

func NewApp(cfg *config.Config) model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return model{
		cfg:    cfg,
		state:  stateMenu,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateForm:
		return m.formKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) selected() calculator {
	return calculators[m.cursor]
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(calculators)-1 {
			m.cursor++
		}
	case "1", "2":
		m.cursor = int(msg.String()[0] - '1')
		m.openForm()
	case "enter", " ":
		m.openForm()
	}
	return m, nil
}

func (m *model) openForm() {
	m.state = stateForm
	m.values = make([]string, len(m.selected().fields))
	m.fieldCursor = 0
	m.err = ""
}

func (m model) formKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc":
		m.state = stateMenu
		m.err = ""
		return m, nil
	case "up", "shift+tab":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "tab":
		if m.fieldCursor < len(m.values)-1 {
			m.fieldCursor++
		}
	case "backspace":
		v := m.values[m.fieldCursor]
		if len(v) > 0 {
			m.values[m.fieldCursor] = v[:len(v)-1]
		}
	case "enter":
		if m.fieldCursor < len(m.values)-1 {
			m.fieldCursor++
			return m, nil
		}
		m.submit()
	default:
		if len(key) == 1 && strings.Contains(m.selected().accept, key) {
			m.values[m.fieldCursor] += key
		}
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc":
		m.state = stateMenu
	case "e":
		m.state = stateForm
		m.fieldCursor = 0
	}
	return m, nil
}

// submit evaluates the form, either moving to the result view or leaving
// an error on the form.
func (m *model) submit() {
	m.err = ""
	var err error
	switch m.selected().name {
	case "gas":
		err = m.solveGas()
	case "flow":
		err = m.solveFlow()
	}
	if err != nil {
		m.err = err.Error()
		return
	}
	m.state = stateResult
}

type formError string

func (e formError) Error() string { return string(e) }

func (m *model) solveGas() error {
	in, err := gaslaw.Parse(m.values[0], m.values[1], m.values[2], m.values[3])
	if err != nil {
		if msg, ok := session.GasInputMessage(err); ok {
			return formError(msg)
		}
		return formError(session.FaultMessage(err))
	}
	q, err := gaslaw.Solve(in, m.cfg.GasConstant)
	if err != nil {
		return formError(session.CalcErrorMessage(err, session.GasDivisionMsg))
	}
	m.result = []string{"Solution: " + q.Format(m.cfg.Precision.Gas)}
	m.plot = isothermPlot(in, q.Value, m.cfg.GasConstant, m.plotWidth())
	return nil
}

func (m *model) solveFlow() error {
	var vals [4]float64
	for i, raw := range m.values {
		v, err := calc.ParseNumber(raw)
		if err != nil || math.IsInf(v, 0) {
			m.fieldCursor = i
			return formError("Invalid input. Please enter a number.")
		}
		if v <= prompt.DefaultMin {
			m.fieldCursor = i
			return formError(fmt.Sprintf("Error: Value must be greater than %s.", prompt.FormatBound(prompt.DefaultMin)))
		}
		vals[i] = v
	}

	in := flow.Inputs{Density: vals[0], Velocity: vals[1], Diameter: vals[2], Viscosity: vals[3]}
	th := flow.Thresholds{Laminar: m.cfg.Thresholds.Laminar, Turbulent: m.cfg.Thresholds.Turbulent}
	a, err := flow.Analyze(in, th)
	if err != nil {
		return formError(session.CalcErrorMessage(err, session.FlowDivisionMsg))
	}
	m.result = []string{
		"Calculated Reynolds Number (Re): " + strconv.FormatFloat(a.Reynolds, 'f', m.cfg.Precision.Reynolds, 64),
		fmt.Sprintf("Flow Regime: %s (%s)", a.Regime, a.Regime.Description()),
	}
	m.plot = sweepPlot(in, th, m.plotWidth())
	return nil
}

func (m model) plotWidth() int {
	w := m.width - 20
	if w < 30 {
		w = 30
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateForm:
		return m.viewForm()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("e n g c a l c") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, c := range calculators {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-18s", c.title)) + dim.Render(c.desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-18s", c.title)) + dimmer.Render(c.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder
	c := m.selected()

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(c.title) + "  " + dim.Render(c.desc) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range c.fields {
		val := m.values[i]
		if i == m.fieldCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + magenta.Render(val+"▋") + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.err != "" {
		b.WriteString("\n      " + red.Render(m.err) + "\n")
	}

	b.WriteString("\n")
	if c.name == "gas" {
		b.WriteString(dim.Render("      type x for the unknown") + "\n")
	}
	b.WriteString(dim.Render("      ↑↓ field   enter next/solve   esc back") + "\n")

	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	c := m.selected()

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(c.title) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 35)) + "\n")
	for _, l := range m.result {
		b.WriteString("      " + green.Render(l) + "\n")
	}
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 35)) + "\n")

	if m.plot != "" {
		b.WriteString("\n")
		for _, l := range strings.Split(m.plot, "\n") {
			b.WriteString("  " + l + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter menu   e edit   q quit") + "\n")

	return b.String()
}

func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
