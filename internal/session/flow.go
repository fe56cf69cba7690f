package session

import (
	"fmt"
	"strconv"

	"github.com/san-kum/engcalc/internal/flow"
	"github.com/san-kum/engcalc/internal/prompt"
)

// FlowDivisionMsg is printed when the viscosity is zero.
const FlowDivisionMsg = "Calculation Error: Dynamic Viscosity (μ) cannot be zero."

// FlowPrompts are asked in order: density, velocity, diameter, viscosity.
var FlowPrompts = [...]string{
	"Fluid Density (ρ, kg/m³): ",
	"Fluid Velocity (v, m/s): ",
	"Pipe Diameter (D, m): ",
	"Dynamic Viscosity (μ, Pa·s): ",
}

// RunFlow asks for the fluid and pipe properties and prints the Reynolds
// number with its regime.
func (s *Session) RunFlow() {
	s.out.Heading("--- 2. Pipe Flow Analysis (Reynolds Number) Solver ---")

	var in flow.Inputs
	fields := [...]*float64{&in.Density, &in.Velocity, &in.Diameter, &in.Viscosity}
	for i, p := range FlowPrompts {
		v, ok := s.in.ReadFloat(p, prompt.DefaultMin)
		if !ok {
			s.log.WithField("calculator", "flow").Debug("input closed")
			return
		}
		*fields[i] = v
	}

	a, err := flow.Analyze(in, s.thresholds())
	if err != nil {
		s.reportCalc("flow", err, FlowDivisionMsg)
		return
	}

	s.out.Result(
		"Calculated Reynolds Number (Re): "+strconv.FormatFloat(a.Reynolds, 'f', s.cfg.Precision.Reynolds, 64),
		fmt.Sprintf("Flow Regime: %s (%s)", a.Regime, a.Regime.Description()),
	)
}

func (s *Session) thresholds() flow.Thresholds {
	return flow.Thresholds{
		Laminar:   s.cfg.Thresholds.Laminar,
		Turbulent: s.cfg.Thresholds.Turbulent,
	}
}
