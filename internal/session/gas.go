package session

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/san-kum/engcalc/internal/gaslaw"
)

// GasDivisionMsg is printed when a gas law solve divides by zero.
const GasDivisionMsg = "Calculation Error: Division by zero. Check that input values (especially V, n, P) are not zero."

// RunGas asks for P, V, n and T, one of them marked with the sentinel, and
// prints the solved unknown.
func (s *Session) RunGas() {
	s.out.Heading("--- 1. Ideal Gas Law (PV = nRT) Solver ---")
	s.out.Note(fmt.Sprintf("Using Universal Gas Constant R = %s J/(mol·K)",
		strconv.FormatFloat(s.cfg.GasConstant, 'f', -1, 64)))
	s.out.Note(fmt.Sprintf("Enter '%s' for the variable you want to solve for.", gaslaw.Sentinel))

	var raw [len(gaslaw.Variables)]string
	for _, v := range gaslaw.Variables {
		line, ok := s.in.ReadLine(v.Prompt())
		if !ok {
			s.log.WithField("calculator", "gas").Debug("input closed")
			return
		}
		raw[v] = line
	}

	in, err := gaslaw.Parse(raw[gaslaw.Pressure], raw[gaslaw.Volume], raw[gaslaw.Moles], raw[gaslaw.Temperature])
	if err != nil {
		s.reportGasInput(err)
		return
	}

	s.log.WithField("calculator", "gas").WithField("unknown", in.Unknown().Symbol()).Debug("solving")
	q, err := gaslaw.Solve(in, s.cfg.GasConstant)
	if err != nil {
		s.reportCalc("gas", err, GasDivisionMsg)
		return
	}

	s.out.Result("Solution: " + q.Format(s.cfg.Precision.Gas))
}

func (s *Session) reportGasInput(err error) {
	msg, ok := GasInputMessage(err)
	if !ok {
		s.reportFault("gas", err)
		return
	}
	s.out.Errorf("%s", msg)
}

// GasInputMessage returns the text reported for a gaslaw.Parse error. It
// returns false for errors that are not input problems.
func GasInputMessage(err error) (string, bool) {
	var fe *gaslaw.FieldError
	switch {
	case errors.Is(err, gaslaw.ErrMultipleUnknowns):
		return fmt.Sprintf("Error: Please enter '%s' for ONLY one unknown variable.", gaslaw.Sentinel), true
	case errors.Is(err, gaslaw.ErrNoUnknown):
		return fmt.Sprintf("Error: Please enter '%s' for one variable to solve for.", gaslaw.Sentinel), true
	case errors.Is(err, gaslaw.ErrNonPositiveTemperature):
		return "Error: Absolute temperature (T) must be greater than 0 K.", true
	case errors.Is(err, gaslaw.ErrInvalidNumber) && errors.As(err, &fe):
		return fmt.Sprintf("Error: Invalid numerical input for %s.", fe.Var.Symbol()), true
	}
	return "", false
}
