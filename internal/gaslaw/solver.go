package gaslaw

import (
	"fmt"

	"github.com/san-kum/engcalc/internal/calc"
)

// Inputs is a validated set of the four fields with exactly one unknown.
type Inputs struct {
	fields [len(Variables)]Field
}

// NewInputs checks the structural invariants and returns the field set.
func NewInputs(p, v, n, t Field) (Inputs, error) {
	in := Inputs{fields: [len(Variables)]Field{p, v, n, t}}
	if err := in.Validate(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

// Parse builds Inputs from raw text in P, V, n, T order.
//
// The unknown count is checked over all four inputs before any number is
// parsed, then fields are parsed in order, then the temperature bound is
// applied.
func Parse(p, v, n, t string) (Inputs, error) {
	raw := [len(Variables)]string{p, v, n, t}

	unknowns := 0
	for _, s := range raw {
		if IsSentinel(s) {
			unknowns++
		}
	}
	switch {
	case unknowns > 1:
		return Inputs{}, ErrMultipleUnknowns
	case unknowns == 0:
		return Inputs{}, ErrNoUnknown
	}

	var fields [len(Variables)]Field
	for _, vr := range Variables {
		f, err := ParseField(raw[vr])
		if err != nil {
			return Inputs{}, &FieldError{Var: vr, Err: err}
		}
		fields[vr] = f
	}
	return NewInputs(fields[Pressure], fields[Volume], fields[Moles], fields[Temperature])
}

func (in Inputs) Validate() error {
	unknowns := 0
	for _, f := range in.fields {
		if f.IsUnknown() {
			unknowns++
		}
	}
	switch {
	case unknowns > 1:
		return ErrMultipleUnknowns
	case unknowns == 0:
		return ErrNoUnknown
	}
	if t, ok := in.fields[Temperature].Value(); ok && t <= 0 {
		return &FieldError{Var: Temperature, Err: ErrNonPositiveTemperature}
	}
	return nil
}

// Unknown returns the variable to solve for. Only meaningful on valid Inputs.
func (in Inputs) Unknown() Variable {
	for _, vr := range Variables {
		if in.fields[vr].IsUnknown() {
			return vr
		}
	}
	return Variable(-1)
}

func (in Inputs) Field(v Variable) Field {
	if !v.valid() {
		return Unknown()
	}
	return in.fields[v]
}

func (in Inputs) value(v Variable) float64 {
	x, _ := in.fields[v].Value()
	return x
}

// Solve evaluates the unknown with gas constant r.
func Solve(in Inputs, r float64) (calc.Quantity, error) {
	if err := in.Validate(); err != nil {
		return calc.Quantity{}, err
	}
	return calc.Guard("gaslaw", func() (calc.Quantity, error) {
		return solve(in, r)
	})
}

func solve(in Inputs, r float64) (calc.Quantity, error) {
	unknown := in.Unknown()
	p := in.value(Pressure)
	v := in.value(Volume)
	n := in.value(Moles)
	t := in.value(Temperature)

	var result float64
	switch unknown {
	case Pressure:
		if v == 0 {
			return calc.Quantity{}, divisionByZero(Volume.Symbol())
		}
		result = n * r * t / v
	case Volume:
		if p == 0 {
			return calc.Quantity{}, divisionByZero(Pressure.Symbol())
		}
		result = n * r * t / p
	case Moles:
		if r == 0 {
			return calc.Quantity{}, divisionByZero("R")
		}
		if t == 0 {
			return calc.Quantity{}, divisionByZero(Temperature.Symbol())
		}
		result = p * v / (r * t)
	case Temperature:
		if r == 0 {
			return calc.Quantity{}, divisionByZero("R")
		}
		if n == 0 {
			return calc.Quantity{}, divisionByZero(Moles.Symbol())
		}
		result = p * v / (n * r)
	default:
		return calc.Quantity{}, &calc.FaultError{Op: "gaslaw", Cause: fmt.Sprintf("unknown variable identity %d", int(unknown))}
	}

	if err := calc.CheckFinite("gaslaw", result); err != nil {
		return calc.Quantity{}, err
	}
	return calc.Quantity{Symbol: unknown.Symbol(), Value: result, Unit: unknown.Unit()}, nil
}

func divisionByZero(symbol string) error {
	return fmt.Errorf("%w: %s is zero", calc.ErrDivisionByZero, symbol)
}
