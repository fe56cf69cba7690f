package flow

import (
	"fmt"

	"github.com/san-kum/engcalc/internal/calc"
)

// Inputs are the physical properties of the fluid and pipe, in SI units.
type Inputs struct {
	Density   float64 // ρ, kg/m³
	Velocity  float64 // v, m/s
	Diameter  float64 // D, m
	Viscosity float64 // μ, Pa·s
}

type Analysis struct {
	Reynolds float64
	Regime   Regime
}

func (a Analysis) Quantity() calc.Quantity {
	return calc.Quantity{Symbol: "Re", Value: a.Reynolds}
}

// Reynolds returns ρ·v·D / μ.
func Reynolds(in Inputs) (float64, error) {
	return calc.Guard("reynolds", func() (float64, error) {
		if in.Viscosity == 0 {
			return 0, fmt.Errorf("%w: μ is zero", calc.ErrDivisionByZero)
		}
		re := in.Density * in.Velocity * in.Diameter / in.Viscosity
		if err := calc.CheckFinite("reynolds", re); err != nil {
			return 0, err
		}
		return re, nil
	})
}

// Analyze computes the Reynolds number and its regime.
func Analyze(in Inputs, th Thresholds) (Analysis, error) {
	re, err := Reynolds(in)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{Reynolds: re, Regime: Classify(re, th)}, nil
}

// Sweep evaluates Re at evenly spaced velocities from 0 to maxVelocity,
// keeping the other properties fixed.
func Sweep(in Inputs, maxVelocity float64, points int) ([]float64, error) {
	if points < 2 {
		return nil, fmt.Errorf("flow: sweep needs at least 2 points, got %d", points)
	}
	out := make([]float64, points)
	for i := range out {
		probe := in
		probe.Velocity = maxVelocity * float64(i) / float64(points-1)
		re, err := Reynolds(probe)
		if err != nil {
			return nil, err
		}
		out[i] = re
	}
	return out, nil
}
