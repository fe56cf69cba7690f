package tui

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/engcalc/internal/calc"
	"github.com/san-kum/engcalc/internal/flow"
	"github.com/san-kum/engcalc/internal/gaslaw"
)

const plotPoints = 40

// isothermPlot draws P(V) = nRT/V from V/4 to 2V through the solved state.
// It returns "" unless all four values are positive and every sample is
// finite.
func isothermPlot(in gaslaw.Inputs, solved, r float64, width int) string {
	var vals [len(gaslaw.Variables)]float64
	for _, v := range gaslaw.Variables {
		x, ok := in.Field(v).Value()
		if !ok {
			x = solved
		}
		if x <= 0 {
			return ""
		}
		vals[v] = x
	}

	nrt := vals[gaslaw.Moles] * r * vals[gaslaw.Temperature]
	v0 := vals[gaslaw.Volume] / 4
	v1 := vals[gaslaw.Volume] * 2

	data := make([]float64, plotPoints)
	for i := range data {
		vol := v0 + (v1-v0)*float64(i)/float64(plotPoints-1)
		data[i] = nrt / vol
	}

	return render("isotherm", data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("isotherm P(V), V from %.4g to %.4g m³ at T = %.2f K", v0, v1, vals[gaslaw.Temperature])),
	)
}

// sweepPlot draws Re against velocity from 0 to twice the entered value.
func sweepPlot(in flow.Inputs, th flow.Thresholds, width int) string {
	data, err := flow.Sweep(in, 2*in.Velocity, plotPoints)
	if err != nil {
		return ""
	}
	return render("sweep", data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("Re vs v, 0 to %.4g m/s (laminar < %.0f, turbulent > %.0f)", 2*in.Velocity, th.Laminar, th.Turbulent)),
	)
}

// render plots data, or returns "" when a sample is not finite or the
// plotter fails. A missing plot never hides the result it illustrates.
func render(op string, data []float64, opts ...asciigraph.Option) string {
	for _, y := range data {
		if calc.CheckFinite(op, y) != nil {
			return ""
		}
	}
	out, err := calc.Guard(op, func() (string, error) {
		return asciigraph.Plot(data, opts...), nil
	})
	if err != nil {
		return ""
	}
	return out
}
