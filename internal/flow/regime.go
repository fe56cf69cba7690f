package flow

// Regime is the flow regime predicted by the Reynolds number.
type Regime int

const (
	Laminar Regime = iota
	Transitional
	Turbulent
)

var regimeInfo = [...]struct {
	label       string
	description string
}{
	Laminar:      {"Laminar Flow", "Smooth, predictable layers"},
	Transitional: {"Transitional Flow", "Unpredictable, mix of laminar/turbulent"},
	Turbulent:    {"Turbulent Flow", "Chaotic, high mixing"},
}

func (r Regime) String() string {
	if r < Laminar || r > Turbulent {
		return "Unknown Flow"
	}
	return regimeInfo[r].label
}

// Description is a short characterization of the regime.
func (r Regime) Description() string {
	if r < Laminar || r > Turbulent {
		return ""
	}
	return regimeInfo[r].description
}

// Thresholds bound the transitional band.
type Thresholds struct {
	Laminar   float64 `yaml:"laminar"`
	Turbulent float64 `yaml:"turbulent"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Laminar: 2000, Turbulent: 4000}
}

// Classify maps a Reynolds number onto a regime. Both thresholds belong to
// the transitional band.
func Classify(re float64, th Thresholds) Regime {
	switch {
	case re < th.Laminar:
		return Laminar
	case re <= th.Turbulent:
		return Transitional
	default:
		return Turbulent
	}
}
