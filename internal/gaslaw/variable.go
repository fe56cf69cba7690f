package gaslaw

import "fmt"

// Variable identifies one term of PV = nRT.
type Variable int

const (
	Pressure Variable = iota
	Volume
	Moles
	Temperature
)

// Variables lists the terms in prompt order.
var Variables = [...]Variable{Pressure, Volume, Moles, Temperature}

var variableInfo = [...]struct {
	symbol string
	unit   string
	prompt string
}{
	Pressure:    {"P", "Pa", "Pressure (P, Pa): "},
	Volume:      {"V", "m³", "Volume (V, m³): "},
	Moles:       {"n", "mol", "Moles (n, mol): "},
	Temperature: {"T", "K", "Temperature (T, K): "},
}

func (v Variable) valid() bool {
	return v >= Pressure && v <= Temperature
}

func (v Variable) Symbol() string {
	if !v.valid() {
		return fmt.Sprintf("Variable(%d)", int(v))
	}
	return variableInfo[v].symbol
}

func (v Variable) Unit() string {
	if !v.valid() {
		return ""
	}
	return variableInfo[v].unit
}

// Prompt is the text shown when asking for the variable.
func (v Variable) Prompt() string {
	if !v.valid() {
		return ""
	}
	return variableInfo[v].prompt
}

func (v Variable) String() string {
	return v.Symbol()
}
