package calc

import (
	"fmt"
	"math"
	"strconv"
)

// GasConstant is the universal gas constant R in J/(mol·K).
const GasConstant = 8.314

// Quantity is a solved value with its symbol and unit.
type Quantity struct {
	Symbol string
	Value  float64
	Unit   string
}

// Format renders the quantity as "<symbol> = <value> <unit>" with the given
// number of decimal places.
func (q Quantity) Format(precision int) string {
	s := fmt.Sprintf("%s = %s", q.Symbol, strconv.FormatFloat(q.Value, 'f', precision, 64))
	if q.Unit != "" {
		s += " " + q.Unit
	}
	return s
}

func (q Quantity) String() string {
	return q.Format(4)
}

// CheckFinite reports ErrUnexpected for NaN or infinite values.
func CheckFinite(op string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FaultError{Op: op, Cause: fmt.Sprintf("non-finite result %v", v)}
	}
	return nil
}
