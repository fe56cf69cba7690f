package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber indicates text that is not a decimal number.
var ErrInvalidNumber = errors.New("calc: invalid number")

// ParseNumber reads a decimal floating-point number, ignoring surrounding
// whitespace. Hex floats, NaN and magnitudes beyond float64 are rejected.
// "inf" and "infinity" are returned as infinities.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}
