package gaslaw

import (
	"strconv"
	"strings"

	"github.com/san-kum/engcalc/internal/calc"
)

// Sentinel marks the variable to solve for. Matching ignores case.
const Sentinel = "x"

// Field is either a known value or the unknown. The zero Field is unknown.
type Field struct {
	value float64
	known bool
}

func Known(v float64) Field {
	return Field{value: v, known: true}
}

func Unknown() Field {
	return Field{}
}

func (f Field) IsUnknown() bool {
	return !f.known
}

// Value returns the known value and whether the field is known.
func (f Field) Value() (float64, bool) {
	return f.value, f.known
}

func (f Field) String() string {
	if !f.known {
		return Sentinel
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// IsSentinel reports whether raw marks the unknown.
func IsSentinel(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), Sentinel)
}

// ParseField converts one raw input into a Field.
func ParseField(raw string) (Field, error) {
	if IsSentinel(raw) {
		return Unknown(), nil
	}
	v, err := calc.ParseNumber(raw)
	if err != nil {
		return Field{}, ErrInvalidNumber
	}
	return Known(v), nil
}
