// Package prompt reads interactive answers line by line.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/engcalc/internal/calc"
)

// DefaultMin is the lower bound used by ReadFloat callers that accept any
// strictly positive value.
const DefaultMin = 0.0

// Reader prompts on w and reads answers from r.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(r), out: w}
}

// ReadLine writes prompt and returns the next line without its terminator.
// It returns false once the input is exhausted.
func (r *Reader) ReadLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

// ReadFloat prompts until the answer is a finite number greater than min.
// Invalid answers are reported and asked again. It returns false on end of
// input without printing anything further.
func (r *Reader) ReadFloat(prompt string, min float64) (float64, bool) {
	for {
		line, ok := r.ReadLine(prompt)
		if !ok {
			return 0, false
		}

		v, err := calc.ParseNumber(line)
		if err != nil || math.IsInf(v, 0) {
			fmt.Fprintln(r.out, "Invalid input. Please enter a number.")
			continue
		}
		if v <= min {
			fmt.Fprintf(r.out, "Error: Value must be greater than %s.\n", FormatBound(min))
			continue
		}
		return v, true
	}
}

// FormatBound renders a bound with at least one decimal place, so 0 reads
// as "0.0".
func FormatBound(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
