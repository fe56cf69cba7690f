// Package calc provides the shared primitives of the engineering solvers.
//
// Solvers report their answer as a [Quantity] and signal failures with
// plain error values:
//
//   - [ErrDivisionByZero]: a known divisor was exactly zero
//   - [ErrUnexpected]: any other computational fault
//
// A solver body can be wrapped with [Guard] so that a panic surfaces as a
// [FaultError] instead of terminating the program.
//
// # Example
//
//	q, err := calc.Guard("gaslaw", func() (calc.Quantity, error) {
//	    return gaslaw.Solve(in, calc.GasConstant)
//	})
//	if errors.Is(err, calc.ErrDivisionByZero) {
//	    // report the calculation error
//	}
package calc
