// Package gaslaw solves the ideal gas law PV = nRT for one unknown.
//
// Each of the four variables is held as a [Field], either [Known] with a
// value or [Unknown]. [Parse] turns raw text into [Inputs], accepting the
// sentinel "x" (any case) for the variable to solve for, and enforces that
// exactly one variable is unknown and that a known temperature is above
// absolute zero. [Solve] then evaluates the matching rearrangement:
//
//	P = nRT / V
//	V = nRT / P
//	n = PV / (RT)
//	T = PV / (nR)
//
// A known divisor of zero is reported as [calc.ErrDivisionByZero].
package gaslaw
