package gaslaw_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/engcalc/internal/calc"
	"github.com/san-kum/engcalc/internal/gaslaw"
)

const r = calc.GasConstant

var _ = Describe("ParseField", func() {
	DescribeTable("accepts numbers and the sentinel",
		func(raw string, unknown bool, value float64) {
			f, err := gaslaw.ParseField(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.IsUnknown()).To(Equal(unknown))
			if !unknown {
				v, ok := f.Value()
				Expect(ok).To(BeTrue())
				Expect(v).To(Equal(value))
			}
		},
		Entry("lower-case sentinel", "x", true, 0.0),
		Entry("upper-case sentinel", "X", true, 0.0),
		Entry("padded sentinel", "  x ", true, 0.0),
		Entry("integer", "101325", false, 101325.0),
		Entry("decimal", "0.0224", false, 0.0224),
		Entry("exponent", "1e-3", false, 0.001),
		Entry("negative", "-5", false, -5.0),
	)

	DescribeTable("rejects non-numeric text",
		func(raw string) {
			_, err := gaslaw.ParseField(raw)
			Expect(err).To(MatchError(gaslaw.ErrInvalidNumber))
		},
		Entry("word", "abc"),
		Entry("empty", ""),
		Entry("sentinel with suffix", "xx"),
		Entry("nan", "NaN"),
		Entry("out of range", "1e400"),
		Entry("hex float", "0x1p3"),
	)
})

var _ = Describe("Parse", func() {
	It("finds the single unknown", func() {
		in, err := gaslaw.Parse("101325", "0.0224", "x", "273.15")
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Unknown()).To(Equal(gaslaw.Moles))
	})

	It("rejects more than one unknown", func() {
		_, err := gaslaw.Parse("x", "X", "1", "300")
		Expect(err).To(MatchError(gaslaw.ErrMultipleUnknowns))
	})

	It("reports the unknown count before a bad number", func() {
		_, err := gaslaw.Parse("abc", "x", "x", "300")
		Expect(err).To(MatchError(gaslaw.ErrMultipleUnknowns))
	})

	It("rejects a set with no unknown", func() {
		_, err := gaslaw.Parse("1", "2", "3", "4")
		Expect(err).To(MatchError(gaslaw.ErrNoUnknown))
	})

	It("names the field that failed to parse", func() {
		_, err := gaslaw.Parse("x", "two", "1", "300")
		Expect(err).To(MatchError(gaslaw.ErrInvalidNumber))

		var fe *gaslaw.FieldError
		Expect(err).To(BeAssignableToTypeOf(fe))
		fe = err.(*gaslaw.FieldError)
		Expect(fe.Var).To(Equal(gaslaw.Volume))
		Expect(fe.Var.Symbol()).To(Equal("V"))
	})

	DescribeTable("rejects a known temperature at or below absolute zero",
		func(p, v, n, t string) {
			_, err := gaslaw.Parse(p, v, n, t)
			Expect(err).To(MatchError(gaslaw.ErrNonPositiveTemperature))
		},
		Entry("zero with P unknown", "x", "1", "1", "0"),
		Entry("negative with n unknown", "101325", "0.0224", "x", "-10"),
		Entry("negative with zero volume", "x", "0", "1", "-1"),
	)

	It("allows an unknown temperature", func() {
		in, err := gaslaw.Parse("101325", "0.0224", "1", "x")
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Unknown()).To(Equal(gaslaw.Temperature))
	})
})

var _ = Describe("NewInputs", func() {
	It("enforces exactly one unknown", func() {
		_, err := gaslaw.NewInputs(gaslaw.Unknown(), gaslaw.Unknown(), gaslaw.Known(1), gaslaw.Known(1))
		Expect(err).To(MatchError(gaslaw.ErrMultipleUnknowns))

		_, err = gaslaw.NewInputs(gaslaw.Known(1), gaslaw.Known(1), gaslaw.Known(1), gaslaw.Known(1))
		Expect(err).To(MatchError(gaslaw.ErrNoUnknown))
	})

	It("treats the zero Inputs as invalid", func() {
		_, err := gaslaw.Solve(gaslaw.Inputs{}, r)
		Expect(err).To(MatchError(gaslaw.ErrMultipleUnknowns))
	})
})

var _ = Describe("Solve", func() {
	const (
		p = 101325.0
		v = 0.0224
		n = 1.5
		t = 273.15
	)

	DescribeTable("matches the closed-form rearrangement",
		func(in func() (gaslaw.Inputs, error), symbol, unit string, expected float64) {
			inputs, err := in()
			Expect(err).NotTo(HaveOccurred())

			q, err := gaslaw.Solve(inputs, r)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Symbol).To(Equal(symbol))
			Expect(q.Unit).To(Equal(unit))
			Expect(q.Value).To(BeNumerically("~", expected, 1e-9*math.Abs(expected)))
		},
		Entry("pressure", func() (gaslaw.Inputs, error) {
			return gaslaw.NewInputs(gaslaw.Unknown(), gaslaw.Known(v), gaslaw.Known(n), gaslaw.Known(t))
		}, "P", "Pa", n*r*t/v),
		Entry("volume", func() (gaslaw.Inputs, error) {
			return gaslaw.NewInputs(gaslaw.Known(p), gaslaw.Unknown(), gaslaw.Known(n), gaslaw.Known(t))
		}, "V", "m³", n*r*t/p),
		Entry("moles", func() (gaslaw.Inputs, error) {
			return gaslaw.NewInputs(gaslaw.Known(p), gaslaw.Known(v), gaslaw.Unknown(), gaslaw.Known(t))
		}, "n", "mol", p*v/(r*t)),
		Entry("temperature", func() (gaslaw.Inputs, error) {
			return gaslaw.NewInputs(gaslaw.Known(p), gaslaw.Known(v), gaslaw.Known(n), gaslaw.Unknown())
		}, "T", "K", p*v/(n*r)),
	)

	It("solves one mole at standard conditions", func() {
		in, err := gaslaw.Parse("101325", "0.0224", "x", "273.15")
		Expect(err).NotTo(HaveOccurred())

		q, err := gaslaw.Solve(in, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(q.Value).To(BeNumerically("~", 1.0, 1e-3))
		Expect(q.Format(4)).To(Equal("n = 0.9994 mol"))
	})

	DescribeTable("reports a zero divisor",
		func(p, v, n, t string, field string) {
			in, err := gaslaw.Parse(p, v, n, t)
			Expect(err).NotTo(HaveOccurred())

			_, err = gaslaw.Solve(in, r)
			Expect(err).To(MatchError(calc.ErrDivisionByZero))
			Expect(err.Error()).To(ContainSubstring(field + " is zero"))
		},
		Entry("zero volume", "x", "0", "1", "300", "V"),
		Entry("zero pressure", "0", "x", "1", "300", "P"),
		Entry("zero moles", "101325", "1", "0", "x", "n"),
	)

	It("reports a zero gas constant as a division by zero", func() {
		in, err := gaslaw.Parse("101325", "1", "x", "300")
		Expect(err).NotTo(HaveOccurred())

		_, err = gaslaw.Solve(in, 0)
		Expect(err).To(MatchError(calc.ErrDivisionByZero))
	})

	It("reports an overflowing result as an unexpected fault", func() {
		in, err := gaslaw.Parse("x", "1e-300", "1e300", "1e300")
		Expect(err).NotTo(HaveOccurred())

		_, err = gaslaw.Solve(in, r)
		Expect(err).To(MatchError(calc.ErrUnexpected))
	})

	It("does not treat a zero numerator as an error", func() {
		in, err := gaslaw.Parse("x", "1", "0", "300")
		Expect(err).NotTo(HaveOccurred())

		q, err := gaslaw.Solve(in, r)
		Expect(err).NotTo(HaveOccurred())
		Expect(q.Value).To(BeZero())
	})
})
