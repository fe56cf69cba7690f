package flow_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/engcalc/internal/calc"
	"github.com/san-kum/engcalc/internal/flow"
)

var _ = Describe("Reynolds", func() {
	DescribeTable("computes ρvD/μ",
		func(in flow.Inputs) {
			re, err := flow.Reynolds(in)
			Expect(err).NotTo(HaveOccurred())
			expected := in.Density * in.Velocity * in.Diameter / in.Viscosity
			Expect(re).To(BeNumerically("~", expected, 1e-9*expected))
		},
		Entry("water in a small pipe", flow.Inputs{Density: 998, Velocity: 0.1, Diameter: 0.01, Viscosity: 1.002e-3}),
		Entry("air in a duct", flow.Inputs{Density: 1.204, Velocity: 5, Diameter: 0.3, Viscosity: 1.81e-5}),
		Entry("glycerin", flow.Inputs{Density: 1260, Velocity: 0.5, Diameter: 0.05, Viscosity: 1.41}),
	)

	It("classifies fast water as turbulent", func() {
		a, err := flow.Analyze(flow.Inputs{Density: 1000, Velocity: 2, Diameter: 0.05, Viscosity: 0.001}, flow.DefaultThresholds())
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Reynolds).To(BeNumerically("~", 100000, 1e-6))
		Expect(a.Regime).To(Equal(flow.Turbulent))
		Expect(a.Quantity().Format(2)).To(Equal("Re = 100000.00"))
	})

	It("reports zero viscosity as a division by zero", func() {
		_, err := flow.Reynolds(flow.Inputs{Density: 1000, Velocity: 2, Diameter: 0.05})
		Expect(err).To(MatchError(calc.ErrDivisionByZero))
		Expect(err).NotTo(MatchError(calc.ErrUnexpected))
	})

	It("reports an overflow as an unexpected fault", func() {
		_, err := flow.Reynolds(flow.Inputs{Density: 1e300, Velocity: 1e300, Diameter: 1, Viscosity: 1})
		Expect(err).To(MatchError(calc.ErrUnexpected))
	})
})

var _ = Describe("Classify", func() {
	th := flow.DefaultThresholds()

	DescribeTable("uses inclusive transitional bounds",
		func(re float64, expected flow.Regime) {
			Expect(flow.Classify(re, th)).To(Equal(expected))
		},
		Entry("well below", 100.0, flow.Laminar),
		Entry("just below laminar bound", 1999.99, flow.Laminar),
		Entry("laminar bound", 2000.0, flow.Transitional),
		Entry("middle", 3000.0, flow.Transitional),
		Entry("turbulent bound", 4000.0, flow.Transitional),
		Entry("just above turbulent bound", 4000.01, flow.Turbulent),
		Entry("well above", 1e6, flow.Turbulent),
	)

	It("labels each regime", func() {
		Expect(flow.Laminar.String()).To(Equal("Laminar Flow"))
		Expect(flow.Transitional.String()).To(Equal("Transitional Flow"))
		Expect(flow.Turbulent.String()).To(Equal("Turbulent Flow"))
		Expect(flow.Turbulent.Description()).To(Equal("Chaotic, high mixing"))
		Expect(flow.Regime(7).String()).To(Equal("Unknown Flow"))
	})

	It("honours custom thresholds", func() {
		custom := flow.Thresholds{Laminar: 2300, Turbulent: 2900}
		Expect(flow.Classify(2100, custom)).To(Equal(flow.Laminar))
		Expect(flow.Classify(2900, custom)).To(Equal(flow.Transitional))
		Expect(flow.Classify(3000, custom)).To(Equal(flow.Turbulent))
	})
})

var _ = Describe("Sweep", func() {
	It("spans zero to the requested velocity", func() {
		in := flow.Inputs{Density: 1000, Velocity: 2, Diameter: 0.05, Viscosity: 0.001}
		res, err := flow.Sweep(in, 4, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveLen(5))
		Expect(res[0]).To(BeZero())
		Expect(res[2]).To(BeNumerically("~", 100000, 1e-6))
		Expect(res[4]).To(BeNumerically("~", 200000, 1e-6))
	})

	It("needs at least two points", func() {
		_, err := flow.Sweep(flow.Inputs{Viscosity: 1}, 1, 1)
		Expect(err).To(HaveOccurred())
	})
})
