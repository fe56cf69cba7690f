// Package flow computes the Reynolds number of pipe flow and classifies
// the flow regime.
//
//	Re = ρ·v·D / μ
//
// With the default [Thresholds], Re below 2000 is laminar, Re above 4000
// is turbulent and everything in between, both bounds included, is
// transitional.
package flow
