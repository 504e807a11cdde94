// Package core implements the glycation correction engine: glycan
// resolution, glycoform modeling, the attribution graph and the
// forward-substitution solver.
package core

import (
	"fmt"
	"math"
)

// Uncertain is a measured value paired with its standard uncertainty.
// All solver arithmetic runs on Uncertain so errors propagate through
// every intermediate step.
type Uncertain struct {
	Value float64
	Err   float64
}

// U is a shorthand constructor.
func U(value, err float64) Uncertain {
	return Uncertain{Value: value, Err: err}
}

// Add returns u + v. Absolute errors combine in quadrature,
// assuming independence.
func (u Uncertain) Add(v Uncertain) Uncertain {
	return Uncertain{
		Value: u.Value + v.Value,
		Err:   math.Hypot(u.Err, v.Err),
	}
}

// Sub returns u - v. Absolute errors combine in quadrature.
func (u Uncertain) Sub(v Uncertain) Uncertain {
	return Uncertain{
		Value: u.Value - v.Value,
		Err:   math.Hypot(u.Err, v.Err),
	}
}

// Mul returns u * v. Relative errors combine in quadrature.
func (u Uncertain) Mul(v Uncertain) Uncertain {
	value := u.Value * v.Value
	return Uncertain{
		Value: value,
		Err:   math.Abs(value) * math.Hypot(relErr(u), relErr(v)),
	}
}

// Div returns u / v. Relative errors combine in quadrature.
func (u Uncertain) Div(v Uncertain) Uncertain {
	value := u.Value / v.Value
	return Uncertain{
		Value: value,
		Err:   math.Abs(value) * math.Hypot(relErr(u), relErr(v)),
	}
}

// relErr returns the relative error of u, or 0 for a zero value so
// that exact zeros stay exact through products and ratios.
func relErr(u Uncertain) float64 {
	if u.Value == 0 {
		return 0
	}
	return u.Err / u.Value
}

func (u Uncertain) String() string {
	return fmt.Sprintf("%g±%g", u.Value, u.Err)
}
