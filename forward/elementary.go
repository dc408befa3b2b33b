package forward

import (
	"fmt"
	"math"

	"autodiff/aderr"
)

// Sin returns (sin(r), cos(r)*d) for op = r+dε. A bare Real passes through
// math.Sin bit-identically in the Real field, with zero tangent.
func Sin(op Operand) Dual {
	d := op.dual()
	return Dual{Real: math.Sin(d.Real), Tangent: math.Cos(d.Real) * d.Tangent}
}

// Cos returns (cos(r), -sin(r)*d).
func Cos(op Operand) Dual {
	d := op.dual()
	return Dual{Real: math.Cos(d.Real), Tangent: -math.Sin(d.Real) * d.Tangent}
}

// Tan returns (tan(r), sec(r)^2 * d). Fails with ErrDomain when cos(r) is
// within one epsilon of zero (r near an odd multiple of π/2).
func Tan(op Operand) (Dual, error) {
	d := op.dual()
	c := math.Cos(d.Real)
	if math.Abs(c) < epsilon {
		return Dual{}, fmt.Errorf("%w: tan undefined at %v (cos is zero)", aderr.ErrDomain, d.Real)
	}
	sec2 := 1 / (c * c)
	return Dual{Real: math.Tan(d.Real), Tangent: sec2 * d.Tangent}, nil
}

// Exp returns (e^r, e^r * d).
func Exp(op Operand) Dual {
	d := op.dual()
	e := math.Exp(d.Real)
	return Dual{Real: e, Tangent: e * d.Tangent}
}

// Ln returns (ln(r), d/r). Fails with ErrDomain when r <= 0.
func Ln(op Operand) (Dual, error) {
	d := op.dual()
	if d.Real <= 0 {
		return Dual{}, fmt.Errorf("%w: ln undefined at %v", aderr.ErrDomain, d.Real)
	}
	return Dual{Real: math.Log(d.Real), Tangent: d.Tangent / d.Real}, nil
}

// Log returns log base b of op: (ln(r)/ln(b), d/(r*ln(b))). Fails with
// ErrDomain when b <= 0 or r <= 0.
func Log(op Operand, base float64) (Dual, error) {
	d := op.dual()
	if base <= 0 || d.Real <= 0 {
		return Dual{}, fmt.Errorf("%w: log base %v of %v undefined", aderr.ErrDomain, base, d.Real)
	}
	lnBase := math.Log(base)
	return Dual{
		Real:    math.Log(d.Real) / lnBase,
		Tangent: d.Tangent / (d.Real * lnBase),
	}, nil
}

// Asin returns (arcsin(r), d/sqrt(1-r^2)). Fails with ErrDomain when
// |r| > 1.
func Asin(op Operand) (Dual, error) {
	d := op.dual()
	if math.Abs(d.Real) > 1 {
		return Dual{}, fmt.Errorf("%w: arcsin undefined at %v", aderr.ErrDomain, d.Real)
	}
	return Dual{
		Real:    math.Asin(d.Real),
		Tangent: d.Tangent / math.Sqrt(1-d.Real*d.Real),
	}, nil
}

// Acos returns (arccos(r), -d/sqrt(1-r^2)). Fails with ErrDomain when
// |r| > 1.
func Acos(op Operand) (Dual, error) {
	d := op.dual()
	if math.Abs(d.Real) > 1 {
		return Dual{}, fmt.Errorf("%w: arccos undefined at %v", aderr.ErrDomain, d.Real)
	}
	return Dual{
		Real:    math.Acos(d.Real),
		Tangent: -d.Tangent / math.Sqrt(1-d.Real*d.Real),
	}, nil
}

// Atan returns (arctan(r), d/(1+r^2)).
func Atan(op Operand) Dual {
	d := op.dual()
	return Dual{Real: math.Atan(d.Real), Tangent: d.Tangent / (1 + d.Real*d.Real)}
}

// Sinh returns (sinh(r), cosh(r)*d).
func Sinh(op Operand) Dual {
	d := op.dual()
	return Dual{Real: math.Sinh(d.Real), Tangent: math.Cosh(d.Real) * d.Tangent}
}

// Cosh returns (cosh(r), sinh(r)*d).
func Cosh(op Operand) Dual {
	d := op.dual()
	return Dual{Real: math.Cosh(d.Real), Tangent: math.Sinh(d.Real) * d.Tangent}
}

// Tanh returns (tanh(r), (1-tanh(r)^2)*d).
func Tanh(op Operand) Dual {
	d := op.dual()
	t := math.Tanh(d.Real)
	return Dual{Real: t, Tangent: (1 - t*t) * d.Tangent}
}

// Sigmoid returns (σ(r), σ(r)*(1-σ(r))*d) where σ(r) = 1/(1+e^-r).
func Sigmoid(op Operand) Dual {
	d := op.dual()
	s := 1 / (1 + math.Exp(-d.Real))
	return Dual{Real: s, Tangent: s * (1 - s) * d.Tangent}
}
