package graph

import (
	"fmt"
	"math"

	"autodiff/aderr"
)

// Sin builds sin(x): value sin(x.v), parent [(x, cos(x.v))].
func Sin(op Operand) *Node {
	x := op.node()
	return &Node{Value: math.Sin(x.Value), Parents: []Edge{{x, math.Cos(x.Value)}}}
}

// Cos builds cos(x): value cos(x.v), parent [(x, -sin(x.v))].
func Cos(op Operand) *Node {
	x := op.node()
	return &Node{Value: math.Cos(x.Value), Parents: []Edge{{x, -math.Sin(x.Value)}}}
}

// Tan builds tan(x): value tan(x.v), parent [(x, sec(x.v)^2)]. Fails with
// ErrDomain when cos(x.v) is within one epsilon of zero.
func Tan(op Operand) (*Node, error) {
	x := op.node()
	c := math.Cos(x.Value)
	if math.Abs(c) < epsilon {
		return nil, fmt.Errorf("%w: tan undefined at %v (cos is zero)", aderr.ErrDomain, x.Value)
	}
	sec2 := 1 / (c * c)
	return &Node{Value: math.Tan(x.Value), Parents: []Edge{{x, sec2}}}, nil
}

// Exp builds e^x: value e^x.v, parent [(x, e^x.v)].
func Exp(op Operand) *Node {
	x := op.node()
	e := math.Exp(x.Value)
	return &Node{Value: e, Parents: []Edge{{x, e}}}
}

// Ln builds ln(x): value ln(x.v), parent [(x, 1/x.v)]. Fails with
// ErrDomain when x.v <= 0.
func Ln(op Operand) (*Node, error) {
	x := op.node()
	if x.Value <= 0 {
		return nil, fmt.Errorf("%w: ln undefined at %v", aderr.ErrDomain, x.Value)
	}
	return &Node{Value: math.Log(x.Value), Parents: []Edge{{x, 1 / x.Value}}}, nil
}

// Log builds log base b of x: value ln(x.v)/ln(b), parent
// [(x, 1/(x.v*ln(b)))]. Fails with ErrDomain when b <= 0 or x.v <= 0.
func Log(op Operand, base float64) (*Node, error) {
	x := op.node()
	if base <= 0 || x.Value <= 0 {
		return nil, fmt.Errorf("%w: log base %v of %v undefined", aderr.ErrDomain, base, x.Value)
	}
	lnBase := math.Log(base)
	return &Node{
		Value:   math.Log(x.Value) / lnBase,
		Parents: []Edge{{x, 1 / (x.Value * lnBase)}},
	}, nil
}

// Asin builds arcsin(x): value asin(x.v), parent [(x, 1/sqrt(1-x.v^2))].
// Fails with ErrDomain when |x.v| > 1.
func Asin(op Operand) (*Node, error) {
	x := op.node()
	if math.Abs(x.Value) > 1 {
		return nil, fmt.Errorf("%w: arcsin undefined at %v", aderr.ErrDomain, x.Value)
	}
	return &Node{
		Value:   math.Asin(x.Value),
		Parents: []Edge{{x, 1 / math.Sqrt(1-x.Value*x.Value)}},
	}, nil
}

// Acos builds arccos(x): value acos(x.v), parent [(x, -1/sqrt(1-x.v^2))].
// Fails with ErrDomain when |x.v| > 1.
func Acos(op Operand) (*Node, error) {
	x := op.node()
	if math.Abs(x.Value) > 1 {
		return nil, fmt.Errorf("%w: arccos undefined at %v", aderr.ErrDomain, x.Value)
	}
	return &Node{
		Value:   math.Acos(x.Value),
		Parents: []Edge{{x, -1 / math.Sqrt(1-x.Value*x.Value)}},
	}, nil
}

// Atan builds arctan(x): value atan(x.v), parent [(x, 1/(1+x.v^2))].
func Atan(op Operand) *Node {
	x := op.node()
	return &Node{Value: math.Atan(x.Value), Parents: []Edge{{x, 1 / (1 + x.Value*x.Value)}}}
}

// Sinh builds sinh(x): value sinh(x.v), parent [(x, cosh(x.v))].
func Sinh(op Operand) *Node {
	x := op.node()
	return &Node{Value: math.Sinh(x.Value), Parents: []Edge{{x, math.Cosh(x.Value)}}}
}

// Cosh builds cosh(x): value cosh(x.v), parent [(x, sinh(x.v))].
func Cosh(op Operand) *Node {
	x := op.node()
	return &Node{Value: math.Cosh(x.Value), Parents: []Edge{{x, math.Sinh(x.Value)}}}
}

// Tanh builds tanh(x): value tanh(x.v), parent [(x, 1-tanh(x.v)^2)].
func Tanh(op Operand) *Node {
	x := op.node()
	t := math.Tanh(x.Value)
	return &Node{Value: t, Parents: []Edge{{x, 1 - t*t}}}
}

// Sigmoid builds σ(x) = 1/(1+e^-x): value σ(x.v),
// parent [(x, σ(x.v)*(1-σ(x.v)))].
func Sigmoid(op Operand) *Node {
	x := op.node()
	s := 1 / (1 + math.Exp(-x.Value))
	return &Node{Value: s, Parents: []Edge{{x, s * (1 - s)}}}
}
