// Package forward implements forward-mode automatic differentiation via
// dual numbers: a pair (real, tangent) that carries a value and its
// directional derivative through the chain rule algebraically, with no
// finite-difference error.
//
// A dual number is immutable; every operation produces a new value rather
// than mutating its operands. Binary operations accept either another Dual
// or a bare real, the latter promoted to a zero-tangent constant via Real,
// mirroring the sum-type dispatch a language without operator overloading
// would use (Dual | Real).
package forward

import (
	"fmt"
	"math"

	"autodiff/aderr"

	"gonum.org/v1/gonum/floats"
)

// epsilon is the machine epsilon for float64, used both for equality
// comparisons (Dual.Equal) and for the "is this effectively zero"
// divide-by-zero guards.
const epsilon = 2.220446049250313e-16

// Dual is a pair (real, tangent): the primal value and the accumulated
// directional derivative. Equality compares both components within one
// epsilon; the relational operators compare both components exactly.
type Dual struct {
	Real    float64
	Tangent float64
}

// Operand is anything that can appear on the right of a Dual binary
// operation: another Dual, or a bare Real promoted to a zero-tangent
// constant.
type Operand interface {
	dual() Dual
}

func (d Dual) dual() Dual { return d }

// Real promotes a plain float64 to a constant operand (zero tangent)
// wherever a Dual operation expects an Operand.
type Real float64

func (r Real) dual() Dual { return Dual{Real: float64(r)} }

// Variable constructs the dual number that marks real as "the variable of
// differentiation": tangent defaults to 1.
func Variable(real float64) Dual {
	return Dual{Real: real, Tangent: 1}
}

// Constant constructs a dual number with zero tangent, the promotion target
// for a bare real used as an operand.
func Constant(real float64) Dual {
	return Dual{Real: real}
}

// New constructs a dual number with an explicit tangent.
func New(real, tangent float64) Dual {
	return Dual{Real: real, Tangent: tangent}
}

// String renders a Dual as "Dual Number (real=<r>, dual=<d>)".
func (d Dual) String() string {
	return fmt.Sprintf("Dual Number (real=%v, dual=%v)", d.Real, d.Tangent)
}

// Add returns d+op: (r1+r2, d1+d2).
func (d Dual) Add(op Operand) Dual {
	o := op.dual()
	return Dual{Real: d.Real + o.Real, Tangent: d.Tangent + o.Tangent}
}

// Sub returns d-op: (r1-r2, d1-d2).
func (d Dual) Sub(op Operand) Dual {
	o := op.dual()
	return Dual{Real: d.Real - o.Real, Tangent: d.Tangent - o.Tangent}
}

// Neg returns -d.
func (d Dual) Neg() Dual {
	return Dual{Real: -d.Real, Tangent: -d.Tangent}
}

// Mul returns d*op: (r1*r2, r1*d2 + d1*r2).
func (d Dual) Mul(op Operand) Dual {
	o := op.dual()
	return Dual{Real: d.Real * o.Real, Tangent: d.Real*o.Tangent + d.Tangent*o.Real}
}

// Div returns d/op: (r1/r2, (d1*r2 - r1*d2)/r2^2). The divisor's primal must
// not be within one epsilon of zero.
func (d Dual) Div(op Operand) (Dual, error) {
	o := op.dual()
	if floats.EqualWithinAbs(o.Real, 0, epsilon) {
		return Dual{}, fmt.Errorf("%w: dual division by %v", aderr.ErrDivideByZero, o.Real)
	}
	return Dual{
		Real:    d.Real / o.Real,
		Tangent: (d.Tangent*o.Real - d.Real*o.Tangent) / (o.Real * o.Real),
	}, nil
}

// FloorDiv returns a dual whose components are the floor of the
// corresponding true-division result: floor(r1/r2) and floor of the
// tangent of d.Div(op). Domain rules are identical to Div.
func (d Dual) FloorDiv(op Operand) (Dual, error) {
	q, err := d.Div(op)
	if err != nil {
		return Dual{}, err
	}
	return Dual{Real: math.Floor(q.Real), Tangent: math.Floor(q.Tangent)}, nil
}

// Pow returns d^op using the general dual power rule
//
//	r1^r2 = a^c
//	tangent = a^(c-1) * (a*e*ln(a) + c*b)
//
// for d = a+bε and op = c+eε. This single formula also covers the
// "dual-real" case (op a bare Real, e=0, reducing to c*b*a^(c-1)) and,
// via PowReal, the "real-dual" case (a itself a bare constant).
//
// Edge cases at a primal base of zero follow §4.1 of the governing
// specification: the worked example Dual(0,0)^Dual(0.5,3) == Dual(0,0)
// settles the ambiguity in the prose rule in favor of "base zero is
// defined, with zero tangent, whenever the exponent's real part is
// strictly positive" regardless of the exponent's own tangent; any
// non-positive exponent real part is a domain error.
func (d Dual) Pow(op Operand) (Dual, error) {
	o := op.dual()

	if d.Real == 0 {
		if o.Real > 0 {
			return Dual{}, nil
		}
		return Dual{}, fmt.Errorf("%w: 0^%v is undefined", aderr.ErrDomain, o.Real)
	}
	if d.Real < 0 {
		return Dual{}, fmt.Errorf("%w: negative base %v raised to a dual power", aderr.ErrDomain, d.Real)
	}

	pow := math.Pow(d.Real, o.Real-1)
	tangent := pow * (d.Real*o.Tangent*math.Log(d.Real) + o.Real*d.Tangent)
	return Dual{Real: d.Real * pow, Tangent: tangent}, nil
}

// PowReal returns d^k for a bare real exponent k: the "dual-real" row of
// §4.1, r1^k with tangent k*d1*r1^(k-1).
//
// At a primal base of zero: k>=1 yields value 0 with tangent
// k*d1*0^(k-1), which is 0 for k>1 and d1 for k=1; k<1 would require
// dividing by zero in the derivative and fails with ErrDivideByZero.
func (d Dual) PowReal(k float64) (Dual, error) {
	if d.Real == 0 {
		if k < 1 {
			return Dual{}, fmt.Errorf("%w: 0^%v would divide by zero in the derivative", aderr.ErrDivideByZero, k)
		}
		return Dual{Tangent: k * d.Tangent * math.Pow(0, k-1)}, nil
	}
	if d.Real < 0 && k != math.Trunc(k) {
		return Dual{}, fmt.Errorf("%w: negative base %v raised to non-integer power %v", aderr.ErrDomain, d.Real, k)
	}
	return Dual{
		Real:    math.Pow(d.Real, k),
		Tangent: k * d.Tangent * math.Pow(d.Real, k-1),
	}, nil
}

// PowReal returns k^op, the base-k exponential of op, for a bare real base
// k: the "real-dual" row of §4.1, tangent = d2*ln(k)*k^r2.
//
// This is algebraically Constant(k).Pow(op): promoting k to a zero-tangent
// constant and reusing the general power rule produces the identical
// formula, so this helper exists only to give the real-base case its own
// documented entry point in the public surface (§6).
func PowReal(k float64, op Operand) (Dual, error) {
	return Constant(k).Pow(op)
}

// Equal compares both components within one epsilon of machine precision,
// using gonum's absolute-tolerance comparison.
func (d Dual) Equal(other Dual) bool {
	return floats.EqualWithinAbs(d.Real, other.Real, epsilon) && floats.EqualWithinAbs(d.Tangent, other.Tangent, epsilon)
}

// NotEqual is the negation of Equal.
func (d Dual) NotEqual(other Dual) bool {
	return !d.Equal(other)
}

// Less reports whether both components of d are strictly less than the
// corresponding components of other.
//
// The ordering on duals implied by this and the other relational methods
// is a partial order, not a total order: Less(x,y), Less(y,x), and
// Equal(x,y) can all be false for the same pair (e.g. x=(1,2), y=(2,1)).
// Consumers must not rely on these for sorting a slice of Dual values into
// a single consistent order; they exist for tests and simple threshold
// checks only.
func (d Dual) Less(other Dual) bool {
	return d.Real < other.Real && d.Tangent < other.Tangent
}

// LessOrEqual reports whether both components of d are at most the
// corresponding components of other. See Less for the partial-order caveat.
func (d Dual) LessOrEqual(other Dual) bool {
	return d.Real <= other.Real && d.Tangent <= other.Tangent
}

// Greater reports whether both components of d are strictly greater than
// the corresponding components of other. See Less for the partial-order
// caveat.
func (d Dual) Greater(other Dual) bool {
	return d.Real > other.Real && d.Tangent > other.Tangent
}

// GreaterOrEqual reports whether both components of d are at least the
// corresponding components of other. See Less for the partial-order
// caveat.
func (d Dual) GreaterOrEqual(other Dual) bool {
	return d.Real >= other.Real && d.Tangent >= other.Tangent
}
