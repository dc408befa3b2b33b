// Package graph implements reverse-mode automatic differentiation: a
// dynamically built computational graph (DAG) of operation nodes, each
// annotated with the local partial derivatives of its immediate operands,
// plus the adjoint-accumulation reverse pass that turns that graph into a
// gradient.
//
// A Node's identity is its pointer: two nodes with equal value and parents
// are still distinct, and the adjoint map built by Backward is keyed on
// that pointer identity, never on structural equality. Nodes are never
// mutated after construction; a leaf has no parents, and every arithmetic
// or elementary operation allocates a fresh node pointing at its operands
// with the local partials evaluated at the operands' primal values.
package graph

import (
	"fmt"
	"math"

	"autodiff/aderr"
)

// Edge is one (parent, local-partial) pair recorded on a Node: the local
// Jacobian of the node with respect to one immediate operand, evaluated at
// that operand's primal value when the node was constructed.
type Edge struct {
	Parent *Node
	Local  float64
}

// Node is one record of the reverse-mode tape: a primal value plus the
// ordered edges to the operands it was built from. A leaf node (created by
// ReverseMode for each scalar input, or internally to promote a bare real)
// has no parents.
type Node struct {
	Value   float64
	Parents []Edge
}

// Leaf creates a leaf node: a graph input with no parents.
func Leaf(value float64) *Node {
	return &Node{Value: value}
}

// Operand is anything that can appear as the right-hand operand of a Node
// arithmetic method: another *Node, or a bare Real promoted to a
// zero-parent constant leaf.
type Operand interface {
	node() *Node
}

func (n *Node) node() *Node { return n }

// Real promotes a plain float64 to a constant leaf node wherever an
// Operand is expected, matching "real k op a" of §4.3: k wrapped as
// Node(k, []).
type Real float64

func (r Real) node() *Node { return Leaf(float64(r)) }

// String renders a node as "Reverse-Mode AD: (f(x)=<v>, J=<parents>)".
func (n *Node) String() string {
	return fmt.Sprintf("Reverse-Mode AD: (f(x)=%v, J=%v)", n.Value, n.Parents)
}

// Add builds a+b: value a.v+b.v, parents [(a,1),(b,1)].
func (n *Node) Add(op Operand) *Node {
	o := op.node()
	return &Node{
		Value:   n.Value + o.Value,
		Parents: []Edge{{n, 1}, {o, 1}},
	}
}

// Sub builds a-b: value a.v-b.v, parents [(a,1),(b,-1)].
func (n *Node) Sub(op Operand) *Node {
	o := op.node()
	return &Node{
		Value:   n.Value - o.Value,
		Parents: []Edge{{n, 1}, {o, -1}},
	}
}

// Neg builds -a: value -a.v, parent [(a,-1)].
func (n *Node) Neg() *Node {
	return &Node{Value: -n.Value, Parents: []Edge{{n, -1}}}
}

// Mul builds a*b: value a.v*b.v, parents [(a,b.v),(b,a.v)].
func (n *Node) Mul(op Operand) *Node {
	o := op.node()
	return &Node{
		Value:   n.Value * o.Value,
		Parents: []Edge{{n, o.Value}, {o, n.Value}},
	}
}

// Div builds a/b: value a.v/b.v, parents [(a,1/b.v),(b,-a.v/b.v^2)]. Fails
// with ErrDivideByZero when b's primal value is within one epsilon of
// zero.
func (n *Node) Div(op Operand) (*Node, error) {
	o := op.node()
	if math.Abs(o.Value) < epsilon {
		return nil, fmt.Errorf("%w: reverse-mode division by %v", aderr.ErrDivideByZero, o.Value)
	}
	return &Node{
		Value: n.Value / o.Value,
		Parents: []Edge{
			{n, 1 / o.Value},
			{o, -n.Value / (o.Value * o.Value)},
		},
	}, nil
}

// epsilon is the machine epsilon for float64, matching forward.epsilon.
const epsilon = 2.220446049250313e-16

// Pow builds a^b: value a.v^b.v, parent [(a, b.v*a.v^(b.v-1))].
//
// Per §4.3, the generic node-node power rule only ever produces a partial
// with respect to the base: no edge is added for the exponent operand,
// even when it is itself a non-constant node. The distinct, corrected
// real-base rule for k^a (a real base raised to a node exponent) is
// RealPow.
func (n *Node) Pow(op Operand) (*Node, error) {
	o := op.node()
	if n.Value == 0 {
		if o.Value < 1 {
			return nil, fmt.Errorf("%w: 0^%v would divide by zero in the derivative", aderr.ErrDivideByZero, o.Value)
		}
		local := o.Value * math.Pow(n.Value, o.Value-1)
		return &Node{Value: 0, Parents: []Edge{{n, local}}}, nil
	}
	if n.Value < 0 && o.Value != math.Trunc(o.Value) {
		return nil, fmt.Errorf("%w: negative base %v raised to non-integer power %v", aderr.ErrDomain, n.Value, o.Value)
	}
	local := o.Value * math.Pow(n.Value, o.Value-1)
	return &Node{Value: math.Pow(n.Value, o.Value), Parents: []Edge{{n, local}}}, nil
}

// RealPow builds k^a for a real base k and node exponent a: value
// k^a.v, parent [(a, ln(k)*k^a.v)].
//
// §9 Open Question 1 flags the naive port of this rule as a bug: an
// earlier implementation reused the base-power partial (a.v*k^(a.v-1)),
// which differentiates as though the variable were in the base rather
// than the exponent. The correct partial for an exponential ln(k)*k^a.v is
// used here. k must be strictly positive (k<=0 makes ln(k) undefined).
func RealPow(k float64, exponent *Node) (*Node, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: real base %v raised to a node power requires a positive base", aderr.ErrDomain, k)
	}
	value := math.Pow(k, exponent.Value)
	local := math.Log(k) * value
	return &Node{Value: value, Parents: []Edge{{exponent, local}}}, nil
}
