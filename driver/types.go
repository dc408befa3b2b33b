// Package driver implements the orchestration layer of the automatic
// differentiation engine: ForwardMode and ReverseMode, the entry points
// that dispatch on input/output dimension, handle seed vectors, and
// assemble gradients and Jacobians from the forward and graph packages.
//
// Per the design notes of the governing specification, runtime shape
// introspection is replaced with strongly typed entry points
// (ForwardScalar, Gradient, Directional, Jacobian, JacobianSeeded) with
// compile-time-known input/output shapes; ForwardMode is a thin shim that
// dispatches on a Function's Kind tag onto those entry points, for callers
// that want the single legacy-shaped call.
package driver

import "gonum.org/v1/gonum/mat"

// Kind tags which of the four dimension shapes a Function implements.
type Kind int

const (
	// ScalarToScalar is an R->R function.
	ScalarToScalar Kind = iota
	// ScalarToVector is an R->R^m function.
	ScalarToVector
	// VectorToScalar is an R^n->R function.
	VectorToScalar
	// VectorToVector is an R^n->R^m function.
	VectorToVector
)

// Function is implemented by each of the four typed function shapes
// ForwardMode accepts, so it can dispatch on Kind() without a runtime type
// switch over arbitrary user signatures.
type Function interface {
	Kind() Kind
}

// Result is the value returned by the ForwardMode shim. Only the fields
// relevant to the requested mode are populated; see ForwardMode's doc
// comment for which combination of flags and input/output shape populates
// which field.
type Result struct {
	// Value is the primal output: length 1 for a scalar-out function,
	// length m for a vector-out function.
	Value []float64

	// Tangent is the directional derivative (or, for a plain scalar-out
	// evaluation, the ordinary derivative) paired with Value when neither
	// Gradient nor Jacobian was requested. For an R->R function with
	// gradient or jacobian requested, Tangent alone carries the derivative
	// and Value is nil.
	Tangent []float64

	// Gradient is the full gradient of a vector-in, scalar-out function,
	// populated when gradient=true was requested.
	Gradient []float64

	// Jacobian is the m x n dense Jacobian, populated when jacobian=true
	// was requested against a vector-out function.
	Jacobian *mat.Dense
}
