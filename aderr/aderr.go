// Package aderr defines the error taxonomy shared by the forward, graph,
// and driver packages. No error codes cross the package boundary; callers
// use errors.Is against these sentinels to classify a failure.
package aderr

import "errors"

var (
	// ErrType marks a value of an unsupported type: ForwardMode returns it
	// for a Function that is not one of the four typed function shapes.
	ErrType = errors.New("autodiff: type error")

	// ErrDomain marks a mathematical domain violation: log of a
	// non-positive number, inverse trig outside [-1,1], tan at a zero of
	// cosine, or an unsupported 0^k power.
	ErrDomain = errors.New("autodiff: domain error")

	// ErrDivideByZero marks a denominator (or a power whose derivative would
	// divide by zero) within one epsilon of zero.
	ErrDivideByZero = errors.New("autodiff: divide by zero")

	// ErrShape marks a driver argument whose shape is inconsistent, such as
	// len(p) != len(x) or gradient=true requested against a vector output.
	ErrShape = errors.New("autodiff: shape error")
)
