package driver

import (
	"fmt"

	"autodiff/aderr"
	"autodiff/forward"

	"gonum.org/v1/gonum/mat"
)

// ScalarFunc is an R->R user function built from forward.Dual arithmetic.
type ScalarFunc func(forward.Dual) forward.Dual

// Kind identifies ScalarFunc as ScalarToScalar.
func (ScalarFunc) Kind() Kind { return ScalarToScalar }

// ScalarVectorFunc is an R->R^m user function.
type ScalarVectorFunc func(forward.Dual) []forward.Dual

// Kind identifies ScalarVectorFunc as ScalarToVector.
func (ScalarVectorFunc) Kind() Kind { return ScalarToVector }

// VectorScalarFunc is an R^n->R user function. The driver calls it with at
// most one position carrying a nonzero tangent per evaluation; f itself
// need not know which.
type VectorScalarFunc func([]forward.Dual) forward.Dual

// Kind identifies VectorScalarFunc as VectorToScalar.
func (VectorScalarFunc) Kind() Kind { return VectorToScalar }

// VectorVectorFunc is an R^n->R^m user function.
type VectorVectorFunc func([]forward.Dual) []forward.Dual

// Kind identifies VectorVectorFunc as VectorToVector.
func (VectorVectorFunc) Kind() Kind { return VectorToVector }

// ForwardScalar evaluates f at x and returns (f(x), f'(x)).
func ForwardScalar(f ScalarFunc, x float64) (value, derivative float64) {
	y := f(forward.Variable(x))
	return y.Real, y.Tangent
}

// ForwardScalarVector evaluates f at x and returns the value vector and the
// tangent vector (the m x 1 Jacobian column, unassembled).
func ForwardScalarVector(f ScalarVectorFunc, x float64) (values, tangents []float64) {
	ys := f(forward.Variable(x))
	values = make([]float64, len(ys))
	tangents = make([]float64, len(ys))
	for i, y := range ys {
		values[i] = y.Real
		tangents[i] = y.Tangent
	}
	return values, tangents
}

// constantsAt returns x promoted entirely to zero-tangent constants, except
// position i (when i >= 0) which carries tangent 1.
func constantsAt(x []float64, i int) []forward.Dual {
	xs := make([]forward.Dual, len(x))
	for k, xi := range x {
		if k == i {
			xs[k] = forward.Variable(xi)
		} else {
			xs[k] = forward.Constant(xi)
		}
	}
	return xs
}

// Directional evaluates the directional derivative <grad f(x), p> by
// re-running f once per nonzero seed component, each time with exactly one
// input position carrying tangent 1. Fails with ErrShape if p and x differ
// in length.
func Directional(f VectorScalarFunc, x, p []float64) (value, directional float64, err error) {
	if len(p) != len(x) {
		return 0, 0, fmt.Errorf("%w: len(p)=%d != len(x)=%d", aderr.ErrShape, len(p), len(x))
	}
	value = f(constantsAt(x, -1)).Real
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		directional += pi * f(constantsAt(x, i)).Tangent
	}
	return value, directional, nil
}

// Gradient evaluates the full gradient of f at x: one re-run of f per
// input position, each isolating that position's partial derivative.
func Gradient(f VectorScalarFunc, x []float64) (value float64, gradient []float64) {
	value = f(constantsAt(x, -1)).Real
	gradient = make([]float64, len(x))
	for i := range x {
		gradient[i] = f(constantsAt(x, i)).Tangent
	}
	return value, gradient
}

// Jacobian builds the m x n Jacobian of f at x by the column law: the i-th
// column is the tangent vector of f evaluated with tangent 1 in position i
// alone (equivalently, ForwardMode with seed e_i). The primal value vector
// is read off the first evaluation.
func Jacobian(f VectorVectorFunc, x []float64) (value []float64, jacobian *mat.Dense) {
	n := len(x)
	var m int
	data := make([][]float64, n)
	for i := 0; i < n; i++ {
		ys := f(constantsAt(x, i))
		if i == 0 {
			m = len(ys)
			value = make([]float64, m)
			for j, y := range ys {
				value[j] = y.Real
			}
		}
		col := make([]float64, m)
		for j, y := range ys {
			col[j] = y.Tangent
		}
		data[i] = col
	}

	jacobian = mat.NewDense(m, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			jacobian.Set(j, i, data[i][j])
		}
	}
	return value, jacobian
}

// JacobianSeeded evaluates (f(x), J*p) without assembling the full
// Jacobian: only the columns with a nonzero seed component are computed.
func JacobianSeeded(f VectorVectorFunc, x, p []float64) (value, jp []float64, err error) {
	if len(p) != len(x) {
		return nil, nil, fmt.Errorf("%w: len(p)=%d != len(x)=%d", aderr.ErrShape, len(p), len(x))
	}
	primal := f(constantsAt(x, -1))
	value = make([]float64, len(primal))
	for j, y := range primal {
		value[j] = y.Real
	}

	jp = make([]float64, len(primal))
	for i, pi := range p {
		if pi == 0 {
			continue
		}
		ys := f(constantsAt(x, i))
		for j, y := range ys {
			jp[j] += pi * y.Tangent
		}
	}
	return value, jp, nil
}

// ForwardMode dispatches f's Kind onto the typed entry points above,
// reproducing the single-entrypoint legacy signature
// ForwardMode(f, x, p, gradient, jacobian):
//
//   - ScalarFunc (R->R): len(x) must be 1. With gradient or jacobian,
//     Result.Tangent alone carries the derivative; otherwise both Value
//     and Tangent are populated.
//   - ScalarVectorFunc (R->R^m): with jacobian, Result.Jacobian is the
//     m x 1 column of tangents; otherwise Result.Value and Result.Tangent
//     are the value and tangent vectors.
//   - VectorScalarFunc (R^n->R): requires p or gradient=true. With
//     gradient (which wins the tie-break over jacobian when both are set
//     against a scalar output), Result.Gradient is the full gradient. With
//     only p, Result.Tangent is the directional derivative <grad f, p>.
//   - VectorVectorFunc (R^n->R^m): with jacobian, Result.Jacobian is the
//     full m x n matrix. With only p, Result.Tangent is J*p.
//
// All shape mismatches (len(p) != len(x), gradient=true against a vector
// output, or neither p nor gradient/jacobian supplied where one is
// required) fail with ErrShape.
func ForwardMode(f Function, x, p []float64, gradient, jacobian bool) (Result, error) {
	switch fn := f.(type) {
	case ScalarFunc:
		if len(x) != 1 {
			return Result{}, fmt.Errorf("%w: ScalarFunc requires len(x)=1, got %d", aderr.ErrShape, len(x))
		}
		value, d := ForwardScalar(fn, x[0])
		if gradient || jacobian {
			return Result{Tangent: []float64{d}}, nil
		}
		return Result{Value: []float64{value}, Tangent: []float64{d}}, nil

	case ScalarVectorFunc:
		if len(x) != 1 {
			return Result{}, fmt.Errorf("%w: ScalarVectorFunc requires len(x)=1, got %d", aderr.ErrShape, len(x))
		}
		if gradient {
			return Result{}, fmt.Errorf("%w: gradient=true requires scalar output", aderr.ErrShape)
		}
		values, tangents := ForwardScalarVector(fn, x[0])
		if jacobian {
			return Result{Value: values, Jacobian: mat.NewDense(len(values), 1, append([]float64(nil), tangents...))}, nil
		}
		return Result{Value: values, Tangent: tangents}, nil

	case VectorScalarFunc:
		if gradient {
			value, grad := Gradient(fn, x)
			return Result{Value: []float64{value}, Gradient: grad}, nil
		}
		if jacobian {
			// Tie-break (§4.5.1): both gradient and jacobian true with a
			// scalar output returns the gradient; jacobian alone against a
			// scalar output is the same request.
			value, grad := Gradient(fn, x)
			return Result{Value: []float64{value}, Gradient: grad}, nil
		}
		if p == nil {
			return Result{}, fmt.Errorf("%w: VectorScalarFunc requires p or gradient=true", aderr.ErrShape)
		}
		value, d, err := Directional(fn, x, p)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: []float64{value}, Tangent: []float64{d}}, nil

	case VectorVectorFunc:
		if gradient {
			return Result{}, fmt.Errorf("%w: gradient=true requires scalar output", aderr.ErrShape)
		}
		if jacobian {
			value, j := Jacobian(fn, x)
			return Result{Value: value, Jacobian: j}, nil
		}
		if p == nil {
			return Result{}, fmt.Errorf("%w: VectorVectorFunc requires p or jacobian=true", aderr.ErrShape)
		}
		value, jp, err := JacobianSeeded(fn, x, p)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: value, Tangent: jp}, nil

	default:
		return Result{}, fmt.Errorf("%w: unsupported function kind %T", aderr.ErrType, f)
	}
}
