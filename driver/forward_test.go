package driver

import (
	"testing"

	"autodiff/aderr"
	"autodiff/forward"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x forward.Dual) forward.Dual {
	y, err := x.Pow(forward.Constant(2))
	if err != nil {
		panic(err)
	}
	return y
}

func TestForwardModeScalarScalar(t *testing.T) {
	// Scenario 1 of §8: x^2 at x=3 -> value 9, derivative 6.
	res, err := ForwardMode(ScalarFunc(square), []float64{3}, nil, false, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{9}, res.Value)
	assert.InDelta(t, 6, res.Tangent[0], 1e-12)
}

func TestForwardModeScalarScalarGradientOnlyReturnsDerivative(t *testing.T) {
	res, err := ForwardMode(ScalarFunc(square), []float64{3}, nil, true, false)
	require.NoError(t, err)
	assert.Nil(t, res.Value)
	assert.InDelta(t, 6, res.Tangent[0], 1e-12)
}

func TestForwardModeScalarScalarShapeError(t *testing.T) {
	_, err := ForwardMode(ScalarFunc(square), []float64{1, 2}, nil, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrShape)
}

func polyVec(xs []forward.Dual) forward.Dual {
	x0, x1 := xs[0], xs[1]
	x0sq, _ := x0.Pow(forward.Constant(2))
	x1cb, _ := x1.Pow(forward.Constant(3))
	return x0sq.Add(x1cb).Add(x0.Mul(x1).Mul(forward.Real(5)))
}

func TestForwardModeVectorScalarGradient(t *testing.T) {
	// Scenario 2 of §8: x0^2+x1^3+5x0x1 at (7,11).
	res, err := ForwardMode(VectorScalarFunc(polyVec), []float64{7, 11}, nil, true, false)
	require.NoError(t, err)
	assert.InDelta(t, 1765, res.Value[0], 1e-9)
	assert.InDelta(t, 2*7+5*11, res.Gradient[0], 1e-9)
	assert.InDelta(t, 3*121+5*7, res.Gradient[1], 1e-9)
}

func TestForwardModeVectorScalarDirectional(t *testing.T) {
	res, err := ForwardMode(VectorScalarFunc(polyVec), []float64{7, 11}, []float64{1, 0}, false, false)
	require.NoError(t, err)
	assert.InDelta(t, 2*7+5*11, res.Tangent[0], 1e-9)
}

func TestForwardModeVectorScalarRequiresPOrGradient(t *testing.T) {
	_, err := ForwardMode(VectorScalarFunc(polyVec), []float64{7, 11}, nil, false, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrShape)
}

func TestForwardModeGradientTieBreak(t *testing.T) {
	res, err := ForwardMode(VectorScalarFunc(polyVec), []float64{7, 11}, nil, true, true)
	require.NoError(t, err)
	assert.NotNil(t, res.Gradient)
}

func vecVec(xs []forward.Dual) []forward.Dual {
	x0, x1 := xs[0], xs[1]
	x0to7, _ := x0.Pow(forward.Constant(7))
	x1to11, _ := x1.Pow(forward.Constant(11))
	f0 := func() forward.Dual {
		x0sq, _ := x0.Pow(forward.Constant(2))
		x1cb, _ := x1.Pow(forward.Constant(3))
		return x0sq.Add(x1cb).Add(x0.Mul(x1).Mul(forward.Real(5)))
	}()
	f1 := x0to7.Add(x1to11).Add(x0.Mul(x1).Mul(forward.Real(13)))
	return []forward.Dual{f0, f1}
}

func TestForwardModeVectorVectorJacobianColumn(t *testing.T) {
	// Scenario 6 of §8: seed (1,0) selects the Jacobian's column 0.
	res, err := ForwardMode(VectorVectorFunc(vecVec), []float64{17, 19}, []float64{1, 0}, false, false)
	require.NoError(t, err)
	wantCol0Row0 := 2*17 + 5*19
	assert.InDelta(t, wantCol0Row0, res.Tangent[0], 1e-9)
}

func TestForwardModeVectorVectorGradientRejected(t *testing.T) {
	_, err := ForwardMode(VectorVectorFunc(vecVec), []float64{1, 2}, nil, true, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrShape)
}

func scalarVecFn(x forward.Dual) []forward.Dual {
	return []forward.Dual{x, x.Mul(x)}
}

func TestForwardModeScalarVectorJacobian(t *testing.T) {
	res, err := ForwardMode(ScalarVectorFunc(scalarVecFn), []float64{4}, nil, false, true)
	require.NoError(t, err)
	require.NotNil(t, res.Jacobian)
	rows, cols := res.Jacobian.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
	assert.InDelta(t, 1, res.Jacobian.At(0, 0), 1e-12)
	assert.InDelta(t, 8, res.Jacobian.At(1, 0), 1e-12)
}

func TestDirectionalLinearity(t *testing.T) {
	// Property 2: linearity of ForwardMode over seeds.
	x := []float64{7, 11}
	p := []float64{1, 0}
	q := []float64{0, 1}
	alpha, beta := 2.0, 3.0

	_, dp, err := Directional(polyVec, x, p)
	require.NoError(t, err)
	_, dq, err := Directional(polyVec, x, q)
	require.NoError(t, err)

	combined := make([]float64, len(p))
	for i := range p {
		combined[i] = alpha*p[i] + beta*q[i]
	}
	_, dCombined, err := Directional(polyVec, x, combined)
	require.NoError(t, err)

	assert.InDelta(t, alpha*dp+beta*dq, dCombined, 1e-9)
}
