package forward

import (
	"testing"

	"autodiff/aderr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDualArithmeticIdentities(t *testing.T) {
	a := New(2, 3)
	b := New(5, 7)

	assert.Equal(t, New(7, 10), a.Add(b))
	assert.Equal(t, New(-3, -4), a.Sub(b))
	assert.Equal(t, a, a.Neg().Neg())
	assert.Equal(t, New(10, 2*7+3*5), a.Mul(b))
}

func TestDualAddRealPromotion(t *testing.T) {
	a := Variable(4)
	got := a.Add(Real(10))
	assert.Equal(t, New(14, 1), got)
}

func TestDualDiv(t *testing.T) {
	a := New(10, 1)
	b := New(2, 0)
	got, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, New(5, 0.5), got)
}

func TestDualDivByZero(t *testing.T) {
	a := Variable(1)
	_, err := a.Div(Real(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDivideByZero)
}

func TestDualFloorDiv(t *testing.T) {
	a := New(7, 1)
	b := New(2, 0)
	got, err := a.FloorDiv(b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Real)
}

func TestDualPowDualDual(t *testing.T) {
	// x^2 at x=3: value 9, tangent 2*3^1*1 = 6 (scenario 1 of §8).
	x := Variable(3)
	got, err := x.Pow(Constant(2))
	require.NoError(t, err)
	assert.InDelta(t, 9, got.Real, 1e-12)
	assert.InDelta(t, 6, got.Tangent, 1e-12)
}

func TestDualPowRealMatchesGeneralPow(t *testing.T) {
	x := Variable(3)
	viaReal, err := x.PowReal(2)
	require.NoError(t, err)
	viaGeneral, err := x.Pow(Constant(2))
	require.NoError(t, err)
	assert.Equal(t, viaGeneral, viaReal)
}

func TestDualPowZeroBaseEdgeCases(t *testing.T) {
	// Dual(0,0)^Dual(0.5,3) == Dual(0,0)
	got, err := New(0, 0).Pow(New(0.5, 3))
	require.NoError(t, err)
	assert.Equal(t, New(0, 0), got)

	// Dual(0,0)^Dual(-0.5,0) fails with a domain error.
	_, err = New(0, 0).Pow(New(-0.5, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestDualPowRealZeroBase(t *testing.T) {
	got, err := New(0, 1).PowReal(2)
	require.NoError(t, err)
	assert.Equal(t, New(0, 0), got)

	_, err = New(0, 1).PowReal(0.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDivideByZero)
}

func TestPowRealBaseDualExponent(t *testing.T) {
	// 2^(x) at x=3: derivative ln(2)*2^3.
	got, err := PowReal(2, Variable(3))
	require.NoError(t, err)
	assert.InDelta(t, 8, got.Real, 1e-12)
	assert.InDelta(t, 8*0.6931471805599453, got.Tangent, 1e-9)
}

func TestDualEqualUsesEpsilonTolerance(t *testing.T) {
	a := New(1, 1)
	b := New(1+epsilon/2, 1-epsilon/2)
	assert.True(t, a.Equal(b))
	assert.False(t, a.NotEqual(b))
}

func TestDualString(t *testing.T) {
	d := New(1, 2)
	assert.Equal(t, "Dual Number (real=1, dual=2)", d.String())
}

func TestDualPartialOrder(t *testing.T) {
	// (1,2) and (2,1) are incomparable under the componentwise order.
	x := New(1, 2)
	y := New(2, 1)
	assert.False(t, x.Less(y))
	assert.False(t, y.Less(x))
	assert.False(t, x.Equal(y))
}
