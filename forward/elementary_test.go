package forward

import (
	"math"
	"testing"

	"autodiff/aderr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimalPassThroughIsBitIdentical(t *testing.T) {
	// Property 4: a primitive applied to a real k equals the underlying
	// library's φ(k) exactly.
	k := 0.37
	assert.Equal(t, math.Sin(k), Sin(Real(k)).Real)
	assert.Equal(t, math.Exp(k), Exp(Real(k)).Real)
	assert.Equal(t, math.Cosh(k), Cosh(Real(k)).Real)
}

func TestTanDomainGuard(t *testing.T) {
	_, err := Tan(Variable(math.Pi / 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestLnDomainGuard(t *testing.T) {
	_, err := Ln(Variable(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestLogBaseDomainGuard(t *testing.T) {
	_, err := Log(Variable(4), -2)
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestAsinDomainGuard(t *testing.T) {
	_, err := Asin(Variable(6))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestAcosDomainGuard(t *testing.T) {
	_, err := Acos(Variable(-6))
	require.Error(t, err)
	assert.ErrorIs(t, err, aderr.ErrDomain)
}

func TestSigmoidDerivative(t *testing.T) {
	x := Variable(0)
	got := Sigmoid(x)
	assert.InDelta(t, 0.5, got.Real, 1e-12)
	assert.InDelta(t, 0.25, got.Tangent, 1e-12)
}

func TestChainRuleExpSin(t *testing.T) {
	// f(g(x)) for f=sin, g=exp at x=4: derivative f'(g(x))*g'(x).
	x := Variable(4)
	g := Exp(x)
	f := Sin(g)
	want := math.Cos(math.Exp(4)) * math.Exp(4)
	assert.InDelta(t, want, f.Tangent, 1e-9)
}
