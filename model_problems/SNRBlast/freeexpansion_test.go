package SNRBlast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zcl-maker/snrblast/InputParameters"
)

func freeExpansionParams() (bp *InputParameters.BlastParameters) {
	bp = InputParameters.NewBlastParameters()
	bp.Profile = "freeExpansion"
	bp.EjectaEnergy = 1.0
	bp.EjectaMass = 1.0
	bp.EjectaRadius = 1.0
	bp.HydrogenDensity = 1.0
	bp.MeanMolecularWeight = 1.0
	bp.CoreMassFraction = 0.5
	bp.DensityExponent = 2.0
	bp.Bmag = 0.
	bp.Temperature = 1.0e4
	return
}

func TestFreeExpansionDerivedConstants(t *testing.T) {
	bl, err := NewBlast(freeExpansionParams())
	assert.NoError(t, err)
	var (
		n  = 2.0
		wc = 0.5
	)
	assert.True(t, near(bl.RCore, wc*bl.EjectaRadius))
	// f(n, w_c) = (3/4pi)(1 - n/3)/(1 - (n/3) w_c^(3-n))
	fWant := 3. / (4. * math.Pi) * (1. - n/3.) / (1. - n/3.*math.Pow(wc, 3.-n))
	assert.True(t, near(bl.Fnorm, fWant))
	assert.True(t, bl.Alpha > 0)
	assert.True(t, near(bl.Vej, math.Sqrt(bl.EjectaEnergy/(0.5*bl.EjectaMass*bl.Alpha))))
	assert.True(t, near(bl.Time0, bl.EjectaRadius/bl.Vej))
	assert.True(t, near(bl.RhoCh, 1.0))
	assert.True(t, near(bl.RCh, 1.0))
}

func TestFreeExpansionMassNormalization(t *testing.T) {
	// The density normalization f(n, w_c) is built so that the profile
	// integrates to the total ejecta mass over the ejecta sphere
	bl, err := NewBlast(freeExpansionParams())
	assert.NoError(t, err)
	var (
		N    = 200000
		dr   = bl.EjectaRadius / float64(N)
		mass float64
	)
	for i := 0; i < N; i++ {
		r := (float64(i) + 0.5) * dr
		s := bl.Init(r, 0, 0)
		mass += 4. * math.Pi * s.Rho * r * r * dr
	}
	assert.True(t, near(mass, bl.EjectaMass, 1.e-4))
}

func TestFreeExpansionZones(t *testing.T) {
	bl, err := NewBlast(freeExpansionParams())
	assert.NoError(t, err)
	// Core density is uniform at rho_ch * f * w_c^-n
	wantCore := bl.RhoCh * bl.Fnorm * math.Pow(0.5, -2.)
	s1 := bl.Init(0.1, 0, 0)
	s2 := bl.Init(0, 0.3, 0)
	assert.True(t, near(s1.Rho, wantCore))
	assert.True(t, near(s2.Rho, wantCore))
	// Envelope follows (r/R_ej)^-n, continuous at the core boundary
	s3 := bl.Init(0, 0, 0.75)
	assert.True(t, near(s3.Rho, bl.RhoCh*bl.Fnorm*math.Pow(0.75/bl.EjectaRadius, -2.)))
	eps := 1.e-9
	inside := bl.Init(bl.RCore-eps, 0, 0)
	outside := bl.Init(bl.RCore+eps, 0, 0)
	assert.True(t, near(inside.Rho, outside.Rho, 1.e-6))
	// Origin falls through to ambient
	s0 := bl.Init(0, 0, 0)
	assert.Equal(t, bl.NISM, s0.Rho)
}

func TestFreeExpansionVelocityCorrection(t *testing.T) {
	bl, err := NewBlast(freeExpansionParams())
	assert.NoError(t, err)
	var (
		n = bl.DensityExponent
	)
	for _, r := range []float64{0.1, 0.3, 0.8} {
		q := bl.etaCoeff * math.Pow(r/bl.RCh, 1.5)
		etaWant := (1. + (n-3.)/3.*q) / (1. + n/3.*q)
		s := bl.Init(r, 0, 0)
		assert.True(t, near(s.V[0], r/bl.Time0*etaWant, 1.e-12))
		assert.Equal(t, 0., s.V[1])
		assert.Equal(t, 0., s.V[2])
	}
	// The correction is sub-unity inside the remnant for n < 3
	assert.True(t, bl.velocityCorrection(0.5) < 1.0)
	assert.True(t, bl.velocityCorrection(0.5) > 0.0)
}
