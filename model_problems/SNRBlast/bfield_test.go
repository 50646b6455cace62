package SNRBlast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMagnitudeAndOrientation(t *testing.T) {
	bp := testParams()
	bp.Bmag = 0.02
	bp.Theta = 40.
	bp.Phi = 110.
	bl, err := NewBlast(bp)
	assert.NoError(t, err)
	// The field is uniform with magnitude Bmag everywhere
	for _, x := range [][3]float64{{0, 0, 0}, {0.1, 0.2, 0.3}, {5, -3, 2}} {
		s := bl.Init(x[0], x[1], x[2])
		assert.True(t, near(bmag(s), 0.02, 1.e-12))
	}

	// Theta = 0 aligns the field with the z axis
	bp = testParams()
	bp.Bmag = 1.5
	bp.Theta = 0.
	bp.Phi = 77.
	bl, err = NewBlast(bp)
	assert.NoError(t, err)
	s := bl.Init(1, 1, 1)
	assert.True(t, nearVec(s.B[:], []float64{0, 0, 1.5}, 1.e-12))
}

func TestCartesianVectorPotentialCurl(t *testing.T) {
	bp := testParams()
	bp.Bmag = 0.7
	bp.Theta = 35.
	bp.Phi = 20.
	bl, err := NewBlast(bp)
	assert.NoError(t, err)

	// Central difference curl of A must recover the uniform B
	var (
		h          = 1.e-4
		x1, x2, x3 = 0.3, -0.2, 0.15
	)
	A := func(x1, x2, x3 float64) [3]float64 {
		return bl.Init(x1, x2, x3).A
	}
	curl := [3]float64{
		(A(x1, x2+h, x3)[2]-A(x1, x2-h, x3)[2])/(2*h) - (A(x1, x2, x3+h)[1]-A(x1, x2, x3-h)[1])/(2*h),
		(A(x1, x2, x3+h)[0]-A(x1, x2, x3-h)[0])/(2*h) - (A(x1+h, x2, x3)[2]-A(x1-h, x2, x3)[2])/(2*h),
		(A(x1+h, x2, x3)[1]-A(x1-h, x2, x3)[1])/(2*h) - (A(x1, x2+h, x3)[0]-A(x1, x2-h, x3)[0])/(2*h),
	}
	s := bl.Init(x1, x2, x3)
	assert.True(t, nearVec(curl[:], s.B[:], 1.e-9))
}

func TestCylindricalVectorPotentialCurl(t *testing.T) {
	bp := testParams()
	bp.Geometry = "cylindrical"
	bp.Bmag = 0.4
	bp.Theta = 55.
	bp.Phi = 90. // puts the full in-plane component on B2
	bl, err := NewBlast(bp)
	assert.NoError(t, err)

	// In cylindrical geometry A3 is the toroidal component A_phi and the
	// axial field is B2 = (1/r) d(r A_phi)/dr
	var (
		h = 1.e-5
		r = 0.35
	)
	aPhi := func(r float64) float64 {
		return bl.Init(r, 0.1, 0).A[2]
	}
	bAxial := ((r+h)*aPhi(r+h) - (r-h)*aPhi(r-h)) / (2 * h * r)
	s := bl.Init(r, 0.1, 0)
	assert.True(t, near(bAxial, s.B[1], 1.e-9))
	assert.Equal(t, 0., s.A[0])
	assert.Equal(t, 0., s.A[1])
}

func TestBackgroundFieldSplitting(t *testing.T) {
	bp := testParams()
	bp.BackgroundField = true
	bp.Bmag = 0.9
	bp.Theta = 25.
	bp.Phi = 130.
	bl, err := NewBlast(bp)
	assert.NoError(t, err)

	// With splitting enabled the per cell state carries no field at all
	for _, x := range [][3]float64{{0, 0, 0}, {0.1, 0.1, 0.1}, {3, 0, -1}} {
		s := bl.Init(x[0], x[1], x[2])
		assert.True(t, nearVec(s.B[:], []float64{0, 0, 0}, 1.e-15))
		assert.True(t, nearVec(s.A[:], []float64{0, 0, 0}, 1.e-15))
	}

	// The static provider carries the uniform field instead
	B0 := bl.BackgroundField(0.2, 0.4, 0.6)
	assert.True(t, near(math.Sqrt(B0[0]*B0[0]+B0[1]*B0[1]+B0[2]*B0[2]), 0.9, 1.e-12))
	theta := 25. * math.Pi / 180.
	phi := 130. * math.Pi / 180.
	want := []float64{
		0.9 * math.Sin(theta) * math.Cos(phi),
		0.9 * math.Sin(theta) * math.Sin(phi),
		0.9 * math.Cos(theta),
	}
	assert.True(t, nearVec(B0[:], want, 1.e-12))
	// Spatially uniform and stable across repeat calls
	again := bl.BackgroundField(-5, 2, 9)
	assert.Equal(t, B0, again)
}

func bmag(s State) float64 {
	return math.Sqrt(s.B[0]*s.B[0] + s.B[1]*s.B[1] + s.B[2]*s.B[2])
}
