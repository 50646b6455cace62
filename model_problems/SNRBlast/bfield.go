package SNRBlast

import (
	"math"
)

// vectorPotential returns a vector potential whose discrete curl reproduces
// the uniform field B exactly, in the configured geometry. Constrained
// transport schemes difference this instead of using B directly.
func (bl *Blast) vectorPotential(x1, x2 float64, B [3]float64) (A [3]float64) {
	switch bl.Geometry {
	case CARTESIAN:
		A[1] = B[2] * x1
		A[2] = -B[1]*x1 + B[0]*x2
	case CYLINDRICAL:
		// x1 is the cylindrical radius, x2 the axial coordinate
		A[2] = 0.5 * B[1] * x1
	}
	return
}

// BackgroundField supplies the static, curl-free field contribution when
// background field splitting is active. The field is spatially uniform so
// the coordinate arguments are unused; they remain part of the host
// framework's callback signature. The trigonometric constants are computed
// once, before which any number of callers may race on the Once.
func (bl *Blast) BackgroundField(x1, x2, x3 float64) (B0 [3]float64) {
	_, _, _ = x1, x2, x3
	bl.bckOnce.Do(func() {
		var (
			sth, cth   = math.Sin(bl.Theta), math.Cos(bl.Theta)
			sphi, cphi = math.Sin(bl.Phi), math.Cos(bl.Phi)
		)
		bl.bckField = [3]float64{
			bl.Bmag * sth * cphi,
			bl.Bmag * sth * sphi,
			bl.Bmag * cth,
		}
	})
	B0 = bl.bckField
	return
}
