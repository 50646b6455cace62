package utils

import (
	"math"
)

// POW raises x to a small integer power without the transcendental cost of
// math.Pow. Exponents beyond +/-8 fall back to math.Pow.
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -p
		flipped = true
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if flipped {
		y = 1. / y
	}
	return
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.
}

// Norm3 is the Euclidean norm of a 3 component coordinate.
func Norm3(x1, x2, x3 float64) float64 {
	return math.Sqrt(x1*x1 + x2*x2 + x3*x3)
}

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}
