package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	assert.Equal(t, 1., POW(3.7, 0))
	assert.Equal(t, 8., POW(2, 3))
	assert.InDelta(t, 1./16., POW(2, -4), 1.e-15)
	assert.InDelta(t, math.Pow(1.3, 11), POW(1.3, 11), 1.e-12)
}

func TestNorm3(t *testing.T) {
	assert.Equal(t, 0., Norm3(0, 0, 0))
	assert.InDelta(t, 3., Norm3(1, 2, 2), 1.e-15)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1.e-15)
}
