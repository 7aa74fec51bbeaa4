package radx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A zero highpass frequency collapses a and b in the coefficient derivation
// to the same value, giving the exact fixed-point pair (2, -1).
func TestGenCoeffsZeroHighpass(t *testing.T) {
	k1, k2 := genCoeffs(0, 44100)
	assert.Equal(t, int32(8192), k1)
	assert.Equal(t, int32(-4096), k2)
}

func TestGenCoeffsStandardHighpass(t *testing.T) {
	k1, k2 := genCoeffs(0x01F4, 44100)
	assert.InDelta(t, 7335, k1, 10)
	assert.InDelta(t, -3283, k2, 10)
}

func TestGenCoeffsDeterministic(t *testing.T) {
	k1a, k2a := genCoeffs(500, 22050)
	k1b, k2b := genCoeffs(500, 22050)
	assert.Equal(t, k1a, k1b)
	assert.Equal(t, k2a, k2b)
}
