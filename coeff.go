package radx

import "math"

// genCoeffs derives the two 12-bit fixed-point predictor coefficients used
// by the Standard codec's 2nd-order predictor, from a highpass frequency and
// a sample rate (both in Hz).
func genCoeffs(highpassFrequency, sampleRate uint32) (k1, k2 int32) {
	x := float64(highpassFrequency) / float64(sampleRate)
	a := math.Sqrt2 - math.Cos(2*math.Pi*x)
	b := math.Sqrt2 - 1
	c := (a - math.Sqrt((a+b)*(a-b))) / b

	coeff1 := c * 2
	coeff2 := -(c * c)

	// 4096 == 1<<12
	return int32(math.Round(coeff1 * 4096)), int32(math.Round(coeff2 * 4096))
}
