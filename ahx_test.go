package radx

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ahxSineSamples(n int) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(6000 * math.Sin(float64(i)*0.03))
	}
	return samples
}

func TestAhxEncodeDecodeRoundTrip(t *testing.T) {
	samples := ahxSineSamples(1152*2 + 400)

	var buf bytes.Buffer
	w := newSeekableBuffer(&buf)
	enc, err := NewAhxEncoder(w)
	require.NoError(t, err)
	require.NoError(t, enc.EncodeData(samples))
	require.NoError(t, enc.Finish())

	r := bytes.NewReader(buf.Bytes())
	dec, err := Open(r, false)
	require.NoError(t, err)
	assert.Equal(t, 1, dec.Channels())
	assert.Equal(t, uint32(22050), dec.SampleRate())
	_, hasLoop := dec.LoopInfo()
	assert.False(t, hasLoop)

	var got []int16
	for {
		s, err := dec.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, s[0])
	}
	// Finish pads the final partial frame to a full 1152-sample boundary, so
	// the stream always decodes a whole number of frames.
	require.Len(t, got, 1152*3)

	// A bitstream desync (e.g. a wrong fixed-allocation width) can shift
	// every read after the fault without necessarily tripping a frame-header
	// error until well past where it happened, so check the decoded
	// waveform actually tracks the source signal rather than just counting
	// samples.
	assert.Greater(t, correlation(samples, got[:len(samples)]), 0.9)
}

// correlation returns the Pearson correlation coefficient between two
// equal-length int16 signals.
func correlation(a, b []int16) float64 {
	n := float64(len(a))
	var sumA, sumB, sumAB, sumA2, sumB2 float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		sumA += x
		sumB += y
		sumAB += x * y
		sumA2 += x * x
		sumB2 += y * y
	}
	denom := math.Sqrt((n*sumA2 - sumA*sumA) * (n*sumB2 - sumB*sumB))
	if denom == 0 {
		return 0
	}
	return (n*sumAB - sumA*sumB) / denom
}

// After 16 pushes of 32 samples each, the 512-sample circular window has
// wrapped exactly once back to its starting offset.
func TestAhxWindowIndexWrapsAfterFullCycle(t *testing.T) {
	var w ahxWindow
	chunk := make([]int16, 32)
	for i := 0; i < 16; i++ {
		w.addSamples(chunk)
	}
	assert.Equal(t, 0, w.idx)
}
