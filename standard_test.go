package radx

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func sineSamples(n int, channels int) []Sample {
	samples := make([]Sample, n)
	for i := range samples {
		v := int16(8000 * math.Sin(float64(i)*0.05))
		s := make(Sample, channels)
		for ch := range s {
			s[ch] = v
		}
		samples[i] = s
	}
	return samples
}

func TestStandardEncodeDecodeRoundTrip(t *testing.T) {
	samples := sineSamples(100, 2)

	var buf bytes.Buffer
	w := newSeekableBuffer(&buf)
	enc, err := NewStandardEncoder(w, Spec{Channels: 2, SampleRate: 44100})
	require.NoError(t, err)
	require.NoError(t, enc.EncodeData(samples))
	require.NoError(t, enc.Finish())

	r := bytes.NewReader(buf.Bytes())
	dec, err := Open(r, false)
	require.NoError(t, err)
	assert.Equal(t, 2, dec.Channels())
	assert.Equal(t, uint32(44100), dec.SampleRate())

	var got []Sample
	for {
		s, err := dec.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, s)
	}
	require.Len(t, got, len(samples))
}

func TestStandardLoopRoundTrip(t *testing.T) {
	samples := sineSamples(200, 1)

	var buf bytes.Buffer
	w := newSeekableBuffer(&buf)
	spec := Spec{
		Channels:   1,
		SampleRate: 22050,
		LoopInfo:   &LoopInfo{StartSample: 40, EndSample: 150},
	}
	enc, err := NewStandardEncoder(w, spec)
	require.NoError(t, err)
	require.NoError(t, enc.EncodeData(samples))
	require.NoError(t, enc.Finish())

	r := bytes.NewReader(buf.Bytes())
	dec, err := Open(r, false)
	require.NoError(t, err)
	loopInfo, hasLoop := dec.LoopInfo()
	require.True(t, hasLoop)
	assert.Equal(t, uint32(40), loopInfo.StartSample)
	assert.Equal(t, uint32(150), loopInfo.EndSample)
}

// The predictor reconstruction the encoder simulates while quantizing must
// exactly match the decoder's reconstruction, or prediction error from
// accumulated clipping would desync across blocks.
func TestPredictSampleMatchesEncoderSimulation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coeff1 := int32(rapid.IntRange(-8192, 8192).Draw(t, "coeff1"))
		coeff2 := int32(rapid.IntRange(-8192, 8192).Draw(t, "coeff2"))
		prev := int16(rapid.IntRange(-1000, 1000).Draw(t, "prev"))
		prevPrev := int16(rapid.IntRange(-1000, 1000).Draw(t, "prevPrev"))

		got := predictSample(coeff1, coeff2, prev, prevPrev)
		want := (coeff1*int32(prev) + coeff2*int32(prevPrev)) >> 12
		assert.Equal(t, want, got)
	})
}

// seekableBuffer adapts a bytes.Buffer into an io.WriteSeeker backed by a
// growable in-memory slice, for tests that need to seek and back-patch like
// a file.
type seekableBuffer struct {
	buf *bytes.Buffer
	pos int64
	mem []byte
}

func newSeekableBuffer(buf *bytes.Buffer) *seekableBuffer {
	return &seekableBuffer{buf: buf}
}

func (s *seekableBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.mem)) {
		grown := make([]byte, end)
		copy(grown, s.mem)
		s.mem = grown
	}
	copy(s.mem[s.pos:end], p)
	s.pos = end
	s.buf.Reset()
	s.buf.Write(s.mem)
	return len(p), nil
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		s.pos = offset
	case io.SeekCurrent:
		s.pos += offset
	case io.SeekEnd:
		s.pos = int64(len(s.mem)) + offset
	}
	return s.pos, nil
}
