package radx

import (
	"io"
	"math"

	"github.com/icza/bitio"

	"github.com/radx-go/radx/header"
	"github.com/radx-go/radx/internal/bits"
)

type loopReadInfo struct {
	beginByte   int64
	beginSample uint32
	endSample   uint32
}

// standardDecoder reconstructs PCM from Standard ADPCM blocks.
type standardDecoder struct {
	inner  io.ReadSeeker
	br     *bitio.Reader
	header *header.Header

	samples      []Sample
	sampleIdx    int
	prevSample   []int16
	prevPrevSample []int16
	coeff1, coeff2 int32

	alignmentSamples uint32
	currentSample    uint32
	loop             *loopReadInfo
}

func newStandardDecoder(h *header.Header, inner io.ReadSeeker, looping bool) *standardDecoder {
	coeff1, coeff2 := genCoeffs(uint32(h.HighpassFrequency), h.SampleRate)

	channels := int(h.ChannelCount)
	var alignment uint32
	var loop *loopReadInfo
	if h.Version == header.V3 && h.Loop != nil {
		alignment = uint32(h.Loop.AlignmentSamples)
		if looping {
			loop = &loopReadInfo{
				beginByte:   int64(h.Loop.BeginByte),
				beginSample: h.Loop.BeginSample,
				endSample:   h.Loop.EndSample,
			}
		}
	}

	return &standardDecoder{
		inner:            inner,
		br:               bitio.NewReader(inner),
		header:           h,
		prevSample:       make([]int16, channels),
		prevPrevSample:   make([]int16, channels),
		coeff1:           coeff1,
		coeff2:           coeff2,
		alignmentSamples: alignment,
		loop:             loop,
	}
}

func (d *standardDecoder) Channels() int       { return int(d.header.ChannelCount) }
func (d *standardDecoder) SampleRate() uint32  { return d.header.SampleRate }

func (d *standardDecoder) LoopInfo() (LoopInfo, bool) {
	if d.header.Version != header.V3 || d.header.Loop == nil {
		return LoopInfo{}, false
	}
	lb := d.header.Loop
	return LoopInfo{
		StartSample: lb.BeginSample - uint32(lb.AlignmentSamples),
		EndSample:   lb.EndSample - uint32(lb.AlignmentSamples),
	}, true
}

// predictSample computes the 2nd-order linear prediction for the next
// sample of a channel, shared bit-for-bit with the encoder's simulated
// reconstruction path.
func predictSample(coeff1, coeff2 int32, prev, prevPrev int16) int32 {
	fixed := coeff1*int32(prev) + coeff2*int32(prevPrev)
	return fixed >> 12
}

func clampI16(v int32) int16 {
	if v >= math.MaxInt16 {
		return math.MaxInt16
	}
	if v <= math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// readFrame decodes one frame (one block per channel). It returns
// (nil, io.EOF) on the Standard end-of-stream sentinel (scale == 0x8001).
func (d *standardDecoder) readFrame() ([]Sample, error) {
	channels := int(d.header.ChannelCount)
	samplesPerBlock := int((uint32(d.header.BlockSize)-2)*8) / int(d.header.SampleBitdepth)
	samples := make([]Sample, samplesPerBlock)
	for i := range samples {
		samples[i] = make(Sample, channels)
	}

	for channel := 0; channel < channels; channel++ {
		rawScale, err := d.br.ReadBits(16)
		if err != nil {
			return nil, err
		}
		if rawScale == 0x8001 {
			return nil, io.EOF
		}
		scale := int32(rawScale)

		for idx := 0; idx < samplesPerBlock; idx++ {
			prediction := predictSample(d.coeff1, d.coeff2, d.prevSample[channel], d.prevPrevSample[channel])

			residualBits, err := d.br.ReadBits(d.header.SampleBitdepth)
			if err != nil {
				return nil, err
			}
			delta := scale * int32(bits.IntN(residualBits, uint(d.header.SampleBitdepth)))

			sample := clampI16(prediction + delta)

			d.prevPrevSample[channel] = d.prevSample[channel]
			d.prevSample[channel] = sample
			samples[idx][channel] = sample
		}
	}

	if d.alignmentSamples != 0 {
		d.sampleIdx = int(d.alignmentSamples)
		d.currentSample = d.alignmentSamples
		d.alignmentSamples = 0
	}

	return samples, nil
}

func (d *standardDecoder) Next() (Sample, error) {
	if d.loop != nil && d.currentSample == d.loop.endSample {
		if _, err := d.inner.Seek(d.loop.beginByte, io.SeekStart); err != nil {
			return nil, err
		}
		// The bit reader buffers ahead of inner; start a fresh one so the
		// next frame is read from the seek target.
		d.br = bitio.NewReader(d.inner)
		d.sampleIdx = len(d.samples)
		d.currentSample = d.loop.beginSample
	}

	if d.sampleIdx == len(d.samples) {
		samples, err := d.readFrame()
		if err != nil {
			return nil, err
		}
		d.samples = samples
		d.sampleIdx = 0
	}

	if d.currentSample == d.header.TotalSamples {
		return nil, io.EOF
	}

	result := d.samples[d.sampleIdx]
	d.sampleIdx++
	d.currentSample++
	return result, nil
}
