package radx

import (
	"io"

	"github.com/icza/bitio"

	"github.com/radx-go/radx/header"
)

const standardHighpassFreq = 0x01F4

type blockPrev struct {
	first, second int16
}

// standardBlock accumulates up to 32 samples of one channel, tracking the
// residual extrema needed to choose the block's scale.
type standardBlock struct {
	prev     blockPrev
	origPrev blockPrev
	min, max int32
	samples  [32]int16
	size     int
}

func newStandardBlock() *standardBlock {
	return &standardBlock{}
}

func (b *standardBlock) fromPrev(other *standardBlock) *standardBlock {
	return &standardBlock{prev: other.prev, origPrev: other.prev}
}

func (b *standardBlock) push(sample int16, coeff1, coeff2 int32) {
	delta := ((int32(sample) << 12) - coeff1*int32(b.prev.first) - coeff2*int32(b.prev.second)) >> 12
	if delta < b.min {
		b.min = delta
	} else if delta > b.max {
		b.max = delta
	}
	b.samples[b.size] = sample
	b.size++

	b.prev.second = b.prev.first
	b.prev.first = sample
}

func (b *standardBlock) isEmpty() bool { return b.size == 0 }
func (b *standardBlock) isFull() bool  { return b.size == 32 }

func (b *standardBlock) writeTo(w *bitio.Writer, coeff1, coeff2 int32) error {
	if b.min == 0 && b.max == 0 {
		for i := 0; i < 18; i++ {
			if err := w.WriteBits(0, 8); err != nil {
				return err
			}
		}
		return nil
	}

	scale := (b.max + 6) / 7
	if s := (-b.min + 7) / 8; s > scale {
		scale = s
	}
	if scale == 0 {
		scale = 1
	}

	b.prev = b.origPrev

	if err := w.WriteBits(uint64(uint16(scale)), 16); err != nil {
		return err
	}
	for i := 0; i < len(b.samples)/2; i++ {
		s1 := b.samples[i*2]
		s2 := b.samples[i*2+1]
		upper := b.nibble(s1, scale, coeff1, coeff2)
		lower := b.nibble(s2, scale, coeff1, coeff2)
		byteVal := (upper << 4) | (lower & 0xF)
		if err := w.WriteBits(uint64(byteVal), 8); err != nil {
			return err
		}
	}
	return nil
}

// nibble quantizes sample against the simulated reconstruction path and
// advances that path, so encoder and decoder predictor state agree
// bit-exactly (see predictSample).
func (b *standardBlock) nibble(sample int16, scale int32, coeff1, coeff2 int32) uint8 {
	delta := ((int32(sample) << 12) - coeff1*int32(b.prev.first) - coeff2*int32(b.prev.second)) >> 12

	var unclipped int32
	if delta > 0 {
		unclipped = (delta + (scale >> 1)) / scale
	} else {
		unclipped = (delta - (scale >> 1)) / scale
	}

	nib := unclipped
	if nib >= 7 {
		nib = 7
	} else if nib <= -8 {
		nib = -8
	}

	simulatedUnclipped := nib*scale + predictSample(coeff1, coeff2, b.prev.first, b.prev.second)
	simulated := clampI16(simulatedUnclipped)

	b.prev.second = b.prev.first
	b.prev.first = simulated

	return uint8(nib) & 0x0F
}

type standardFrame struct {
	blocks []*standardBlock
}

func newStandardFrame(channels int) *standardFrame {
	f := &standardFrame{blocks: make([]*standardBlock, channels)}
	for i := range f.blocks {
		f.blocks[i] = newStandardBlock()
	}
	return f
}

func (f *standardFrame) fromPrev(other *standardFrame) *standardFrame {
	blocks := make([]*standardBlock, len(other.blocks))
	for i, b := range other.blocks {
		blocks[i] = newStandardBlock().fromPrev(b)
	}
	return &standardFrame{blocks: blocks}
}

func (f *standardFrame) push(sample Sample, coeff1, coeff2 int32) {
	for ch, b := range f.blocks {
		b.push(sample[ch], coeff1, coeff2)
	}
}

func (f *standardFrame) isEmpty() bool { return f.blocks[0].isEmpty() }
func (f *standardFrame) isFull() bool  { return f.blocks[0].isFull() }

func (f *standardFrame) writeTo(w *bitio.Writer, coeff1, coeff2 int32) error {
	for _, b := range f.blocks {
		if err := b.writeTo(w, coeff1, coeff2); err != nil {
			return err
		}
	}
	return nil
}

// StandardEncoder produces ADPCM blocks, computing per-block scale and
// managing loop-start alignment and header-size padding.
type StandardEncoder struct {
	inner            io.WriteSeeker
	bw               *bitio.Writer
	spec             Spec
	headerSize       int
	alignmentSamples int
	coeff1, coeff2   int32
	samplesEncoded   uint32
	currentFrame     *standardFrame
}

func sampleToByte(sample, channels uint32) int {
	frames := sample / 32
	if sample%32 != 0 {
		frames++
	}
	return int(frames * 18 * channels)
}

// NewStandardEncoder constructs a Standard ADPCM encoder writing to w. If
// spec carries a LoopInfo with StartSample not a multiple of 32, an
// alignment prefix of silent samples is emitted first so the loop start
// lands on a block boundary, and spec's loop sample numbers are rewritten
// to be post-alignment.
func NewStandardEncoder(w io.WriteSeeker, spec Spec) (*StandardEncoder, error) {
	var alignment int
	if spec.LoopInfo != nil {
		alignment = int((32 - (spec.LoopInfo.StartSample % 32)) % 32)
		spec.LoopInfo.StartSample += uint32(alignment)
		spec.LoopInfo.EndSample += uint32(alignment)
	}

	headerSize := header.Len
	if spec.LoopInfo != nil {
		bytesTillLoopStart := sampleToByte(spec.LoopInfo.StartSample, spec.Channels)
		fsBlocks := bytesTillLoopStart / 0x800
		if bytesTillLoopStart%0x800 > 0x800-header.Len {
			fsBlocks++
		}
		fsBlocks++
		headerSize = fsBlocks*0x800 - bytesTillLoopStart
	}

	if _, err := w.Seek(int64(headerSize), io.SeekStart); err != nil {
		return nil, err
	}

	coeff1, coeff2 := genCoeffs(standardHighpassFreq, spec.SampleRate)
	enc := &StandardEncoder{
		inner:            w,
		bw:               bitio.NewWriter(w),
		spec:             spec,
		headerSize:       headerSize,
		alignmentSamples: alignment,
		coeff1:           coeff1,
		coeff2:           coeff2,
		currentFrame:     newStandardFrame(int(spec.Channels)),
	}

	if alignment > 0 {
		silence := make(Sample, spec.Channels)
		for i := 0; i < alignment; i++ {
			if err := enc.push(silence); err != nil {
				return nil, err
			}
		}
	}
	return enc, nil
}

func (e *StandardEncoder) push(sample Sample) error {
	e.currentFrame.push(sample, e.coeff1, e.coeff2)
	e.samplesEncoded++
	if e.currentFrame.isFull() {
		if err := e.currentFrame.writeTo(e.bw, e.coeff1, e.coeff2); err != nil {
			return err
		}
		e.currentFrame = e.currentFrame.fromPrev(e.currentFrame)
	}
	return nil
}

// EncodeData feeds samples into the encoder, flushing full blocks as they
// fill.
func (e *StandardEncoder) EncodeData(samples []Sample) error {
	for _, sample := range samples {
		if err := e.push(sample); err != nil {
			return err
		}
	}
	return nil
}

// Finish flushes any partial final block, writes the end-of-stream
// terminator, and back-patches the header at the start of the stream. The
// encoder must not be used afterward.
func (e *StandardEncoder) Finish() error {
	if !e.currentFrame.isEmpty() {
		if err := e.currentFrame.writeTo(e.bw, e.coeff1, e.coeff2); err != nil {
			return err
		}
	}
	if err := e.bw.WriteBits(0x8001, 16); err != nil {
		return err
	}
	if err := e.bw.WriteBits(0x000e, 16); err != nil {
		return err
	}
	for i := 0; i < 14; i++ {
		if err := e.bw.WriteBits(0, 8); err != nil {
			return err
		}
	}
	if err := e.bw.Close(); err != nil {
		return err
	}

	if _, err := e.inner.Seek(0, io.SeekStart); err != nil {
		return err
	}

	var loop *header.LoopBlock
	if e.spec.LoopInfo != nil {
		li := e.spec.LoopInfo
		loop = &header.LoopBlock{
			AlignmentSamples: uint16(e.alignmentSamples),
			EnabledShort:     1,
			EnabledInt:       1,
			BeginSample:      li.StartSample,
			BeginByte:        uint32(sampleToByte(li.StartSample, e.spec.Channels) + e.headerSize),
			EndSample:        li.EndSample,
			EndByte:          uint32(sampleToByte(li.EndSample, e.spec.Channels) + e.headerSize),
		}
	}

	h := &header.Header{
		Encoding:          header.EncodingStandard,
		BlockSize:         18,
		SampleBitdepth:    4,
		ChannelCount:      uint8(e.spec.Channels),
		SampleRate:        e.spec.SampleRate,
		TotalSamples:      e.samplesEncoded,
		HighpassFrequency: standardHighpassFreq,
		Version:           header.V3,
		Flags:             0,
		Loop:              loop,
	}
	return h.Write(e.inner, e.headerSize)
}
