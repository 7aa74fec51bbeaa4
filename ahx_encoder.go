package radx

import (
	"io"

	"github.com/icza/bitio"

	"github.com/radx-go/radx/header"
)

// ahxHeaderLen is the fixed header size AHX output always uses: no loop
// block is ever present.
const ahxHeaderLen = 0x24

// ahxTrailer is the fixed 17-byte end-of-stream marker written after the
// last frame.
var ahxTrailer = []byte("\x00\x80\x01\x00\x0cAHXE(c)CRI\x00\x00")

// ahxWindow is the 512-sample circular analysis window. Index 0 is always
// the newest sample, matching the original's Index semantics.
type ahxWindow struct {
	buf [512]int16
	idx int
}

func (w *ahxWindow) addSamples(samples []int16) {
	w.idx = (w.idx + 512 - 32) % 512
	for i, s := range samples {
		w.buf[(w.idx+31-i)%512] = s
	}
}

func (w *ahxWindow) at(index int) int16 {
	return w.buf[(w.idx+index)%512]
}

// polyphase windows the analysis buffer and projects it through the fixed
// cosine matrix, yielding one sample per subband.
func (w *ahxWindow) polyphase() [32]int64 {
	nMatrix := getNMatrix()

	var y [64]int64
	for i := 0; i < 64; i++ {
		var sum int64
		for j := 0; j < 8; j++ {
			sum += (int64(w.at(i+64*j)) * enWindow[i+64*j]) >> 15
		}
		y[i] = sum
	}

	var polyphased [32]int64
	for sb := 0; sb < 32; sb++ {
		var sum int64
		for i := 0; i < 64; i++ {
			sum += (nMatrix[i][sb] * y[i]) >> fracBits
		}
		polyphased[sb] = sum
	}
	return polyphased
}

// AhxEncoder produces AHX-coded ADX output: fixed bit allocation, per-part
// scalefactor/SCFSI selection, and grouped or ungrouped quantization.
type AhxEncoder struct {
	inner io.WriteSeeker
	bw    *bitio.Writer

	window         ahxWindow
	samplesEncoded uint32

	buffer    [1152]int16
	bufferIdx int
}

// NewAhxEncoder constructs an AHX encoder writing to w, seeking past the
// fixed 0x24-byte header so data can be written before the header is
// back-patched at Finish.
func NewAhxEncoder(w io.WriteSeeker) (*AhxEncoder, error) {
	if _, err := w.Seek(ahxHeaderLen, io.SeekStart); err != nil {
		return nil, err
	}
	return &AhxEncoder{
		inner: w,
		bw:    bitio.NewWriter(w),
	}, nil
}

func (e *AhxEncoder) writeBits(v uint64, n uint8) error {
	return e.bw.WriteBits(v, n)
}

// encodeFrame analyzes and writes one 1152-sample frame: fixed allocation
// schedule, SCFSI, scalefactors, then quantized sample data.
func (e *AhxEncoder) encodeFrame() error {
	if _, err := e.bw.Align(); err != nil {
		return err
	}
	if err := e.writeBits(ahxFrameSync, 32); err != nil {
		return err
	}
	for sb := 0; sb < 30; sb++ {
		if err := e.writeBits(uint64(ahxAllocWidths[sb]), bitAllocTable[sb]); err != nil {
			return err
		}
	}

	var scfsi [30]uint32
	var scalefactors [3][30]int
	var polyphasedSamples [3][4][32][3]int64

	sampleIdx := 0
	for part := 0; part < 3; part++ {
		for gr := 0; gr < 4; gr++ {
			for s := 0; s < 3; s++ {
				e.window.addSamples(e.buffer[sampleIdx : sampleIdx+32])
				poly := e.window.polyphase()
				sampleIdx += 32
				for sb := 0; sb < 32; sb++ {
					polyphasedSamples[part][gr][sb][s] = poly[sb]
				}
			}
		}

		for sb := 0; sb < 30; sb++ {
			var maxSample int64
			for gr := 0; gr < 4; gr++ {
				for s := 0; s < 3; s++ {
					v := polyphasedSamples[part][gr][sb][s]
					if v < 0 {
						v = -v
					}
					if v > maxSample {
						maxSample = v
					}
				}
			}
			sfIndex := 0
			for i := 0; i < 63; i++ {
				sfIndex = 62 - i
				if maxSample < sfTable[sfIndex] {
					break
				}
			}
			scalefactors[part][sb] = sfIndex
		}
	}

	for sb := 0; sb < 30; sb++ {
		switch {
		case scalefactors[0][sb] == scalefactors[1][sb] && scalefactors[1][sb] == scalefactors[2][sb]:
			scfsi[sb] = 2
		case scalefactors[0][sb] == scalefactors[1][sb]:
			scfsi[sb] = 1
		case scalefactors[1][sb] == scalefactors[2][sb]:
			scfsi[sb] = 3
		default:
			scfsi[sb] = 0
		}
	}

	for sb := 0; sb < 30; sb++ {
		if err := e.writeBits(uint64(scfsi[sb]), 2); err != nil {
			return err
		}
	}

	for sb := 0; sb < 30; sb++ {
		switch scfsi[sb] {
		case 0:
			if err := e.writeBits(uint64(scalefactors[0][sb]), 6); err != nil {
				return err
			}
			if err := e.writeBits(uint64(scalefactors[1][sb]), 6); err != nil {
				return err
			}
			if err := e.writeBits(uint64(scalefactors[2][sb]), 6); err != nil {
				return err
			}
		case 2:
			if err := e.writeBits(uint64(scalefactors[0][sb]), 6); err != nil {
				return err
			}
		default: // 1 and 3: first and last
			if err := e.writeBits(uint64(scalefactors[0][sb]), 6); err != nil {
				return err
			}
			if err := e.writeBits(uint64(scalefactors[2][sb]), 6); err != nil {
				return err
			}
		}
	}

	for part := 0; part < 3; part++ {
		for gr := 0; gr < 4; gr++ {
			for sb := 0; sb < 30; sb++ {
				q := quantTable[sb]
				var quantized [3]int64
				for s := 0; s < 3; s++ {
					scaled := (polyphasedSamples[part][gr][sb][s] * isfTable[scalefactors[part][sb]]) >> fracBits
					transformed := ((scaled * q.a) >> fracBits) + q.b
					quant := transformed >> (fracBits - int64(q.numBits-1))
					formatted := (quant & (1<<q.numBits - 1)) ^ (1 << (q.numBits - 1))
					quantized[s] = formatted
				}

				if q.group != nil {
					grouped := quantized[0] + quantized[1]*q.group.nlevels + quantized[2]*q.group.nlevels*q.group.nlevels
					if err := e.writeBits(uint64(grouped), q.group.groupBits); err != nil {
						return err
					}
				} else {
					for s := 0; s < 3; s++ {
						if err := e.writeBits(uint64(quantized[s]), q.numBits); err != nil {
							return err
						}
					}
				}
			}
		}
	}

	return nil
}

// EncodeData feeds mono samples into the encoder, encoding full 1152-sample
// frames as they fill.
func (e *AhxEncoder) EncodeData(samples []int16) error {
	for _, sample := range samples {
		e.buffer[e.bufferIdx] = sample
		e.bufferIdx++
		if e.bufferIdx == 1152 {
			if err := e.encodeFrame(); err != nil {
				return err
			}
			e.bufferIdx = 0
		}
		e.samplesEncoded++
	}
	return nil
}

// Finish zero-pads and encodes any partial final frame, writes the
// end-of-stream trailer, and back-patches the fixed-size header. The
// encoder must not be used afterward.
func (e *AhxEncoder) Finish() error {
	if e.bufferIdx != 0 {
		for i := e.bufferIdx; i < 1152; i++ {
			e.buffer[i] = 0
		}
		if err := e.encodeFrame(); err != nil {
			return err
		}
	}
	if err := e.bw.Close(); err != nil {
		return err
	}

	if _, err := e.inner.Write(ahxTrailer); err != nil {
		return err
	}
	if _, err := e.inner.Seek(0, io.SeekStart); err != nil {
		return err
	}

	h := &header.Header{
		Encoding:     header.EncodingAhx,
		ChannelCount: 1,
		SampleRate:   22050,
		TotalSamples: e.samplesEncoded,
		Version:      header.V6,
	}
	return h.Write(e.inner, ahxHeaderLen)
}
