package radx

import (
	"io"
	"math"

	"github.com/icza/bitio"

	"github.com/radx-go/radx/header"
	"github.com/radx-go/radx/internal/bits"
	"github.com/radx-go/radx/rerror"
)

// ahxFrameSync is the 32-bit word opening every AHX frame.
const ahxFrameSync = 0xfff5e0c0

// ahxFrameEnd is the sentinel 32-bit word that terminates an AHX stream in
// place of a frame sync word.
const ahxFrameEnd = 0x00800100

// ahxDecoder implements MPEG-II-style polyphase subband synthesis over the
// fixed allocation/quantization schedule of §6. It produces 1152-sample
// mono frames.
type ahxDecoder struct {
	br     *bitio.Reader
	header *header.Header

	vOff int
	u    [512]int64
	v    [1024]int64

	buffer    [1152]int16
	bufferIdx int
}

func newAhxDecoder(h *header.Header, inner io.Reader) *ahxDecoder {
	return &ahxDecoder{
		br:        bitio.NewReader(inner),
		header:    h,
		bufferIdx: 1152,
	}
}

func (d *ahxDecoder) Channels() int      { return 1 }
func (d *ahxDecoder) SampleRate() uint32 { return d.header.SampleRate }

// LoopInfo is always absent: AHX carries no loop block.
func (d *ahxDecoder) LoopInfo() (LoopInfo, bool) { return LoopInfo{}, false }

func mod1024(x int) int {
	x %= 1024
	if x < 0 {
		x += 1024
	}
	return x
}

// readAllocations reads the 30 fixed-width allocation indices opening the
// frame body, one per coded subband.
func (d *ahxDecoder) readAllocations() ([30]uint32, error) {
	var allocations [30]uint32
	for sb := 0; sb < 30; sb++ {
		v, err := d.br.ReadBits(bitAllocTable[sb])
		if err != nil {
			return allocations, err
		}
		allocations[sb] = uint32(v)
	}
	return allocations, nil
}

// readScalefactors expands the 2-bit SCFSI code per subband into three
// per-part scalefactor indices, sharing reads across parts per §4.H's table.
// The SCFSI field is present for every subband regardless of allocation; only
// the scalefactor values themselves are omitted for an unallocated subband.
func (d *ahxDecoder) readScalefactors(allocations [30]uint32) ([30][3]uint32, error) {
	var scalefactors [30][3]uint32
	var scfsiValues [30]uint64
	for sb := 0; sb < 30; sb++ {
		v, err := d.br.ReadBits(2)
		if err != nil {
			return scalefactors, err
		}
		scfsiValues[sb] = v
	}

	for sb := 0; sb < 30; sb++ {
		if allocations[sb] == 0 {
			continue
		}
		switch scfsiValues[sb] {
		case 0:
			for part := 0; part < 3; part++ {
				v, err := d.br.ReadBits(6)
				if err != nil {
					return scalefactors, err
				}
				scalefactors[sb][part] = uint32(v)
			}
		case 1:
			v0, err := d.br.ReadBits(6)
			if err != nil {
				return scalefactors, err
			}
			scalefactors[sb][0] = uint32(v0)
			scalefactors[sb][1] = uint32(v0)
			v2, err := d.br.ReadBits(6)
			if err != nil {
				return scalefactors, err
			}
			scalefactors[sb][2] = uint32(v2)
		case 2:
			v, err := d.br.ReadBits(6)
			if err != nil {
				return scalefactors, err
			}
			scalefactors[sb][0] = uint32(v)
			scalefactors[sb][1] = uint32(v)
			scalefactors[sb][2] = uint32(v)
		case 3:
			v0, err := d.br.ReadBits(6)
			if err != nil {
				return scalefactors, err
			}
			scalefactors[sb][0] = uint32(v0)
			v2, err := d.br.ReadBits(6)
			if err != nil {
				return scalefactors, err
			}
			scalefactors[sb][1] = uint32(v2)
			scalefactors[sb][2] = uint32(v2)
		}
	}
	return scalefactors, nil
}

// readSamples reads the three grouped or ungrouped samples for one subband
// of one granule tick, dequantizing each into the common q28 fixed-point
// representation used by the synthesis matrix.
func (d *ahxDecoder) readSamples(q quantizeSpec) ([3]int64, error) {
	var samples [3]int64
	var numBits uint8
	if q.group != 0 {
		numBits = uint8(q.group)
		grouped, err := d.br.ReadBits(q.bits)
		if err != nil {
			return samples, err
		}
		g := int64(grouped)
		for idx := 0; idx < 3; idx++ {
			samples[idx] = g % q.nlevels
			g /= q.nlevels
		}
	} else {
		numBits = q.bits
		for idx := 0; idx < 3; idx++ {
			v, err := d.br.ReadBits(q.bits)
			if err != nil {
				return samples, err
			}
			samples[idx] = int64(v)
		}
	}

	signBit := int64(1) << (numBits - 1)
	for idx := 0; idx < 3; idx++ {
		flipped := uint64(samples[idx] ^ signBit)
		requantized := bits.IntN(flipped, uint(numBits)) << (uint(fracBits) - uint(numBits-1))
		samples[idx] = (requantized + q.d) * q.c >> fracBits
	}
	return samples, nil
}

// readFrame decodes one 1152-sample AHX frame. It returns io.EOF on the
// end-of-stream sentinel in place of a regular frame sync word.
func (d *ahxDecoder) readFrame() ([1152]int16, error) {
	var pcm [1152]int16

	d.br.Align()
	frameHeader, err := d.br.ReadBits(32)
	if err != nil {
		return pcm, err
	}
	if frameHeader == ahxFrameEnd {
		return pcm, io.EOF
	}
	if frameHeader != ahxFrameSync {
		return pcm, rerror.ErrBadFrameHeader
	}

	allocations, err := d.readAllocations()
	if err != nil {
		return pcm, err
	}
	scalefactors, err := d.readScalefactors(allocations)
	if err != nil {
		return pcm, err
	}

	nMatrix := getNMatrix()

	for part := 0; part < 3; part++ {
		for gr := 0; gr < 4; gr++ {
			var sbSamples [32][3]int64
			for sb := 0; sb < 30; sb++ {
				if allocations[sb] == 0 {
					continue
				}
				var q quantizeSpec
				if sb < 4 {
					q = quantTableLow[allocations[sb]-1]
				} else {
					q = quantTableHigh[allocations[sb]-1]
				}
				samples, err := d.readSamples(q)
				if err != nil {
					return pcm, err
				}
				for idx := 0; idx < 3; idx++ {
					sbSamples[sb][idx] = (samples[idx] * sfTable[scalefactors[sb][part]]) >> fracBits
				}
			}

			for idx := 0; idx < 3; idx++ {
				d.vOff = mod1024(d.vOff - 64)
				off := d.vOff

				// Matrixing: project the 32 subband samples into a fresh
				// 64-entry slice of the synthesis history.
				for i := 0; i < 64; i++ {
					var sum int64
					for j := 0; j < 32; j++ {
						sum += (nMatrix[i][j] * sbSamples[j][idx]) >> fracBits
					}
					d.v[off+i] = sum
				}

				// Build the 512-entry working vector via the standard
				// MPEG Layer I/II butterfly indexing.
				for i := 0; i < 8; i++ {
					for sb := 0; sb < 32; sb++ {
						d.u[i*64+sb] = d.v[(off+i*128+sb)%1024]
						d.u[i*64+sb+32] = d.v[(off+i*128+sb+96)%1024]
					}
				}

				for i := 0; i < 512; i++ {
					d.u[i] = (d.u[i] * dWindow[i]) >> fracBits
				}

				for sb := 0; sb < 32; sb++ {
					var sum int64
					for i := 0; i < 16; i++ {
						sum -= d.u[i*32+sb]
					}
					sum >>= fracBits - 15
					if sum > math.MaxInt16 {
						sum = math.MaxInt16
					} else if sum < math.MinInt16 {
						sum = math.MinInt16
					}
					pcm[part*384+gr*96+idx*32+sb] = int16(sum)
				}
			}
		}
	}

	return pcm, nil
}

func (d *ahxDecoder) Next() (Sample, error) {
	if d.bufferIdx == 1152 {
		pcm, err := d.readFrame()
		if err != nil {
			return nil, err
		}
		d.buffer = pcm
		d.bufferIdx = 0
	}
	sample := d.buffer[d.bufferIdx]
	d.bufferIdx++
	return Sample{sample}, nil
}
