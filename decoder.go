// Package radx implements the ADX family of audio containers used by CRI
// Middleware: the low-complexity "Standard" ADPCM codec and the polyphase
// subband "AHX" codec, both wrapped in a common header.
package radx

import (
	"io"

	"github.com/radx-go/radx/header"
	"github.com/radx-go/radx/internal/bufseekio"
	"github.com/radx-go/radx/rerror"
)

// Sample is one tick of PCM: one int16 per channel. AHX samples are always
// length 1 (mono).
type Sample []int16

// LoopInfo describes a sample-accurate loop region, in the caller-visible
// sample numbering (after alignment-sample correction).
type LoopInfo struct {
	StartSample uint32
	EndSample   uint32
}

// Spec is the encoder's input: the channel layout, sample rate, and an
// optional loop region to encode.
type Spec struct {
	Channels   uint32
	SampleRate uint32
	LoopInfo   *LoopInfo
}

// Decoder produces PCM samples from an ADX or AHX bitstream. Next returns
// io.EOF once the stream's end-of-data sentinel is reached or, for a
// non-looping Standard decode, once TotalSamples have been produced. The AHX
// decoder does not stop at TotalSamples: it yields every sample of every
// frame, including the zero padding of the last frame.
type Decoder interface {
	Channels() int
	SampleRate() uint32
	LoopInfo() (LoopInfo, bool)
	Next() (Sample, error)
}

// Open reads the ADX/AHX header from r and returns a Decoder for whichever
// codec the header names. If looping is true and the stream is a looping
// Standard ADX, the returned decoder honors loop_info and will jump back to
// the loop start once it reaches loop end, rather than terminating there.
func Open(r io.ReadSeeker, looping bool) (Decoder, error) {
	buffered := bufseekio.NewReadSeeker(r)
	hdr, err := header.Read(buffered)
	if err != nil {
		return nil, err
	}
	switch hdr.Encoding {
	case header.EncodingStandard:
		return newStandardDecoder(hdr, buffered, looping), nil
	case header.EncodingAhx:
		return newAhxDecoder(hdr, buffered), nil
	default:
		return nil, rerror.ErrUnsupportedEncoding
	}
}
