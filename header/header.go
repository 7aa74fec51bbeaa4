// Package header implements the ADX container header: a versioned,
// variable-length prefix with a mandatory trailing copyright magic and an
// optional v3 loop block.
package header

import (
	"encoding/binary"
	"io"

	"github.com/mewkiz/pkg/dbg"
	"github.com/pkg/errors"

	"github.com/radx-go/radx/rerror"
)

// Magic is the big-endian u16 that opens every ADX header.
const Magic = 0x8000

// Copyright is the 6-byte ASCII trailer that closes every ADX header.
const Copyright = "(c)CRI"

// Len is the fixed-size non-looping header length, magic through padding,
// trailing copyright included.
const Len = 0x0032

// LenWithLoop is the header length required to carry a v3 loop block.
const LenWithLoop = 0x002c + 6

// Encoding identifies the payload codec named by the header.
type Encoding uint8

// Recognized encodings. Exponential and Preset parse but have no codec; see
// rerror.ErrUnsupportedEncoding.
const (
	EncodingPreset      Encoding = 0x02
	EncodingStandard    Encoding = 0x03
	EncodingExponential Encoding = 0x04
	EncodingAhx         Encoding = 0x10
)

func encodingFromByte(b byte) (Encoding, error) {
	switch b {
	case 0x02:
		return EncodingPreset, nil
	case 0x03:
		return EncodingStandard, nil
	case 0x04:
		return EncodingExponential, nil
	case 0x10, 0x11:
		return EncodingAhx, nil
	default:
		return 0, rerror.ErrBadEncoding
	}
}

// Version identifies the on-disk version byte. Only V3 carries loop info.
type Version uint8

const (
	V3 Version = 0x03
	V4 Version = 0x04
	V5 Version = 0x05
	V6 Version = 0x06
)

// LoopBlock is the optional 24-byte v3 loop record.
type LoopBlock struct {
	AlignmentSamples uint16
	EnabledShort     uint16
	EnabledInt       uint32
	BeginSample      uint32
	BeginByte        uint32
	EndSample        uint32
	EndByte          uint32
}

// Header is the parsed ADX container header.
type Header struct {
	Encoding          Encoding
	BlockSize         uint8
	SampleBitdepth    uint8
	ChannelCount      uint8
	SampleRate        uint32
	TotalSamples      uint32
	HighpassFrequency uint16
	Version           Version
	Flags             uint8
	// Loop is only meaningful when Version == V3; it is present iff the
	// on-disk data_offset was at least 40.
	Loop *LoopBlock
}

// Read parses an ADX header from r, which must be positioned at the start of
// the stream. On return the stream is positioned just past the trailing
// copyright magic, i.e. at the first byte of the data section.
func Read(r io.ReadSeeker) (*Header, error) {
	magic, err := readU16(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if magic != Magic {
		return nil, rerror.ErrBadMagic
	}

	dataOffset, err := readU16(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	encodingByte, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	enc, err := encodingFromByte(encodingByte)
	if err != nil {
		return nil, err
	}
	blockSize, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sampleBitdepth, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	channelCount, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sampleRate, err := readU32(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	totalSamples, err := readU32(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	highpass, err := readU16(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	versionByte, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	flags, err := readU8(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var version Version
	var loop *LoopBlock
	switch versionByte {
	case 0x03:
		version = V3
		if dataOffset >= 40 {
			loop = &LoopBlock{}
			if loop.AlignmentSamples, err = readU16(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.EnabledShort, err = readU16(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.EnabledInt, err = readU32(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.BeginSample, err = readU32(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.BeginByte, err = readU32(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.EndSample, err = readU32(r); err != nil {
				return nil, errors.WithStack(err)
			}
			if loop.EndByte, err = readU32(r); err != nil {
				return nil, errors.WithStack(err)
			}
		}
	case 0x04:
		version = V4
	case 0x05:
		version = V5
	case 0x06:
		version = V6
	default:
		return nil, rerror.ErrBadVersion
	}

	if _, err := r.Seek(int64(dataOffset)-2, io.SeekStart); err != nil {
		return nil, errors.WithStack(err)
	}
	var copyrightBuf [6]byte
	if _, err := io.ReadFull(r, copyrightBuf[:]); err != nil {
		return nil, errors.WithStack(err)
	}
	if string(copyrightBuf[:]) != Copyright {
		return nil, rerror.ErrBadCopyright
	}

	h := &Header{
		Encoding:          enc,
		BlockSize:         blockSize,
		SampleBitdepth:    sampleBitdepth,
		ChannelCount:      channelCount,
		SampleRate:        sampleRate,
		TotalSamples:      totalSamples,
		HighpassFrequency: highpass,
		Version:           version,
		Flags:             flags,
		Loop:              loop,
	}
	dbg.Println("header: parsed", h.Encoding, h.Version, "channels", h.ChannelCount, "rate", h.SampleRate)
	return h, nil
}

// MinSize returns the smallest header_size that Write will accept for h:
// 0x14+6 if h carries no loop block, LenWithLoop otherwise.
func (h *Header) MinSize() int {
	if h.Version == V3 && h.Loop != nil {
		return LenWithLoop
	}
	return 0x14 + 6
}

func (e Encoding) byte() byte {
	switch e {
	case EncodingPreset:
		return 0x02
	case EncodingStandard:
		return 0x03
	case EncodingExponential:
		return 0x04
	case EncodingAhx:
		return 0x10
	default:
		panic("header: unreachable encoding")
	}
}

func (v Version) byte() byte {
	switch v {
	case V3:
		return 0x03
	case V4:
		return 0x04
	case V5:
		return 0x05
	case V6:
		return 0x06
	default:
		panic("header: unreachable version")
	}
}

// Write emits h under the given header_size, which must be >= h.MinSize().
// The caller is responsible for back-patching: encoders seek to 0 and call
// Write only once sample count and loop byte offsets are known.
func (h *Header) Write(w io.Writer, headerSize int) error {
	if err := writeU16(w, Magic); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU16(w, uint16(headerSize-0x04)); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.Encoding.byte()); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.BlockSize); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.SampleBitdepth); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.ChannelCount); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU32(w, h.SampleRate); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU32(w, h.TotalSamples); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU16(w, h.HighpassFrequency); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.Version.byte()); err != nil {
		return errors.WithStack(err)
	}
	if err := writeU8(w, h.Flags); err != nil {
		return errors.WithStack(err)
	}

	var padding int
	if h.Version == V3 && h.Loop != nil {
		if err := writeU16(w, h.Loop.AlignmentSamples); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU16(w, h.Loop.EnabledShort); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU32(w, h.Loop.EnabledInt); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU32(w, h.Loop.BeginSample); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU32(w, h.Loop.BeginByte); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU32(w, h.Loop.EndSample); err != nil {
			return errors.WithStack(err)
		}
		if err := writeU32(w, h.Loop.EndByte); err != nil {
			return errors.WithStack(err)
		}
		padding = headerSize - 0x2c - 0x06
	} else {
		padding = headerSize - 0x14 - 0x06
	}
	if padding < 0 {
		return errors.Errorf("header: header_size %d too small for %v", headerSize, h.Version)
	}
	zero := make([]byte, padding)
	if _, err := w.Write(zero); err != nil {
		return errors.WithStack(err)
	}
	if _, err := io.WriteString(w, Copyright); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func readU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func readU16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func readU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func writeU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeU16(w io.Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func writeU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}
