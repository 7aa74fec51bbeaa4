// Package rerror defines the tagged error values shared by the header codec
// and the Standard and AHX codecs.
package rerror

import "errors"

// Header errors. Returned by header.Read when the stream does not look like
// a well-formed ADX container.
var (
	ErrBadMagic     = errors.New("radx: bad adx magic value")
	ErrBadEncoding  = errors.New("radx: bad encoding value")
	ErrBadVersion   = errors.New("radx: bad adx version value")
	ErrBadCopyright = errors.New("radx: bad copyright string")
)

// ErrUnsupportedEncoding is returned when a header names an encoding that is
// recognized at parse time but has no decoder or encoder implementation
// (Preset, Exponential).
var ErrUnsupportedEncoding = errors.New("radx: unsupported encoding")

// ErrBadFrameHeader is returned when an AHX frame's leading 32-bit word is
// neither the frame sync constant nor the end-of-stream sentinel.
var ErrBadFrameHeader = errors.New("radx: bad ahx frame header")
