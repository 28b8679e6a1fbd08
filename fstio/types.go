package fstio

import (
	"errors"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
)

// Binary header constants.
const (
	Magic   uint32 = 0x54534657
	Version uint32 = 1
)

// Sentinel errors for reading and writing transducers.
var (
	// ErrMalformed indicates a stream that violates the binary format.
	ErrMalformed = errors.New("fstio: malformed stream")

	// ErrBadMagic indicates a stream that does not start with Magic.
	ErrBadMagic = errors.New("fstio: bad magic number")

	// ErrVersion indicates an unsupported format version.
	ErrVersion = errors.New("fstio: unsupported version")

	// ErrChecksum indicates a checksum mismatch.
	ErrChecksum = errors.New("fstio: checksum mismatch")

	// ErrUnknownSemiring indicates a semiring tag with no registered semiring.
	ErrUnknownSemiring = errors.New("fstio: unknown semiring tag")

	// ErrRange indicates a value that does not fit the int32 fields of the format.
	ErrRange = errors.New("fstio: value out of int32 range")

	// ErrSyntax indicates an unparsable line of a text file.
	ErrSyntax = errors.New("fstio: syntax error")
)

// maxString bounds symbol and tag lengths written by Save and accepted by Load.
const maxString = 1 << 20

// TextOption configures ReadText and WriteText.
type TextOption func(*textOptions)

type textOptions struct {
	isyms, osyms *core.SymbolTable
	numeric      bool
}

// WithInputSymbols resolves input labels through t.
func WithInputSymbols(t *core.SymbolTable) TextOption {
	return func(o *textOptions) { o.isyms = t }
}

// WithOutputSymbols resolves output labels through t.
func WithOutputSymbols(t *core.SymbolTable) TextOption {
	return func(o *textOptions) { o.osyms = t }
}

// WithNumericLabels makes WriteText print integer labels even when the
// transducer carries symbol tables.
func WithNumericLabels() TextOption {
	return func(o *textOptions) { o.numeric = true }
}
