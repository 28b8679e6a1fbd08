// Package fstio reads and writes transducers.
//
// Binary format (Save/Load). Integers are little-endian int32 unless noted;
// a string is a uint32 byte length followed by its UTF-8 bytes.
//
//	magic     uint32  0x54534657 (the bytes "WFST")
//	version   uint32  1
//	isyms     int32 count (-1 = no table), then count × (string, int32 id)
//	osyms     same as isyms
//	start     int32 (-1 = none)
//	semiring  string tag ("tropical", "log", "probability")
//	states    int32 count, then per state: final float32, id int32
//	arcs      per state in the same order: int32 count, then per arc:
//	          ilabel int32, olabel int32, weight float32, next int32
//	checksum  uint32 CRC32 (IEEE) of every preceding byte
//
// State ids must be dense and ascending. Load validates every field and the
// checksum and never returns a partially built transducer: on any failure
// the result is nil and the error wraps ErrMalformed (plus io.ErrUnexpectedEOF
// for truncation), ErrBadMagic, ErrVersion, ErrChecksum or ErrUnknownSemiring.
//
// SaveFile/LoadFile pick a codec by extension: ".zst" (zstd), ".lz4" (lz4
// frame) or plain.
//
// Text format (ReadText/WriteText) is the AT&T tabular format:
//
//	src dst ilabel olabel [weight]    one arc
//	state [weight]                    one final state
//
// The source of the first line is the start state. Omitted weights are
// One(). Labels are symbols when a table is supplied, integers otherwise.
// ReadSymbols/WriteSymbols handle "symbol id" table files.
package fstio
