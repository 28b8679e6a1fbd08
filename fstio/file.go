package fstio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
)

// Codec names the compression applied by SaveFile and LoadFile.
type Codec int

const (
	// CodecNone stores the binary format as is.
	CodecNone Codec = iota
	// CodecZstd wraps the stream in a zstd frame.
	CodecZstd
	// CodecLZ4 wraps the stream in an lz4 frame.
	CodecLZ4
)

// CodecFor returns the codec implied by the extension of path.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	}

	return CodecNone
}

// SaveFile writes r to path, compressed according to CodecFor(path).
func SaveFile(path string, r core.Reader) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	switch CodecFor(path) {
	case CodecZstd:
		zw, zerr := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zerr != nil {
			return zerr
		}
		if err = Save(zw, r); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	case CodecLZ4:
		lw := lz4.NewWriter(f)
		if err = Save(lw, r); err != nil {
			_ = lw.Close()
			return err
		}
		return lw.Close()
	}

	return Save(f, r)
}

// LoadFile reads a transducer from path, decompressing according to CodecFor(path).
func LoadFile(path string) (*core.Fst, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rd io.Reader = f
	switch CodecFor(path) {
	case CodecZstd:
		zr, zerr := zstd.NewReader(f)
		if zerr != nil {
			return nil, zerr
		}
		defer zr.Close()
		rd = zr
	case CodecLZ4:
		rd = lz4.NewReader(f)
	}

	return Load(rd)
}
