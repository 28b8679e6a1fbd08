package fstio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// encoder writes little-endian fields and keeps the first error.
type encoder struct {
	w   io.Writer
	buf [4]byte
	err error
}

func (e *encoder) u32(v uint32) {
	if e.err != nil {
		return
	}
	binary.LittleEndian.PutUint32(e.buf[:], v)
	_, e.err = e.w.Write(e.buf[:])
}

func (e *encoder) i32(v int, what string) {
	if e.err == nil && (v < math.MinInt32 || v > math.MaxInt32) {
		e.err = fmt.Errorf("%w: %s %d", ErrRange, what, v)
	}
	e.u32(uint32(int32(v)))
}

func (e *encoder) f32(v float32) { e.u32(math.Float32bits(v)) }

func (e *encoder) str(s string) {
	if e.err == nil && len(s) > maxString {
		e.err = fmt.Errorf("%w: string of %d bytes", ErrRange, len(s))
	}
	e.u32(uint32(len(s)))
	if e.err == nil {
		_, e.err = io.WriteString(e.w, s)
	}
}

func (e *encoder) symbols(t *core.SymbolTable) {
	if t == nil {
		e.i32(-1, "symbol count")
		return
	}
	syms := t.Symbols()
	e.i32(len(syms), "symbol count")
	for _, s := range syms {
		e.str(s.Name)
		e.i32(s.ID, "symbol id")
	}
}

// Save writes r to w in the binary format.
func Save(w io.Writer, r core.Reader) error {
	bw := bufio.NewWriter(w)
	sum := crc32.NewIEEE()
	e := &encoder{w: io.MultiWriter(bw, sum)}

	// 1) Header, tables, start and semiring
	e.u32(Magic)
	e.u32(Version)
	e.symbols(r.InputSymbols())
	e.symbols(r.OutputSymbols())
	e.i32(int(r.Start()), "start")
	e.str(r.Semiring().Name())

	// 2) States
	n := r.NumStates()
	e.i32(n, "state count")
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		e.f32(r.Final(s))
		e.i32(int(s), "state id")
	}

	// 3) Arcs
	for s = 0; s < core.StateID(n); s++ {
		k := r.NumArcs(s)
		e.i32(k, "arc count")
		for i := 0; i < k; i++ {
			a := r.Arc(s, i)
			e.i32(a.ILabel, "input label")
			e.i32(a.OLabel, "output label")
			e.f32(a.Weight)
			e.i32(int(a.Next), "next state")
		}
	}
	if e.err != nil {
		return e.err
	}

	// 4) Trailer, outside the checksum
	binary.LittleEndian.PutUint32(e.buf[:], sum.Sum32())
	if _, err := bw.Write(e.buf[:]); err != nil {
		return err
	}

	return bw.Flush()
}

// decoder reads little-endian fields and keeps the first error.
type decoder struct {
	r   io.Reader
	buf [4]byte
	err error
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *decoder) u32(what string) uint32 {
	if d.err != nil {
		return 0
	}
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.fail(fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err))
		return 0
	}

	return binary.LittleEndian.Uint32(d.buf[:])
}

func (d *decoder) i32(what string) int { return int(int32(d.u32(what))) }

func (d *decoder) f32(what string) float32 { return math.Float32frombits(d.u32(what)) }

// count reads a non-negative int32.
func (d *decoder) count(what string) int {
	n := d.i32(what)
	if n < 0 {
		d.fail(fmt.Errorf("%w: negative %s %d", ErrMalformed, what, n))
		return 0
	}

	return n
}

func (d *decoder) str(what string) string {
	n := d.u32(what + " length")
	if d.err != nil {
		return ""
	}
	if n > maxString {
		d.fail(fmt.Errorf("%w: %s length %d", ErrMalformed, what, n))
		return ""
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(d.r, b); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.fail(fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, err))
		return ""
	}

	return string(b)
}

func (d *decoder) symbols(what string) *core.SymbolTable {
	n := d.i32(what + " count")
	if d.err != nil || n == -1 {
		return nil
	}
	if n < 0 {
		d.fail(fmt.Errorf("%w: %s count %d", ErrMalformed, what, n))
		return nil
	}
	t := core.NewSymbolTable()
	for i := 0; i < n && d.err == nil; i++ {
		name := d.str(what + " symbol")
		id := d.i32(what + " id")
		if d.err != nil {
			break
		}
		if err := t.Put(name, id); err != nil {
			d.fail(fmt.Errorf("%w: %s: %w", ErrMalformed, what, err))
		}
	}

	return t
}

// Load reads a transducer written by Save. On any error it returns nil.
//
// Steps:
//  1. Header: magic, then version.
//  2. Symbol tables, start id and semiring tag.
//  3. States with dense ascending ids, then their arcs.
//  4. Start validation and the checksum trailer.
func Load(rd io.Reader) (*core.Fst, error) {
	br := bufio.NewReader(rd)
	sum := crc32.NewIEEE()
	d := &decoder{r: io.TeeReader(br, sum)}

	// 1) Header
	if m := d.u32("magic"); d.err == nil && m != Magic {
		return nil, fmt.Errorf("%w: %#08x", ErrBadMagic, m)
	}
	if v := d.u32("version"); d.err == nil && v != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}

	// 2) Tables, start, semiring
	isyms := d.symbols("input symbols")
	osyms := d.symbols("output symbols")
	start := core.StateID(d.i32("start"))
	tag := d.str("semiring tag")
	if d.err != nil {
		return nil, d.err
	}
	sr, err := semiring.ByName(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownSemiring, err)
	}
	f := core.New(sr, core.WithInputSymbols(isyms), core.WithOutputSymbols(osyms))

	// 3) States, then arcs
	n := d.count("state count")
	for i := 0; i < n && d.err == nil; i++ {
		final := d.f32("final weight")
		id := d.i32("state id")
		if d.err != nil {
			break
		}
		switch {
		case id >= 0 && id < i:
			d.fail(fmt.Errorf("%w: %w: %d", ErrMalformed, core.ErrDuplicateState, id))
		case id != i:
			d.fail(fmt.Errorf("%w: state id %d at position %d", ErrMalformed, id, i))
		default:
			s := f.AddState()
			if err = f.SetFinal(s, final); err != nil {
				d.fail(fmt.Errorf("%w: %w", ErrMalformed, err))
			}
		}
	}
	var s core.StateID
	for s = 0; s < core.StateID(n) && d.err == nil; s++ {
		k := d.count("arc count")
		for i := 0; i < k && d.err == nil; i++ {
			a := core.Arc{
				ILabel: d.i32("input label"),
				OLabel: d.i32("output label"),
				Weight: d.f32("arc weight"),
				Next:   core.StateID(d.i32("next state")),
			}
			if d.err != nil {
				break
			}
			if a.ILabel < 0 || a.OLabel < 0 {
				d.fail(fmt.Errorf("%w: negative label on state %d", ErrMalformed, s))
				break
			}
			if err = f.AddArc(s, a); err != nil {
				d.fail(fmt.Errorf("%w: %w", ErrMalformed, err))
			}
		}
	}
	if d.err != nil {
		return nil, d.err
	}

	// 4) Start and trailer
	if start != core.NoState {
		if err = f.SetStart(start); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}
	want := sum.Sum32()
	d.r = br
	got := d.u32("checksum")
	if d.err != nil {
		return nil, d.err
	}
	if got != want {
		return nil, fmt.Errorf("%w: stored %#08x, computed %#08x", ErrChecksum, got, want)
	}

	return f, nil
}
