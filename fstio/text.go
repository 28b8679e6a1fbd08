package fstio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// textReader builds a transducer line by line.
type textReader struct {
	f    *core.Fst
	opts textOptions
	line int
}

// state returns the state named by field, growing the state set to include it.
func (t *textReader) state(field string) (core.StateID, error) {
	id, err := strconv.Atoi(field)
	if err != nil || id < 0 {
		return core.NoState, fmt.Errorf("%w: line %d: bad state %q", ErrSyntax, t.line, field)
	}
	for t.f.NumStates() <= id {
		t.f.AddState()
	}

	return core.StateID(id), nil
}

// label resolves field through syms, or as an integer when syms is nil.
func (t *textReader) label(field string, syms *core.SymbolTable) (int, error) {
	if syms != nil {
		if id, ok := syms.Find(field); ok {
			return id, nil
		}
		return 0, fmt.Errorf("%w: line %d: unknown symbol %q", ErrSyntax, t.line, field)
	}
	id, err := strconv.Atoi(field)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: line %d: bad label %q", ErrSyntax, t.line, field)
	}

	return id, nil
}

// weight parses an optional weight field, One() when absent.
func (t *textReader) weight(fields []string, at int) (float32, error) {
	if len(fields) <= at {
		return t.f.Semiring().One(), nil
	}
	w, err := strconv.ParseFloat(fields[at], 32)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: bad weight %q", ErrSyntax, t.line, fields[at])
	}

	return float32(w), nil
}

// parse applies one non-empty line.
func (t *textReader) parse(fields []string) error {
	switch len(fields) {
	case 1, 2:
		s, err := t.state(fields[0])
		if err != nil {
			return err
		}
		w, err := t.weight(fields, 1)
		if err != nil {
			return err
		}
		if t.f.Start() == core.NoState {
			_ = t.f.SetStart(s)
		}
		if err = t.f.SetFinal(s, w); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrSyntax, t.line, err)
		}
	case 4, 5:
		src, err := t.state(fields[0])
		if err != nil {
			return err
		}
		dst, err := t.state(fields[1])
		if err != nil {
			return err
		}
		in, err := t.label(fields[2], t.opts.isyms)
		if err != nil {
			return err
		}
		out, err := t.label(fields[3], t.opts.osyms)
		if err != nil {
			return err
		}
		w, err := t.weight(fields, 4)
		if err != nil {
			return err
		}
		if t.f.Start() == core.NoState {
			_ = t.f.SetStart(src)
		}
		if err = t.f.AddArc(src, core.Arc{ILabel: in, OLabel: out, Weight: w, Next: dst}); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrSyntax, t.line, err)
		}
	default:
		return fmt.Errorf("%w: line %d: want 1, 2, 4 or 5 fields, got %d", ErrSyntax, t.line, len(fields))
	}

	return nil
}

// ReadText parses an AT&T text transducer over sr.
// The symbol tables given as options are attached to the result.
func ReadText(rd io.Reader, sr semiring.Semiring, opts ...TextOption) (*core.Fst, error) {
	var o textOptions
	for _, opt := range opts {
		opt(&o)
	}
	t := &textReader{
		f:    core.New(sr, core.WithInputSymbols(o.isyms.Copy()), core.WithOutputSymbols(o.osyms.Copy())),
		opts: o,
	}
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), maxString)
	for sc.Scan() {
		t.line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := t.parse(fields); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return t.f, nil
}

// formatWeight renders w in the shortest form that parses back to the same float32.
func formatWeight(w float32) string {
	return strconv.FormatFloat(float64(w), 'g', -1, 32)
}

// WriteText prints r in AT&T text format: the start state first, then the
// other states in id order; each state's arcs, then its final line.
// Weights equal to One() are omitted. Labels print as symbols when r (or an
// option) supplies a table, unless WithNumericLabels is given.
func WriteText(w io.Writer, r core.Reader, opts ...TextOption) error {
	o := textOptions{isyms: r.InputSymbols(), osyms: r.OutputSymbols()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.numeric {
		o.isyms, o.osyms = nil, nil
	}
	label := func(l int, syms *core.SymbolTable) string {
		if syms != nil {
			if s, ok := syms.Symbol(l); ok {
				return s
			}
		}
		return strconv.Itoa(l)
	}

	one := r.Semiring().One()
	bw := bufio.NewWriter(w)
	emit := func(s core.StateID) {
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			a := r.Arc(s, i)
			fmt.Fprintf(bw, "%d\t%d\t%s\t%s", s, a.Next, label(a.ILabel, o.isyms), label(a.OLabel, o.osyms))
			if a.Weight != one {
				fmt.Fprintf(bw, "\t%s", formatWeight(a.Weight))
			}
			bw.WriteByte('\n')
		}
		if !core.IsFinal(r, s) {
			return
		}
		fmt.Fprintf(bw, "%d", s)
		if f := r.Final(s); f != one {
			fmt.Fprintf(bw, "\t%s", formatWeight(f))
		}
		bw.WriteByte('\n')
	}

	start := r.Start()
	if start != core.NoState {
		emit(start)
	}
	n := r.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		if s != start {
			emit(s)
		}
	}

	return bw.Flush()
}
