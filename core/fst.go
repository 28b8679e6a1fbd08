// File: fst.go
// Role: The mutable Fst type, its constructor options and read-only getters.
// Concurrency:
//   - No locks. An Fst is owned by a single builder; share it only after Freeze.

package core

import "github.com/elliotfiske/cmu-lextool-sub001/semiring"

// state is one slot of the dense state slice.
type state struct {
	final float32
	arcs  []Arc
}

// Fst is a mutable weighted finite-state transducer.
type Fst struct {
	sr     semiring.Semiring
	start  StateID
	states []state
	isyms  *SymbolTable
	osyms  *SymbolTable
}

// FstOption configures an Fst at construction time.
type FstOption func(f *Fst)

// WithCapacity pre-allocates room for n states.
func WithCapacity(n int) FstOption {
	return func(f *Fst) {
		if n > 0 {
			f.states = make([]state, 0, n)
		}
	}
}

// WithInputSymbols binds the input symbol table.
func WithInputSymbols(t *SymbolTable) FstOption {
	return func(f *Fst) { f.isyms = t }
}

// WithOutputSymbols binds the output symbol table.
func WithOutputSymbols(t *SymbolTable) FstOption {
	return func(f *Fst) { f.osyms = t }
}

// New creates an empty transducer over sr with no start state.
// Complexity: O(1) plus any capacity requested.
func New(sr semiring.Semiring, opts ...FstOption) *Fst {
	f := &Fst{sr: sr, start: NoState}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Semiring implements Reader.
func (f *Fst) Semiring() semiring.Semiring { return f.sr }

// Start implements Reader.
func (f *Fst) Start() StateID { return f.start }

// NumStates implements Reader.
func (f *Fst) NumStates() int { return len(f.states) }

// Final implements Reader.
func (f *Fst) Final(s StateID) float32 { return f.states[s].final }

// NumArcs implements Reader.
func (f *Fst) NumArcs(s StateID) int { return len(f.states[s].arcs) }

// Arc implements Reader.
func (f *Fst) Arc(s StateID, i int) Arc { return f.states[s].arcs[i] }

// InputSymbols implements Reader.
func (f *Fst) InputSymbols() *SymbolTable { return f.isyms }

// OutputSymbols implements Reader.
func (f *Fst) OutputSymbols() *SymbolTable { return f.osyms }

// SetInputSymbols binds t as the input symbol table (nil clears it).
func (f *Fst) SetInputSymbols(t *SymbolTable) { f.isyms = t }

// SetOutputSymbols binds t as the output symbol table (nil clears it).
func (f *Fst) SetOutputSymbols(t *SymbolTable) { f.osyms = t }

// AsMutable returns r as an *Fst when r is mutable.
// It fails with ErrFrozen for a *Frozen (or any other read-only Reader) so
// that callers holding only a Reader can never mutate a shared snapshot.
func AsMutable(r Reader) (*Fst, error) {
	if f, ok := r.(*Fst); ok {
		return f, nil
	}

	return nil, ErrFrozen
}
