// File: frozen.go
// Role: Frozen, the immutable contiguous snapshot of a transducer.
// Concurrency:
//   - A Frozen never changes after Freeze returns; any number of goroutines
//     may read it concurrently.

package core

import (
	"fmt"

	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
)

// Frozen is a read-only transducer. All arcs live in one slice; the arcs of
// state s are arcs[offsets[s]:offsets[s+1]].
// It deliberately has no mutating methods.
type Frozen struct {
	sr      semiring.Semiring
	start   StateID
	finals  []float32
	offsets []int
	arcs    []Arc
	isyms   *SymbolTable
	osyms   *SymbolTable
}

// Freeze snapshots r into a Frozen. Freezing a Frozen returns it unchanged.
// Complexity: O(V + E)
func Freeze(r Reader) *Frozen {
	if fz, ok := r.(*Frozen); ok {
		return fz
	}

	n := r.NumStates()
	fz := &Frozen{
		sr:      r.Semiring(),
		start:   r.Start(),
		finals:  make([]float32, n),
		offsets: make([]int, n+1),
		arcs:    make([]Arc, 0, NumArcsTotal(r)),
		isyms:   r.InputSymbols().Copy(),
		osyms:   r.OutputSymbols().Copy(),
	}
	var s StateID
	for s = 0; s < StateID(n); s++ {
		fz.finals[s] = r.Final(s)
		fz.offsets[s] = len(fz.arcs)
		k := r.NumArcs(s)
		for i := 0; i < k; i++ {
			fz.arcs = append(fz.arcs, r.Arc(s, i))
		}
	}
	fz.offsets[n] = len(fz.arcs)

	return fz
}

// Semiring implements Reader.
func (fz *Frozen) Semiring() semiring.Semiring { return fz.sr }

// Start implements Reader.
func (fz *Frozen) Start() StateID { return fz.start }

// NumStates implements Reader.
func (fz *Frozen) NumStates() int { return len(fz.finals) }

// Final implements Reader.
func (fz *Frozen) Final(s StateID) float32 { return fz.finals[s] }

// NumArcs implements Reader.
func (fz *Frozen) NumArcs(s StateID) int { return fz.offsets[s+1] - fz.offsets[s] }

// Arc implements Reader. Like (*Fst).Arc it panics when i is out of range
// for s.
func (fz *Frozen) Arc(s StateID, i int) Arc {
	if i < 0 || i >= fz.NumArcs(s) {
		panic(fmt.Sprintf("core: arc index %d out of range for state %d with %d arcs", i, s, fz.NumArcs(s)))
	}

	return fz.arcs[fz.offsets[s]+i]
}

// InputSymbols returns a copy of the input symbol table, or nil.
// A copy is returned so the snapshot cannot be altered through it.
func (fz *Frozen) InputSymbols() *SymbolTable { return fz.isyms.Copy() }

// OutputSymbols returns a copy of the output symbol table, or nil.
func (fz *Frozen) OutputSymbols() *SymbolTable { return fz.osyms.Copy() }

// NumArcsTotal returns the total arc count in O(1).
func (fz *Frozen) NumArcsTotal() int { return len(fz.arcs) }
