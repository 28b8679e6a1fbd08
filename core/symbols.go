// File: symbols.go
// Role: SymbolTable, the bijection between symbol strings and integer labels.
// Determinism:
//   - Symbols() returns entries ordered by label ascending.
// Invariants:
//   - "<eps>" <-> 0 is bound at construction and can never be rebound.
//   - byName and byID are always exact inverses of each other.

package core

import (
	"errors"
	"fmt"
	"sort"
)

// EpsilonSymbol is the canonical symbol of label 0.
const EpsilonSymbol = "<eps>"

// Sentinel errors for symbol tables.
var (
	// ErrSymbolConflict indicates that Put would bind a symbol or label that is already bound elsewhere.
	ErrSymbolConflict = errors.New("core: symbol conflict")

	// ErrEpsilonReserved indicates an attempt to rebind "<eps>" or label 0.
	ErrEpsilonReserved = errors.New("core: epsilon is reserved")

	// ErrBadSymbolID indicates a negative label.
	ErrBadSymbolID = errors.New("core: symbol id must be non-negative")
)

// Symbol is one (name, label) entry of a SymbolTable.
type Symbol struct {
	Name string
	ID   int
}

// SymbolTable maps symbol strings to labels and back.
// The zero value is an empty table; "<eps>" is bound to 0 on its first Add or
// Put. It is not safe for concurrent mutation.
type SymbolTable struct {
	byName map[string]int
	byID   map[int]string
	next   int // smallest label greater than every bound label
}

// NewSymbolTable returns a table holding only "<eps>" = 0.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{}
	t.init()

	return t
}

// init binds epsilon in a zero-value table.
func (t *SymbolTable) init() {
	if t.byName != nil {
		return
	}
	t.byName = map[string]int{EpsilonSymbol: Epsilon}
	t.byID = map[int]string{Epsilon: EpsilonSymbol}
	t.next = Epsilon + 1
}

// Add returns the label of sym, binding it to the next free label if absent.
// Complexity: O(1)
func (t *SymbolTable) Add(sym string) int {
	t.init()
	if id, ok := t.byName[sym]; ok {
		return id
	}
	id := t.next
	t.byName[sym] = id
	t.byID[id] = sym
	t.next++

	return id
}

// Put binds sym to id. Re-binding an existing identical pair is a no-op.
// Complexity: O(1)
func (t *SymbolTable) Put(sym string, id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrBadSymbolID, id)
	}
	t.init()
	if (sym == EpsilonSymbol) != (id == Epsilon) {
		return fmt.Errorf("%w: cannot bind %q to %d", ErrEpsilonReserved, sym, id)
	}
	if cur, ok := t.byName[sym]; ok {
		if cur == id {
			return nil
		}
		return fmt.Errorf("%w: %q already bound to %d", ErrSymbolConflict, sym, cur)
	}
	if cur, ok := t.byID[id]; ok {
		return fmt.Errorf("%w: %d already bound to %q", ErrSymbolConflict, id, cur)
	}
	t.byName[sym] = id
	t.byID[id] = sym
	if id >= t.next {
		t.next = id + 1
	}

	return nil
}

// Find returns the label of sym.
func (t *SymbolTable) Find(sym string) (int, bool) {
	id, ok := t.byName[sym]
	return id, ok
}

// Symbol returns the symbol bound to id.
func (t *SymbolTable) Symbol(id int) (string, bool) {
	sym, ok := t.byID[id]
	return sym, ok
}

// Len returns the number of bound symbols, epsilon included.
func (t *SymbolTable) Len() int { return len(t.byID) }

// Symbols returns every entry ordered by label.
// Complexity: O(n log n)
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(t.byID))
	for id, sym := range t.byID {
		out = append(out, Symbol{Name: sym, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Copy returns an independent copy of t. Copy of nil is nil.
func (t *SymbolTable) Copy() *SymbolTable {
	if t == nil {
		return nil
	}
	if t.byName == nil {
		return &SymbolTable{}
	}
	c := &SymbolTable{
		byName: make(map[string]int, len(t.byName)),
		byID:   make(map[int]string, len(t.byID)),
		next:   t.next,
	}
	for sym, id := range t.byName {
		c.byName[sym] = id
		c.byID[id] = sym
	}

	return c
}

// Equal reports whether t and o hold the same bindings. Two nil tables are equal.
func (t *SymbolTable) Equal(o *SymbolTable) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	if len(t.byID) != len(o.byID) {
		return false
	}
	for id, sym := range t.byID {
		if other, ok := o.byID[id]; !ok || other != sym {
			return false
		}
	}

	return true
}
