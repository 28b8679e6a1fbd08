package fstio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
)

// ReadSymbols parses a symbol table file of "symbol id" lines.
// Blank lines are skipped; "<eps>" must map to 0 if present.
func ReadSymbols(rd io.Reader) (*core.SymbolTable, error) {
	t := core.NewSymbolTable()
	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: symbols line %d: want 2 fields, got %d", ErrSyntax, line, len(fields))
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: symbols line %d: %w", ErrSyntax, line, err)
		}
		if err = t.Put(fields[0], id); err != nil {
			return nil, fmt.Errorf("%w: symbols line %d: %w", ErrSyntax, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// WriteSymbols writes t as "symbol\tid" lines in id order.
func WriteSymbols(w io.Writer, t *core.SymbolTable) error {
	bw := bufio.NewWriter(w)
	for _, s := range t.Symbols() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", s.Name, s.ID); err != nil {
			return err
		}
	}

	return bw.Flush()
}
