// Package wfst is a toolkit for building, combining and searching weighted
// finite-state transducers over float32 semirings.
//
// 🚀 What is in the box?
//
//	• Semirings: tropical, log and probability weights
//	• Core primitives: mutable Fst, immutable Frozen, symbol tables
//	• Rewrites: ArcSort, Project, Reverse, Connect
//	• Composition with the 3-state epsilon filter
//	• Weighted determinization and epsilon removal
//	• Shortest distance and n-shortest paths (with tie keeping)
//	• Persistence: checksummed binary, zstd/lz4 files, AT&T text
//
// Every operation reads its input through core.Reader and returns a new
// *core.Fst; inputs are never modified. Options follow one pattern across
// packages (WithLogger, WithDelta, ...), and operations log to a discarding
// logrus logger unless one is supplied.
//
// Subpackages:
//
//	semiring/     weight algebras
//	core/         Fst, Frozen, SymbolTable, structural equality
//	arcsort/      stable arc sorting by input or output label
//	project/      input/output projection
//	reverse/      path reversal with a super-start state
//	connect/      accessibility and trimming
//	compose/      matched composition with epsilon filter
//	determinize/  weighted subset construction for acceptors
//	rmepsilon/    epsilon:epsilon removal
//	shortestpath/ shortest distance, n-best paths
//	fstio/        binary and text formats
//	cmd/fstool    command line front end
//
// Quick ASCII example:
//
//	    ┌──a:x/0.5──┐
//	  (0)          ((1))
//	    └──b:y/1.5──┘
//
//	is a two-state transducer with two competing arcs into final state 1.
//
//	go install github.com/elliotfiske/cmu-lextool-sub001/cmd/fstool@latest
package wfst
