package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/elliotfiske/cmu-lextool-sub001/arcsort"
	"github.com/elliotfiske/cmu-lextool-sub001/compose"
	"github.com/elliotfiske/cmu-lextool-sub001/connect"
	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/determinize"
	"github.com/elliotfiske/cmu-lextool-sub001/fstio"
	"github.com/elliotfiske/cmu-lextool-sub001/project"
	"github.com/elliotfiske/cmu-lextool-sub001/reverse"
	"github.com/elliotfiske/cmu-lextool-sub001/rmepsilon"
	"github.com/elliotfiske/cmu-lextool-sub001/semiring"
	"github.com/elliotfiske/cmu-lextool-sub001/shortestpath"
)

// Symbols names optional symbol table files.
type Symbols struct {
	ISymbols string `name:"isymbols" help:"Input symbol table" type:"existingfile"`
	OSymbols string `name:"osymbols" help:"Output symbol table" type:"existingfile"`
}

// options loads the named tables as text options.
func (s Symbols) options() ([]fstio.TextOption, error) {
	var opts []fstio.TextOption
	if s.ISymbols != "" {
		t, err := readSymbolsFile(s.ISymbols)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fstio.WithInputSymbols(t))
	}
	if s.OSymbols != "" {
		t, err := readSymbolsFile(s.OSymbols)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fstio.WithOutputSymbols(t))
	}

	return opts, nil
}

func readSymbolsFile(path string) (*core.SymbolTable, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	t, err := fstio.ReadSymbols(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// CompileCmd converts AT&T text to the binary format.
type CompileCmd struct {
	Symbols
	Semiring string `default:"tropical" enum:"tropical,log,probability" help:"Weight semiring (${enum})"`
	In       string `arg:"" help:"Text transducer" type:"existingfile"`
	Out      string `arg:"" help:"Output transducer" type:"path"`
}

func (c *CompileCmd) Run(g *Globals) error {
	sr, err := semiring.ByName(c.Semiring)
	if err != nil {
		return err
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	fh, err := os.Open(c.In)
	if err != nil {
		return err
	}
	defer fh.Close()

	f, err := fstio.ReadText(fh, sr, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", c.In, err)
	}

	return g.save(c.Out, f)
}

// PrintCmd writes a transducer as AT&T text.
type PrintCmd struct {
	Symbols
	Numeric bool   `help:"Print integer labels even when symbol tables are present"`
	In      string `arg:"" help:"Transducer" type:"existingfile"`
}

func (c *PrintCmd) Run(g *Globals, w io.Writer) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	opts, err := c.options()
	if err != nil {
		return err
	}
	if c.Numeric {
		opts = append(opts, fstio.WithNumericLabels())
	}

	return fstio.WriteText(w, f, opts...)
}

// InfoCmd prints summary properties.
type InfoCmd struct {
	In string `arg:"" help:"Transducer" type:"existingfile"`
}

func (c *InfoCmd) Run(g *Globals, w io.Writer) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}

	finals, eps := 0, 0
	n := f.NumStates()
	var s core.StateID
	for s = 0; s < core.StateID(n); s++ {
		if core.IsFinal(f, s) {
			finals++
		}
		for i := 0; i < f.NumArcs(s); i++ {
			if a := f.Arc(s, i); a.ILabel == core.Epsilon && a.OLabel == core.Epsilon {
				eps++
			}
		}
	}
	start := "none"
	if f.Start() != core.NoState {
		start = strconv.Itoa(int(f.Start()))
	}
	tableSize := func(t *core.SymbolTable) string {
		if t == nil {
			return "none"
		}
		return strconv.Itoa(t.Len())
	}

	rows := []struct {
		key string
		val any
	}{
		{"semiring", f.Semiring().Name()},
		{"start", start},
		{"states", n},
		{"arcs", core.NumArcsTotal(f)},
		{"final states", finals},
		{"epsilon arcs", eps},
		{"acceptor", core.IsAcceptor(f)},
		{"input sorted", arcsort.IsSorted(f, arcsort.ILabel)},
		{"output sorted", arcsort.IsSorted(f, arcsort.OLabel)},
		{"accessible", connect.Accessible(f).GetCardinality()},
		{"coaccessible", connect.Coaccessible(f).GetCardinality()},
		{"input symbols", tableSize(f.InputSymbols())},
		{"output symbols", tableSize(f.OutputSymbols())},
	}
	for _, r := range rows {
		if _, err = fmt.Fprintf(w, "%-16s%v\n", r.key, r.val); err != nil {
			return err
		}
	}

	return nil
}

// ArcsortCmd sorts arcs by input or output label.
type ArcsortCmd struct {
	Type string `default:"ilabel" enum:"ilabel,olabel" help:"Sort key (${enum})"`
	In   string `arg:"" help:"Transducer" type:"existingfile"`
	Out  string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ArcsortCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	cmp := arcsort.ILabel
	if c.Type == "olabel" {
		cmp = arcsort.OLabel
	}

	return g.save(c.Out, arcsort.Sort(f, cmp, arcsort.WithLogger(l)))
}

// ProjectCmd keeps one side of every arc.
type ProjectCmd struct {
	Output bool   `help:"Project onto output labels instead of input labels"`
	In     string `arg:"" help:"Transducer" type:"existingfile"`
	Out    string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ProjectCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	dir := project.Input
	if c.Output {
		dir = project.Output
	}

	return g.save(c.Out, project.Project(f, dir, project.WithLogger(l)))
}

// ReverseCmd reverses every path.
type ReverseCmd struct {
	In  string `arg:"" help:"Transducer" type:"existingfile"`
	Out string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ReverseCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	res, err := reverse.Reverse(f, reverse.WithLogger(l))
	if err != nil {
		return err
	}

	return g.save(c.Out, res)
}

// ComposeCmd composes A with B. B is input-sorted first unless it already is.
type ComposeCmd struct {
	NoConnect bool   `name:"no-connect" help:"Keep states that are not on a successful path"`
	A         string `arg:"" help:"Left transducer" type:"existingfile"`
	B         string `arg:"" help:"Right transducer" type:"existingfile"`
	Out       string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ComposeCmd) Run(g *Globals) error {
	a, err := g.load(c.A)
	if err != nil {
		return err
	}
	b, err := g.load(c.B)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	if !arcsort.IsSorted(b, arcsort.ILabel) {
		b = arcsort.Sort(b, arcsort.ILabel, arcsort.WithLogger(l))
	}
	opts := []compose.Option{compose.WithLogger(l)}
	if c.NoConnect {
		opts = append(opts, compose.WithoutConnect())
	}
	res, err := compose.Compose(a, b, a.Semiring(), opts...)
	if err != nil {
		return err
	}

	return g.save(c.Out, res)
}

// DeterminizeCmd determinizes a weighted acceptor.
type DeterminizeCmd struct {
	Delta     float64 `help:"Quantization step for residual weights (0 for the default)"`
	MaxStates int     `name:"max-states" help:"Fail once the result has this many states (0 for no limit)"`
	In        string  `arg:"" help:"Acceptor" type:"existingfile"`
	Out       string  `arg:"" help:"Output acceptor" type:"path"`
}

func (c *DeterminizeCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	res, err := determinize.Determinize(f,
		determinize.WithDelta(c.Delta),
		determinize.WithMaxStates(c.MaxStates),
		determinize.WithLogger(l),
	)
	if err != nil {
		return err
	}

	return g.save(c.Out, res)
}

// RmEpsilonCmd removes epsilon:epsilon arcs.
type RmEpsilonCmd struct {
	NoConnect bool   `name:"no-connect" help:"Keep states that are not on a successful path"`
	In        string `arg:"" help:"Transducer" type:"existingfile"`
	Out       string `arg:"" help:"Output transducer" type:"path"`
}

func (c *RmEpsilonCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	opts := []rmepsilon.Option{rmepsilon.WithLogger(l)}
	if c.NoConnect {
		opts = append(opts, rmepsilon.WithoutConnect())
	}

	return g.save(c.Out, rmepsilon.RmEpsilon(f, opts...))
}

// ConnectCmd trims useless states.
type ConnectCmd struct {
	In  string `arg:"" help:"Transducer" type:"existingfile"`
	Out string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ConnectCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}

	return g.save(c.Out, connect.Connect(f, connect.WithLogger(l)))
}

// ShortestPathCmd keeps the n best paths.
type ShortestPathCmd struct {
	N        int    `name:"n" default:"1" help:"Number of paths"`
	KeepTies bool   `name:"keep-ties" help:"Also keep paths tied with the n-th best"`
	MaxPaths int    `name:"max-paths" help:"Fail after accepting this many paths (0 for the default)"`
	In       string `arg:"" help:"Transducer" type:"existingfile"`
	Out      string `arg:"" help:"Output transducer" type:"path"`
}

func (c *ShortestPathCmd) Run(g *Globals) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	opts := []shortestpath.Option{shortestpath.WithLogger(l)}
	if c.MaxPaths > 0 {
		opts = append(opts, shortestpath.WithMaxPaths(c.MaxPaths))
	}
	res, err := shortestpath.NShortestPaths(f, c.N, c.KeepTies, opts...)
	if err != nil {
		return err
	}

	return g.save(c.Out, res)
}

// DistanceCmd prints the shortest distance from the start, or to the final states.
type DistanceCmd struct {
	Reverse bool   `help:"Distance to the final states instead of from the start"`
	In      string `arg:"" help:"Transducer" type:"existingfile"`
}

func (c *DistanceCmd) Run(g *Globals, w io.Writer) error {
	f, err := g.load(c.In)
	if err != nil {
		return err
	}
	l, err := g.Logger()
	if err != nil {
		return err
	}
	d, err := shortestpath.ShortestDistance(f, c.Reverse, shortestpath.WithLogger(l))
	if err != nil {
		return err
	}
	for s, v := range d {
		if _, err = fmt.Fprintf(w, "%d\t%s\n", s, strconv.FormatFloat(float64(v), 'g', -1, 32)); err != nil {
			return err
		}
	}

	return nil
}
