// Command fstool applies transducer operations to files.
//
// Transducers are stored in the binary format of package fstio; a path ending
// in .zst or .lz4 is compressed accordingly. compile and print convert from
// and to the AT&T text format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
	"github.com/elliotfiske/cmu-lextool-sub001/fstio"
	"github.com/elliotfiske/cmu-lextool-sub001/internal/logging"
)

// Globals holds the flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" env:"FSTOOL_LOG_LEVEL" default:"warn" enum:"trace,debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})"`

	stderr io.Writer      `kong:"-"`
	log    *logrus.Logger `kong:"-"`
}

// Logger returns the logger configured by the global flags.
func (g *Globals) Logger() (*logrus.Logger, error) {
	if g.log != nil {
		return g.log, nil
	}
	w := g.stderr
	if w == nil {
		w = os.Stderr
	}
	l, err := logging.New(w, g.LogLevel, g.LogFormat)
	if err != nil {
		return nil, err
	}
	g.log = l

	return l, nil
}

// load reads the transducer stored at path.
func (g *Globals) load(path string) (*core.Fst, error) {
	f, err := fstio.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if l, lerr := g.Logger(); lerr == nil {
		l.WithFields(logrus.Fields{"path": path, "states": f.NumStates()}).Debug("transducer loaded")
	}

	return f, nil
}

// save writes r to path.
func (g *Globals) save(path string, r core.Reader) error {
	if err := fstio.SaveFile(path, r); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if l, err := g.Logger(); err == nil {
		l.WithFields(logrus.Fields{"path": path, "states": r.NumStates()}).Debug("transducer saved")
	}

	return nil
}

// CLI defines the command-line interface for fstool.
type CLI struct {
	Globals

	Compile      CompileCmd      `cmd:"" help:"Compile an AT&T text transducer into the binary format"`
	Print        PrintCmd        `cmd:"" help:"Print a transducer in AT&T text format"`
	Info         InfoCmd         `cmd:"" help:"Summarize a transducer"`
	Arcsort      ArcsortCmd      `cmd:"" help:"Sort the arcs of every state"`
	Project      ProjectCmd      `cmd:"" help:"Project a transducer onto its input or output labels"`
	Reverse      ReverseCmd      `cmd:"" help:"Reverse a transducer"`
	Compose      ComposeCmd      `cmd:"" help:"Compose two transducers"`
	Determinize  DeterminizeCmd  `cmd:"" help:"Determinize a weighted acceptor"`
	Rmepsilon    RmEpsilonCmd    `cmd:"" help:"Remove epsilon:epsilon arcs"`
	Connect      ConnectCmd      `cmd:"" help:"Remove states not on a successful path"`
	Shortestpath ShortestPathCmd `cmd:"" help:"Keep the n best successful paths"`
	Distance     DistanceCmd     `cmd:"" help:"Print the shortest distance of every state"`
}

// run parses args and executes the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	cli.stderr = stderr
	parser, err := kong.New(&cli,
		kong.Name("fstool"),
		kong.Description("Weighted finite-state transducer tool"),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fstool: %v\n", err)
		os.Exit(1)
	}
}
