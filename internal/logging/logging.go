// Package logging wires logrus into the transducer operations.
//
// Operations take a logrus.FieldLogger through their options and report one
// Debug entry per call with the size of the result. By default they log to a
// discarding logger, so library users see nothing unless they opt in.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elliotfiske/cmu-lextool-sub001/core"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}()

// Discard returns the shared logger that drops every entry.
func Discard() logrus.FieldLogger { return discard }

// Enabled reports whether l would emit entries at level.
// Loggers other than *logrus.Logger and *logrus.Entry are assumed enabled.
func Enabled(l logrus.FieldLogger, level logrus.Level) bool {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.IsLevelEnabled(level)
	case *logrus.Entry:
		return v.Logger.IsLevelEnabled(level)
	}

	return true
}

// New builds a logger writing to w at the given level ("debug", "info", ...)
// in the given format (FormatText or FormatJSON).
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	switch format {
	case FormatText, "":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}

	return l, nil
}

// Done reports the completion of op with the size of its result.
// Nothing is computed when l has Debug disabled.
func Done(l logrus.FieldLogger, op string, result core.Reader, started time.Time) {
	if !Enabled(l, logrus.DebugLevel) {
		return
	}
	n := result.NumStates()
	arcs := core.NumArcsTotal(result)
	l.WithFields(logrus.Fields{
		"op":      op,
		"states":  n,
		"arcs":    arcs,
		"elapsed": time.Since(started),
	}).Debug("operation completed")
}
