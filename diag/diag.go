// Package diag provides position-aware, log-and-continue diagnostics for
// every compiler stage: stages call Errorf and keep going, they never
// return an error for a per-node problem.
package diag

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Position is satisfied by any node that can report its source location for
// a diagnostic message.
type Position interface {
	String() string
}

// Debugf logs a debug-level message, similar to log.Debug.Printf.
func Debugf(pos Position, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Output(2, log.Debug, pos.String()+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Logf logs an info-level message.
func Logf(pos Position, format string, args ...interface{}) {
	if log.At(log.Info) {
		log.Output(2, log.Info, pos.String()+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Errorf logs an error and lets the caller continue. This is the dominant
// diagnostic primitive in this compiler: CST-AST mismatches, unknown
// grammar symbols, duplicate LIR labels, unresolved subscript symbols and
// return-type mismatches are all reported this way and never abort a run.
func Errorf(pos Position, format string, args ...interface{}) {
	log.Output(2, log.Error, pos.String()+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
}

// Panicf reports an invariant violation that cannot legitimately occur
// (e.g. a CFG with no entry block). Unlike Errorf, this is not a
// recoverable, per-node condition.
func Panicf(pos Position, format string, args ...interface{}) {
	panic(pos.String() + ": " + fmt.Sprintf(format, args...))
}

// Sink accumulates diagnostics for callers (tests, the CLI summary) that
// want the list rather than just the log stream.
type Sink struct {
	Messages []string
}

// Errorf records a message both to the log and to the sink, so a test can
// assert on exactly which diagnostics fired without scraping stderr.
func (s *Sink) Errorf(pos Position, format string, args ...interface{}) {
	msg := pos.String() + ": " + fmt.Sprintf(format, args...)
	s.Messages = append(s.Messages, msg)
	log.Output(2, log.Error, msg) // nolint: errcheck
}
