// Package trace implements the single fatal-diagnostic funnel the
// core reports through: Trace::error(message, node) in the consumed
// interface, surfaced here as a panic recovered at each subsystem's
// one exported boundary and converted into a returned error.
package trace

import (
	"fmt"

	"semcore/pkg/ast"
)

// Error is the value every fatal diagnostic carries: a message and
// the node it concerns. It implements error so a recovered panic can
// be returned directly from an exported boundary function.
type Error struct {
	Message string
	Node    ast.Node
}

func (e *Error) Error() string {
	if e.Node == nil {
		return e.Message
	}
	loc := e.Node.GetLocation()
	if loc.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, e.Message)
}

// Fatal raises a fatal diagnostic, unwinding to the nearest Recover.
// This is the core's only diagnostic call form (§6): callers never
// construct a *Error to return directly.
func Fatal(message string, node ast.Node) {
	panic(&Error{Message: message, Node: node})
}

// Fatalf is Fatal with fmt.Sprintf-style formatting.
func Fatalf(node ast.Node, format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...), node)
}

// Recover converts a panic carrying a *Error into an error return; any
// other panic value is re-raised, since only this package's own Fatal
// calls are expected to unwind through a recovery boundary.
func Recover(err *error) {
	if r := recover(); r != nil {
		if traceErr, ok := r.(*Error); ok {
			*err = traceErr
			return
		}
		panic(r)
	}
}
