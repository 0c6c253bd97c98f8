// SPDX-License-Identifier: MIT

package resolver

import (
	"errors"

	"golang.org/x/exp/slog"
)

// ErrNilGraph is returned by New for a nil graph.
var ErrNilGraph = errors.New("resolver: graph is nil")

// ErrBadAlias is returned by New when an alias is empty, shadows a graph
// vertex, or points at a code that is not a graph vertex.
var ErrBadAlias = errors.New("resolver: bad alias")

// Method tells which rule produced a Resolution.
type Method int

const (
	// MethodUnresolved: no rule matched; Code echoes the input.
	MethodUnresolved Method = iota
	// MethodExact: the input is a graph vertex.
	MethodExact
	// MethodAlias: the input is a key of the alias table.
	MethodAlias
	// MethodPrefix: the first graph vertex (in graph order) starting with the input.
	MethodPrefix
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodAlias:
		return "alias"
	case MethodPrefix:
		return "prefix"
	default:
		return "unresolved"
	}
}

// Resolution is the outcome of resolving one input code.
type Resolution struct {
	Input  string
	Code   string
	Method Method
}

// Resolved reports whether Code names a graph vertex.
func (r Resolution) Resolved() bool { return r.Method != MethodUnresolved }

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report prefix guesses.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}
