// SPDX-License-Identifier: MIT

// Package logging builds the structured logger shared by the request-facing
// packages (resolver, planner, server, cmd). Algorithm packages do not log.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for a format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// ErrUnknownLevel is returned for a level slog cannot parse.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Options selects level, format and destination of a logger.
type Options struct {
	Level  string    // "debug", "info", "warn", "error"; empty means info
	Format string    // FormatText or FormatJSON; empty means text
	Output io.Writer // nil means os.Stdout
}

// New returns a *slog.Logger configured by opts.
func New(opts Options) (*slog.Logger, error) {
	var level slog.Level
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, opts.Level)
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	hopts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, hopts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, hopts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OrDiscard returns l, or Discard() when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}

	return l
}
