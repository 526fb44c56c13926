// Package errs defines the error taxonomy shared by every sssom-core
// package: format errors, prefix errors, DSL (parse/runtime) errors, and
// I/O errors, each optionally carrying a line/column position.
package errs

import (
	"errors"
	"fmt"
)

// Kind distinguishes the broad category of an [Error], per spec.md §7.
type Kind int

const (
	// KindFormat covers malformed YAML headers, unknown required fields,
	// type mismatches, unparseable dates/numbers, numeric range
	// violations, unknown enum values, and invalid extension slot names.
	KindFormat Kind = iota
	// KindPrefix covers undeclared prefixes and unshortenable IRIs.
	KindPrefix
	// KindDSL covers SSSOM/T grammar failures and runtime failures
	// (assignment to a mandatory ID slot, regex compile failure, undefined
	// variable reference).
	KindDSL
	// KindIO covers underlying stream failures.
	KindIO
)

// String returns a human-readable name for k.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindPrefix:
		return "prefix"
	case KindDSL:
		return "dsl"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Pos locates an error within source text. A zero Pos means "unknown".
type Pos struct {
	Line   int
	Column int
}

// IsZero reports whether p carries no position information.
func (p Pos) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Pos) String() string {
	if p.IsZero() {
		return ""
	}

	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is the concrete error type returned by sssom-core operations that
// need to report a kind and an optional position alongside a cause.
type Error struct {
	Kind Kind
	Pos  Pos
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	pos := e.Pos.String()
	if pos != "" {
		pos = " at " + pos
	}

	if e.Err != nil {
		return fmt.Sprintf("%s error%s: %s: %v", e.Kind, pos, e.Msg, e.Err)
	}

	return fmt.Sprintf("%s error%s: %s", e.Kind, pos, e.Msg)
}

// Unwrap exposes the wrapped cause for [errors.Is]/[errors.As].
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an [Error] of the given kind with no position.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an [Error] of the given kind wrapping cause.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// At attaches a position to e and returns e for chaining.
func (e *Error) At(pos Pos) *Error {
	e.Pos = pos
	return e
}

// Is reports whether err is of the given kind, per [errors.Is] semantics
// for the sentinel-like behavior callers expect from [Kind] checks.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}
