// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the tagged loader error.
// Shape and index problems on Dense return the plain sentinels below.
// Loader failures return *LoadError, whose Kind names one of the loader
// categories; errors.Is(err, ErrX) works for both.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Loader messages are stable: they name the
// category only, never the offending line or token. Positions live in
// LoadError.Line / LoadError.Column.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates that a flat buffer does not match rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Loader sentinels, one per ErrorKind.
var (
	// ErrIO is returned when the file cannot be opened or read, or is not valid text.
	ErrIO = errors.New("matrix: could not read the file")

	// ErrEmptyInput is returned when the trimmed contents are the empty string.
	ErrEmptyInput = errors.New("matrix: file was empty")

	// ErrTokenParse is returned on the first comma-delimited token that is
	// not a decimal floating-point literal.
	ErrTokenParse = errors.New("matrix: could not parse token into a number")

	// ErrRaggedMatrix is returned when a row's token count differs from the first row's.
	ErrRaggedMatrix = errors.New("matrix: cannot create array with variable length columns")

	// ErrShapeLimit is returned when the input exceeds WithMaxRows/WithMaxColumns.
	ErrShapeLimit = errors.New("matrix: matrix exceeds configured shape limit")
)

// ErrorKind tags a loader failure.
type ErrorKind int

// Loader error kinds.
const (
	KindUnknown ErrorKind = iota
	KindIO
	KindEmptyInput
	KindTokenParse
	KindRaggedMatrix
	KindShapeLimit
)

// sentinel maps a kind to its package-level error.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindIO:
		return ErrIO
	case KindEmptyInput:
		return ErrEmptyInput
	case KindTokenParse:
		return ErrTokenParse
	case KindRaggedMatrix:
		return ErrRaggedMatrix
	case KindShapeLimit:
		return ErrShapeLimit
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "IoError"
	case KindEmptyInput:
		return "EmptyInput"
	case KindTokenParse:
		return "TokenParseError"
	case KindRaggedMatrix:
		return "RaggedMatrix"
	case KindShapeLimit:
		return "ShapeLimit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LoadError is the error returned by Load, Read and Parse.
//   - Kind is always set and decides what errors.Is matches.
//   - Line and Column are 1-based input positions (0 when not applicable).
//   - Cause is the underlying os/strconv error, if any. It is reachable via
//     errors.Unwrap / errors.As but never shows up in Error().
type LoadError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Cause  error
}

// Compile-time assertion.
var _ error = (*LoadError)(nil)

// Error returns the stable category message.
func (e *LoadError) Error() string {
	if s := e.Kind.sentinel(); s != nil {
		return s.Error()
	}

	return "matrix: load failed"
}

// Is reports whether target is the sentinel of e.Kind.
func (e *LoadError) Is(target error) bool {
	s := e.Kind.sentinel()

	return s != nil && target == s
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Cause }

// KindOf returns the ErrorKind carried by err, or KindUnknown when err is
// nil or not a loader error.
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}

	return KindUnknown
}

// newLoadError builds a *LoadError for the given kind and 1-based position.
func newLoadError(kind ErrorKind, line, col int, cause error) error {
	return &LoadError{Kind: kind, Line: line, Column: col, Cause: cause}
}
