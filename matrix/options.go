// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the loader. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Notes:
//   - Options never change the file format: rows are '\n', columns are ','.
//   - Numeric policy is explicit: by default every literal strconv accepts as
//     a decimal float is kept, including NaN and ±Inf. WithFiniteOnly rejects them.
//   - Shape limits are off by default (0 = unlimited).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFiniteOnly toggles rejection of NaN/±Inf tokens during parsing.
	DefaultFiniteOnly = false

	// DefaultMaxRows caps the number of rows; 0 means unlimited.
	DefaultMaxRows = 0

	// DefaultMaxColumns caps the number of columns; 0 means unlimited.
	DefaultMaxColumns = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxRowsInvalid    = "matrix: WithMaxRows: n must be >= 0"
	panicMaxColumnsInvalid = "matrix: WithMaxColumns: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	finiteOnly bool // DefaultFiniteOnly
	maxRows    int  // DefaultMaxRows
	maxCols    int  // DefaultMaxColumns
}

// ---------- Constructors (WithX) ----------

// WithFiniteOnly rejects NaN, +Inf and -Inf values, including literals whose
// magnitude overflows float64 (e.g. "1e400"). A rejected token reports
// KindTokenParse.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithAllowNonFinite restores the default: NaN and ±Inf literals are kept.
func WithAllowNonFinite() Option {
	return func(o *Options) { o.finiteOnly = false }
}

// WithMaxRows limits the number of rows a load may produce.
// Implementation:
//   - Stage 1: validate n ≥ 0 (0 = unlimited).
//   - Stage 2: return a setter that writes n into Options.
//
// Errors:
//   - Panics with a stable message when n < 0.
//
// Notes:
//   - Exceeding the limit reports KindShapeLimit at the first extra row.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) { o.maxRows = n }
}

// WithMaxColumns limits the number of columns; see WithMaxRows.
// The limit is checked against the first row, which fixes the column count.
func WithMaxColumns(n int) Option {
	if n < 0 {
		panic(panicMaxColumnsInvalid)
	}

	return func(o *Options) { o.maxCols = n }
}

// --------------------------- Option Resolution ---------------------------

// NewLoaderOptions resolves option setters against documented defaults.
// Useful for inspecting the effective configuration in tests and tooling.
func NewLoaderOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// FiniteOnly reports whether NaN/±Inf tokens are rejected.
func (o Options) FiniteOnly() bool { return o.finiteOnly }

// MaxRows returns the row limit (0 = unlimited).
func (o Options) MaxRows() int { return o.maxRows }

// MaxColumns returns the column limit (0 = unlimited).
func (o Options) MaxColumns() int { return o.maxCols }

// String implements fmt.Stringer for debugging.
func (o Options) String() string {
	return fmt.Sprintf("Options{finiteOnly:%t maxRows:%d maxCols:%d}",
		o.finiteOnly, o.maxRows, o.maxCols)
}

// defaultOptions returns the documented defaults.
// Keep this in sync with constants above.
func defaultOptions() Options {
	return Options{
		finiteOnly: DefaultFiniteOnly,
		maxRows:    DefaultMaxRows,
		maxCols:    DefaultMaxColumns,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins); nil setters are skipped.
// Complexity: O(k) for k=len(opts).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
