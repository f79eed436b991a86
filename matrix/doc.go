// Package matrix loads plain-text files into dense float64 matrices.
//
// The matrix package provides:
//
//   - Load / Read / Parse, which turn comma-separated rows of decimal
//     numbers into a rectangular *Dense, validating that every row has the
//     same width as the first.
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - A tagged error type (*LoadError, ErrorKind) plus one sentinel per
//     failure category, so callers branch with errors.Is instead of
//     matching message text.
//   - ToGonum / FromGonum for handing results to gonum.org/v1/gonum/mat.
//
// File format:
//
//	1,0,0
//	-2,1,0
//	0,0,1
//
// Rows are separated by '\n' and values by ','. Only the whole file is
// trimmed; "1, 2" fails because " 2" is not a number.
//
// See the examples in this package for usage patterns.
package matrix
