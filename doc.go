// Package gaussjordan loads matrices from plain-text files.
//
// The work lives in one subpackage:
//
//	matrix/ — Load/Read/Parse, the Dense type, the loader error taxonomy,
//	          loader options and gonum interop
//
// File format: one row per line, values separated by commas, every value a
// decimal floating-point literal, every row the same width.
//
// Quick example:
//
//	m, err := matrix.Load("system.txt")
//	if errors.Is(err, matrix.ErrRaggedMatrix) {
//		// rows have different lengths
//	}
//	fmt.Print(m)
//
// See examples/ for a runnable program.
package gaussjordan
