// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both directions copy: a *mat.Dense produced by ToGonum never shares
// storage with the source Dense, and FromGonum never keeps a reference to
// its argument.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense with the same shape.
// A nil receiver yields nil.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.NewDense(m.r, m.c, m.RawData())
}

// FromGonum copies any gonum matrix into a new Dense.
// Errors:
//   - ErrNilMatrix if src is nil or a nil *mat.Dense.
//   - ErrInvalidDimensions if src has zero rows or columns.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if d, ok := src.(*mat.Dense); src == nil || (ok && d == nil) {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("FromGonum(%dx%d): %w", r, c, ErrInvalidDimensions)
	}

	// Fast path: a raw *mat.Dense exposes its strided backing buffer.
	if d, ok := src.(*mat.Dense); ok {
		raw := d.RawMatrix()
		buf := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			buf = append(buf, raw.Data[i*raw.Stride:i*raw.Stride+c]...)
		}

		return &Dense{r: r, c: c, data: buf}, nil
	}

	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = src.At(i, j)
		}
	}

	return &Dense{r: r, c: c, data: buf}, nil
}
