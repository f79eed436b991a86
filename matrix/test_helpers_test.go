// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense and loader tests.

package matrix_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/PSTumuluri/gauss-jordan/matrix"
)

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// randomMatrixText renders an r×c matrix of seeded random values in the
// loader's file format and returns the values in row-major order.
// FormatFloat(..., 'g', -1, 64) round-trips exactly through ParseFloat.
func randomMatrixText(r, c int, seed int64) (string, []float64) {
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, 0, r*c)
	var b strings.Builder
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := rng.NormFloat64() * 1e3
			vals = append(vals, v)
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}

	return b.String(), vals
}

// writeTemp writes body into a fresh file under dir and returns its path.
func writeTemp(t testing.TB, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}

	return path
}
