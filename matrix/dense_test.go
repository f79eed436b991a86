// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense type.
package matrix_test

import (
	"testing"

	"github.com/PSTumuluri/gauss-jordan/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFrom validates shape checks and that the input is copied.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	src[0] = 99 // must not leak into m

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(2, 2, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At(), Set() and Row() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(2,0)")

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var nilM *matrix.Dense
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestSetGet validates Set() followed by At() and Row().
func TestSetGet(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.89}, row)
}

// TestCopiesAreIndependent ensures Row, RawData, ToSlices and Clone never alias storage.
func TestCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = -1
	m.RawData()[1] = -1
	m.ToSlices()[1][0] = -1

	clone := m.Clone()
	require.NoError(t, clone.Set(1, 1, -1))

	require.Equal(t, []float64{1, 2, 3, 4}, m.RawData())
	require.False(t, m.Equal(clone))
}

// TestEqual covers shape and value comparisons, including nil handling.
func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 2, 1, []float64{1, 2})
	c := NewFilledDense(t, 1, 2, []float64{1, 2})

	require.True(t, a.Equal(c))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	var nilM *matrix.Dense
	require.True(t, nilM.Equal(nil))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
