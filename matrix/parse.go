// SPDX-License-Identifier: MIT

// Package matrix - text → Dense assembly.
//
// Input grammar:
//   - rows are separated by '\n', cells by ',';
//   - a cell is a decimal floating-point literal: optional sign, digits,
//     optional '.', optional exponent. NaN/Inf spellings are accepted unless
//     WithFiniteOnly is set;
//   - no whitespace is stripped inside the text. Callers trim the whole
//     contents once before fillMatrix.
//
// The first row fixes the column count; every later row is checked against
// it. Failures are reported first-wins with no partial result.

package matrix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	rowSep = "\n"
	colSep = ","

	// nonDecimalRunes marks tokens strconv.ParseFloat would accept but that
	// are not plain decimal literals: hex mantissa/exponent and digit separators.
	nonDecimalRunes = "xXpP_"
)

// errNonFinite is the Cause attached to tokens rejected by WithFiniteOnly.
var errNonFinite = errors.New("matrix: non-finite value")

// errNonDecimal is the Cause attached to hexadecimal or underscore literals.
var errNonDecimal = errors.New("matrix: not a decimal literal")

// fillMatrix splits text into rows and assembles a rectangular Dense.
// Stage 1 (Validate): reject empty text with KindEmptyInput.
// Stage 2 (Prepare): parse the first row to fix the column count.
// Stage 3 (Execute): parse, width-check and append every later row in order.
// Complexity: O(len(text)) time, O(R*C) memory.
func fillMatrix(text string, o Options) (*Dense, error) {
	if text == "" {
		return nil, newLoadError(KindEmptyInput, 0, 0, nil)
	}
	lines := strings.Split(text, rowSep)

	first, err := parseRow(lines[0], o)
	if err != nil {
		return nil, atLine(err, 1)
	}
	cols := len(first)
	if o.maxCols > 0 && cols > o.maxCols {
		return nil, newLoadError(KindShapeLimit, 1, o.maxCols+1, nil)
	}

	m := newDenseRows(cols, rowCapacity(len(text), len(lines), cols, o.maxRows))
	m.appendRow(first)

	for i := 1; i < len(lines); i++ {
		if o.maxRows > 0 && i >= o.maxRows {
			return nil, newLoadError(KindShapeLimit, i+1, 0, nil)
		}
		row, err := parseRow(lines[i], o)
		if err != nil {
			return nil, atLine(err, i+1)
		}
		if len(row) != cols {
			return nil, newLoadError(KindRaggedMatrix, i+1, 0,
				fmt.Errorf("row has %d values, want %d", len(row), cols))
		}
		m.appendRow(row)
	}

	return m, nil
}

// parseRow converts one line of comma-separated tokens into numbers,
// preserving left-to-right order. The first bad token aborts the row with
// KindTokenParse; its 1-based column is recorded on the error.
func parseRow(line string, o Options) ([]float64, error) {
	tokens := strings.Split(line, colSep)
	row := make([]float64, 0, len(tokens))
	for j, tok := range tokens {
		v, err := parseToken(tok, o.finiteOnly)
		if err != nil {
			return nil, newLoadError(KindTokenParse, 0, j+1, err)
		}
		row = append(row, v)
	}

	return row, nil
}

// rowCapacity bounds the row hint for newDenseRows by what the text can
// hold: a well-formed row of cols values needs at least 2*cols-1 bytes plus
// its separator. Rows that turn out ragged never reach the buffer.
func rowCapacity(textLen, lines, cols, maxRows int) int {
	n := min(lines, textLen/(2*cols)+1)
	if maxRows > 0 {
		n = min(n, maxRows)
	}

	return n
}

// parseToken parses a single cell.
// Overflowing literals saturate to ±Inf instead of failing; strconv reports
// those with ErrRange and the saturated value. A signed NaN ("-nan", "+NaN")
// is accepted as NaN; strconv only takes the unsigned spelling.
func parseToken(tok string, finiteOnly bool) (float64, error) {
	if strings.ContainsAny(tok, nonDecimalRunes) {
		return 0, fmt.Errorf("%q: %w", tok, errNonDecimal)
	}
	if len(tok) == 4 && (tok[0] == '-' || tok[0] == '+') && strings.EqualFold(tok[1:], "nan") {
		tok = tok[1:]
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if finiteOnly && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, fmt.Errorf("%q: %w", tok, errNonFinite)
	}

	return v, nil
}

// atLine stamps a 1-based line number onto a *LoadError produced by parseRow.
func atLine(err error, line int) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.Line = line
	}

	return err
}
