// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the unexported parsing stages to matrix_test so the
// fill/row logic can be checked without touching the filesystem.

var (
	// ExportedFillMatrix exposes fillMatrix with default options.
	ExportedFillMatrix = func(text string) (*Dense, error) {
		return fillMatrix(text, defaultOptions())
	}

	// ExportedParseRow exposes parseRow with default options.
	ExportedParseRow = func(line string) ([]float64, error) {
		return parseRow(line, defaultOptions())
	}

	// ExportedParseToken exposes parseToken.
	ExportedParseToken = parseToken
)
