// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// errInvalidText is the Cause attached when file contents are not valid UTF-8.
	errInvalidText = errors.New("matrix: contents are not valid UTF-8 text")

	// errNilReader is the Cause attached when Read is given a nil io.Reader.
	errNilReader = errors.New("matrix: nil reader")
)

// Load reads the file at path and returns the matrix it describes.
//
// The whole file is read into memory and its leading/trailing whitespace is
// trimmed; rows are separated by '\n' and values by ','. Every row must have
// as many values as the first one.
//
// Errors are *LoadError values; match them with errors.Is against ErrIO,
// ErrEmptyInput, ErrTokenParse, ErrRaggedMatrix or ErrShapeLimit, or use
// KindOf. A failed call has no side effects and never returns a partial
// matrix.
func Load(path string, opts ...Option) (*Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(KindIO, 0, 0, err)
	}

	return loadBytes(raw, gatherOptions(opts...))
}

// Read is Load for an already opened source. r is drained completely; it is
// not closed.
func Read(r io.Reader, opts ...Option) (*Dense, error) {
	if r == nil {
		return nil, newLoadError(KindIO, 0, 0, errNilReader)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, newLoadError(KindIO, 0, 0, err)
	}

	return loadBytes(raw, gatherOptions(opts...))
}

// Parse builds a matrix from in-memory text using the same rules as Load.
func Parse(text string, opts ...Option) (*Dense, error) {
	return fillMatrix(strings.TrimSpace(text), gatherOptions(opts...))
}

// MustLoad is like Load but panics on error. Intended for fixtures and
// program initialisation where a bad file is a programmer error.
func MustLoad(path string, opts ...Option) *Dense {
	m, err := Load(path, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// loadBytes validates raw as text, trims it and hands it to fillMatrix.
func loadBytes(raw []byte, o Options) (*Dense, error) {
	if !utf8.Valid(raw) {
		return nil, newLoadError(KindIO, 0, 0, errInvalidText)
	}

	return fillMatrix(strings.TrimSpace(string(raw)), o)
}
