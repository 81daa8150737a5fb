// Package console: sentinel errors for input acquisition.
package console

import "errors"

var (
	// ErrCancelled reports that input ended (EOF) or the context was cancelled
	// before a complete matrix was read.
	ErrCancelled = errors.New("console: input cancelled")

	// ErrRowLength reports a row whose element count differs from the column count.
	ErrRowLength = errors.New("console: wrong number of row elements")

	// ErrNotNumeric reports a token that is not a finite decimal number.
	ErrNotNumeric = errors.New("console: non-numeric value")
)
