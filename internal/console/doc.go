// Package console is the terminal boundary of the rref command: it acquires a
// validated rectangular matrix (interactively or from a file) and renders
// matrices as fixed-precision, column-aligned text.
//
// Matrices handed on from here are rectangular and finite. The prompter
// re-prompts malformed rows; the file reader rejects them with a line number.
// Only a file without data lines yields an empty matrix.
package console
