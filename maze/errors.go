// SPDX-License-Identifier: MIT

package maze

import "errors"

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrFormat indicates a malformed or truncated instance file.
	ErrFormat = errors.New("maze: malformed instance")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("maze: coordinate out of range")
	// ErrInvalidPosition indicates an illegal Start/Exit relocation.
	ErrInvalidPosition = errors.New("maze: invalid start/exit position")
	// ErrOptionViolation indicates an invalid dynamics option.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)
