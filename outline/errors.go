package outline

import "errors"

// Error taxonomy (spec.md §6.2). Validation failures at the API
// boundary; internal invariant violations panic instead (§7).
var (
	ErrInvalidInsertOffset = errors.New("outline: invalid insert offset")
	ErrInvalidDeleteRange  = errors.New("outline: invalid delete range")
	ErrInvalidQueryOffset  = errors.New("outline: invalid query offset")
	ErrInvalidRange        = errors.New("outline: invalid range")
	ErrCannotCollapse      = errors.New("outline: cannot collapse")
	ErrCannotExpand        = errors.New("outline: cannot expand")
)
