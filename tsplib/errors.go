package tsplib

import "errors"

var (
	// ErrSyntax reports a malformed header line, number or section.
	ErrSyntax = errors.New("tsplib: syntax error")

	// ErrUnsupported reports a TYPE, EDGE_WEIGHT_TYPE or EDGE_WEIGHT_FORMAT
	// this package does not handle.
	ErrUnsupported = errors.New("tsplib: unsupported problem")

	// ErrDimension reports a missing DIMENSION or a section whose size does
	// not match it.
	ErrDimension = errors.New("tsplib: dimension mismatch")
)
