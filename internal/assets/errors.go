package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrInvalidContentPath indicates a content path that is relative or
	// contains a NUL byte.
	ErrInvalidContentPath = errors.New("invalid content path")

	// ErrInvalidBasePath indicates the configured content root is not a
	// valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrInvalidPattern indicates a malformed visibility pattern.
	ErrInvalidPattern = errors.New("invalid visibility pattern")

	// ErrPathTraversal indicates an attempt to access files outside the
	// content root.
	ErrPathTraversal = errors.New("path traversal detected")
)
