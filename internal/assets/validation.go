package assets

import (
	"fmt"
	"path"
	"strings"
)

// CleanContentPath validates a content path and returns it in canonical
// form. Content paths are slash-separated and absolute; ".." segments are
// resolved against the root so they cannot climb above it.
func CleanContentPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidContentPath)
	}
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: not absolute: %q", ErrInvalidContentPath, p)
	}
	if strings.ContainsAny(p, "\x00\\") {
		return "", fmt.Errorf("%w: %q", ErrInvalidContentPath, p)
	}
	return path.Clean(p), nil
}
