package assets

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	clientlib "github.com/alnah/go-clientlib"
	"github.com/alnah/go-clientlib/internal/config"
)

// Resource is a content node found by a resolver.
// Implements clientlib.Resource.
type Resource struct {
	path string
}

// Path implements clientlib.Resource.
func (r Resource) Path() string { return r.path }

// PatternResolver decides visibility with doublestar glob patterns.
// A path is visible when it matches an allow pattern and no deny pattern.
// Implements clientlib.ResourceResolver. Safe for concurrent use.
type PatternResolver struct {
	allow []string
	deny  []string
}

// NewPatternResolver creates a PatternResolver.
// Returns ErrInvalidPattern if a pattern is relative or malformed.
func NewPatternResolver(allow, deny []string) (*PatternResolver, error) {
	for _, p := range append(append([]string(nil), allow...), deny...) {
		if !strings.HasPrefix(p, "/") || !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return &PatternResolver{allow: allow, deny: deny}, nil
}

// Resolve implements clientlib.ResourceResolver.
func (r *PatternResolver) Resolve(p string) (clientlib.Resource, bool) {
	clean, err := CleanContentPath(p)
	if err != nil {
		return nil, false
	}
	if matchAny(r.deny, clean) || !matchAny(r.allow, clean) {
		return nil, false
	}
	return Resource{path: clean}, true
}

// matchAny reports whether name matches one of patterns.
// Patterns are validated on construction, so Match cannot fail.
func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// NewResolver builds the resolver described by the content config:
// a FilesystemResolver when Root is set, a PatternResolver otherwise.
// An empty config yields a resolver that sees nothing.
func NewResolver(cc config.ContentConfig) (clientlib.ResourceResolver, error) {
	if cc.Root != "" {
		fr, err := NewFilesystemResolver(cc.Root)
		if err != nil {
			return nil, err
		}
		return fr, nil
	}

	pr, err := NewPatternResolver(cc.Allow, cc.Deny)
	if err != nil {
		return nil, err
	}
	return pr, nil
}

// Compile-time interface checks.
var (
	_ clientlib.Resource         = Resource{}
	_ clientlib.ResourceResolver = (*PatternResolver)(nil)
)
