package assets

import (
	"slices"
	"strings"

	clientlib "github.com/alnah/go-clientlib"
	"github.com/alnah/go-clientlib/internal/config"
)

// Library is a client library defined in a catalog.
// Implements clientlib.Library.
type Library struct {
	path       string
	categories []string
	types      []clientlib.LibraryType
	allowProxy bool
}

// NewLibrary builds a Library from its catalog entry. Unknown types are
// ignored; config validation rejects them beforehand.
func NewLibrary(lc config.LibraryConfig) *Library {
	lib := &Library{
		path:       lc.Path,
		allowProxy: lc.AllowProxy,
	}
	for _, c := range lc.Categories {
		if c = strings.TrimSpace(c); c != "" {
			lib.categories = append(lib.categories, c)
		}
	}
	for _, s := range lc.Types {
		if t, ok := clientlib.ParseLibraryType(s); ok && !slices.Contains(lib.types, t) {
			lib.types = append(lib.types, t)
		}
	}
	return lib
}

// IncludePath returns {path}.{ext}, or {path}.min.{ext} when minify is set.
func (l *Library) IncludePath(t clientlib.LibraryType, minify bool) string {
	if minify {
		return l.path + ".min." + t.String()
	}
	return l.path + "." + t.String()
}

// AllowProxy implements clientlib.Library.
func (l *Library) AllowProxy() bool { return l.allowProxy }

// Path implements clientlib.Library.
func (l *Library) Path() string { return l.path }

// Categories returns a copy of the library's categories.
func (l *Library) Categories() []string { return slices.Clone(l.categories) }

// HasType reports whether the library provides files of type t.
func (l *Library) HasType(t clientlib.LibraryType) bool {
	return slices.Contains(l.types, t)
}

// matches reports whether the library belongs to category. With expand,
// sub-categories ("site.base" under "site") also match.
func (l *Library) matches(category string, expand bool) bool {
	for _, c := range l.categories {
		if c == category {
			return true
		}
		if expand && strings.HasPrefix(c, category+".") {
			return true
		}
	}
	return false
}

// Catalog serves libraries from a fixed list.
// Implements clientlib.LibraryManager. Safe for concurrent use.
type Catalog struct {
	libraries []*Library
	minify    bool
}

// NewCatalog creates a Catalog from a loaded configuration.
func NewCatalog(cfg *config.Config) *Catalog {
	c := &Catalog{minify: cfg.Minify}
	for _, lc := range cfg.Libraries {
		c.libraries = append(c.libraries, NewLibrary(lc))
	}
	return c
}

// Libraries returns the libraries of type t belonging to categories.
// restrictToListed has no effect: a flat catalog has no embedded
// libraries to leave out.
func (c *Catalog) Libraries(categories []string, t clientlib.LibraryType, expand, restrictToListed bool) []clientlib.Library {
	var out []clientlib.Library
	seen := make(map[*Library]bool)

	for _, category := range categories {
		for _, lib := range c.libraries {
			if seen[lib] || !lib.HasType(t) || !lib.matches(category, expand) {
				continue
			}
			seen[lib] = true
			out = append(out, lib)
		}
	}
	return out
}

// MinifyEnabled implements clientlib.LibraryManager.
func (c *Catalog) MinifyEnabled() bool { return c.minify }

// Categories returns every category defined in the catalog, sorted.
func (c *Catalog) Categories() []string {
	var all []string
	for _, lib := range c.libraries {
		for _, cat := range lib.categories {
			if !slices.Contains(all, cat) {
				all = append(all, cat)
			}
		}
	}
	slices.Sort(all)
	return all
}

// Compile-time interface checks.
var (
	_ clientlib.Library        = (*Library)(nil)
	_ clientlib.LibraryManager = (*Catalog)(nil)
)
