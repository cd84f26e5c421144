package clientlib

import (
	"strings"

	"github.com/rs/zerolog"
)

// Bindings holds the per-include options supplied by a template.
// Empty strings mean the option was not given.
type Bindings struct {
	// Categories is a []string, a []any or a comma-separated string.
	Categories any

	// Mode is "js", "css" or anything else for both.
	Mode string

	// Loading becomes a bare script attribute: "async" or "defer".
	Loading string

	// Onload becomes the script onload attribute after escaping.
	Onload string

	// CrossOrigin is "anonymous" or "use-credentials".
	CrossOrigin string

	// Resource is the content node the include is rendered for.
	Resource Resource
}

// Services groups the host collaborators a Renderer needs.
type Services struct {
	Libraries LibraryManager
	Encoder   AttrEncoder
	Resolver  ResourceResolver
	Logger    zerolog.Logger
}

// ParseCategories normalizes the two accepted forms of the categories
// option into an ordered list of trimmed, non-empty names.
//
// Accepted forms:
//   - []string or []any: each string entry is trimmed, other entries skipped
//   - string: split on commas, then trimmed
//
// Anything else, including nil, yields an empty list.
func ParseCategories(v any) []string {
	switch c := v.(type) {
	case string:
		return appendTrimmed(nil, strings.Split(c, ","))
	case []string:
		return appendTrimmed(nil, c)
	case []any:
		var out []string
		for _, e := range c {
			if s, ok := e.(string); ok {
				out = appendTrimmed(out, []string{s})
			}
		}
		return out
	default:
		return nil
	}
}

func appendTrimmed(dst, src []string) []string {
	for _, s := range src {
		if s = strings.TrimSpace(s); s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}
