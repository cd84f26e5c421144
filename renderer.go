package clientlib

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-clientlib/internal/pipeline"
	"github.com/rs/zerolog"
)

// HTML markup written for each library. Kept byte-for-byte compatible with
// the platform's own clientlib templates.
const (
	tagJavaScript        = `<script type="text/javascript" src="%s"%s></script>`
	tagStylesheetPreload = `<link rel="preload" href="%s"%s as="style">`
	tagStylesheetInit    = `<link rel="stylesheet" href="%s"%s media="print" type="text/css" onload="this.media='all'">`

	attrOnload      = ` onload="%s"`
	attrCrossOrigin = ` crossorigin="%s"`
)

var (
	validLoadingValues     = []string{"async", "defer"}
	validCrossOriginValues = []string{"anonymous", "use-credentials"}
)

// Renderer writes script and link tags for the libraries of a set of
// categories. A Renderer serves a single include and is not safe for
// concurrent use.
type Renderer struct {
	categories  []string
	mode        Mode
	loading     string
	onload      string
	crossOrigin string
	resource    Resource

	libraries LibraryManager
	encoder   AttrEncoder
	resolver  ResourceResolver
	log       zerolog.Logger
}

// New captures the bindings of one include. Host services are only kept
// when at least one category is given; otherwise Include reports the
// missing option and renders nothing.
func New(b Bindings, svc Services) *Renderer {
	r := &Renderer{
		loading:     b.Loading,
		onload:      b.Onload,
		crossOrigin: b.CrossOrigin,
		resource:    b.Resource,
		log:         svc.Logger.With().Str("component", "clientlib").Logger(),
	}

	r.categories = ParseCategories(b.Categories)
	if len(r.categories) == 0 {
		return r
	}

	r.mode = ParseMode(b.Mode)
	r.libraries = svc.Libraries
	r.encoder = svc.Encoder
	r.resolver = svc.Resolver
	return r
}

// Categories returns the normalized categories of the include.
func (r *Renderer) Categories() []string {
	return slices.Clone(r.categories)
}

// Include renders the tags for all libraries selected by the mode.
// Styles always precede scripts. Returns an empty string and logs
// ErrMissingCategories when no category was given.
func (r *Renderer) Include() string {
	if len(r.categories) == 0 {
		ev := r.log.Error().Err(ErrMissingCategories)
		if r.resource != nil {
			ev = ev.Str("resource", r.resource.Path())
		}
		ev.Msg("cannot include client libraries")
		return ""
	}

	var sb strings.Builder
	for _, t := range r.mode.Types() {
		r.includeLibraries(&sb, t)
	}
	return sb.String()
}

// includeLibraries writes the tags of every accessible library of type t.
func (r *Renderer) includeLibraries(sb *strings.Builder, t LibraryType) {
	if r.libraries == nil || r.encoder == nil {
		return
	}

	libs := r.libraries.Libraries(r.categories, t, false, false)
	if len(libs) == 0 {
		return
	}

	attrs := r.attributes(t)
	minify := r.libraries.MinifyEnabled()

	for _, lib := range libs {
		path, ok := r.includePath(lib, t, minify)
		if !ok {
			r.log.Debug().Str("library", lib.Path()).Stringer("type", t).Msg("library not accessible, skipped")
			continue
		}

		switch t {
		case TypeCSS:
			fmt.Fprintf(sb, tagStylesheetPreload, path, attrs)
			fmt.Fprintf(sb, tagStylesheetInit, path, attrs)
		case TypeJS:
			fmt.Fprintf(sb, tagJavaScript, path, attrs)
		}
	}
}

// attributes builds the attribute suffix shared by every tag of type t.
func (r *Renderer) attributes(t LibraryType) string {
	var sb strings.Builder

	if t == TypeJS {
		if loading := strings.ToLower(r.loading); isWhitelisted(loading, validLoadingValues) {
			sb.WriteString(" " + loading)
		}

		if strings.TrimSpace(r.onload) != "" {
			if safe := r.encoder.EncodeForHTMLAttr(r.onload); strings.TrimSpace(safe) != "" {
				fmt.Fprintf(&sb, attrOnload, safe)
			}
		}
	}

	if crossOrigin := strings.ToLower(r.crossOrigin); isWhitelisted(crossOrigin, validCrossOriginValues) {
		fmt.Fprintf(&sb, attrCrossOrigin, crossOrigin)
	}

	return sb.String()
}

// includePath returns the public path of lib. Proxied libraries under
// /libs/ or /apps/ are rewritten to the proxy prefix; any other library
// must be visible to the request, else ok is false.
func (r *Renderer) includePath(lib Library, t LibraryType, minify bool) (path string, ok bool) {
	path = lib.IncludePath(t, minify)
	if lib.AllowProxy() {
		if proxied, rewritten := pipeline.ProxyPath(path); rewritten {
			return proxied, true
		}
	}

	if r.resolver == nil {
		return "", false
	}
	if _, visible := r.resolver.Resolve(lib.Path()); !visible {
		return "", false
	}
	return path, true
}

func isWhitelisted(v string, allowed []string) bool {
	return strings.TrimSpace(v) != "" && slices.Contains(allowed, v)
}
