package clientlib

import (
	"html/template"
	"strings"
)

// Option keys accepted by the template helpers.
const (
	optionMode        = "mode"
	optionLoading     = "loading"
	optionOnload      = "onload"
	optionCrossOrigin = "crossorigin"
)

// FuncMap returns html/template helpers that render client library
// includes with the given services. Build one per request so the resolver
// reflects the request's visibility.
//
//	{{ clientlib "site.base, site.nav" }}
//	{{ clientlibJS "site.base" "loading" "defer" "onload" "init()" }}
//	{{ clientlibCSS .Categories "crossorigin" "anonymous" }}
//
// Options follow the categories as key/value pairs. Unknown keys and a
// trailing key without value are ignored.
func FuncMap(svc Services) template.FuncMap {
	include := func(mode string) func(categories any, opts ...string) template.HTML {
		return func(categories any, opts ...string) template.HTML {
			b := bindingsFromOptions(categories, opts)
			if mode != "" {
				b.Mode = mode
			}
			// #nosec G203 -- attribute values are whitelisted or encoded
			return template.HTML(New(b, svc).Include())
		}
	}

	return template.FuncMap{
		"clientlib":    include(""),
		"clientlibCSS": include("css"),
		"clientlibJS":  include("js"),
	}
}

// bindingsFromOptions builds Bindings from template key/value pairs.
func bindingsFromOptions(categories any, opts []string) Bindings {
	b := Bindings{Categories: categories}
	for i := 0; i+1 < len(opts); i += 2 {
		value := opts[i+1]
		switch strings.ToLower(opts[i]) {
		case optionMode:
			b.Mode = value
		case optionLoading:
			b.Loading = value
		case optionOnload:
			b.Onload = value
		case optionCrossOrigin:
			b.CrossOrigin = value
		}
	}
	return b
}
