package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// IncludeInjector defines the contract for injecting a rendered include
// into an HTML page.
type IncludeInjector interface {
	InjectIncludes(ctx context.Context, page, fragment string) (string, error)
}

// IncludeInjection injects client library tags into an HTML page.
type IncludeInjection struct{}

// InjectIncludes inserts the script and link tags of fragment into page.
// Tags the page already loads are dropped; the remaining markup is kept
// byte-for-byte.
// Tries </head> first, then after <body>, then prepends to the page.
func (s *IncludeInjection) InjectIncludes(ctx context.Context, page, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(fragment) == "" {
		return page, nil
	}

	scan, err := scanPage(page)
	if err != nil {
		return "", err
	}

	block, err := filterIncludes(fragment, scan.includes)
	if err != nil {
		return "", err
	}
	if block == "" {
		return page, nil
	}

	switch {
	case scan.headEnd >= 0:
		return page[:scan.headEnd] + block + page[scan.headEnd:], nil
	case scan.bodyStart >= 0:
		return page[:scan.bodyStart] + block + page[scan.bodyStart:], nil
	default:
		return block + page, nil
	}
}

// includeKey identifies what a tag loads: kind is "script" for scripts and
// the lowercased rel value for links.
type includeKey struct {
	kind string
	url  string
}

// tagInclude returns the include a script or link start tag refers to.
// ok is false for other tags and for tags without a URL.
func tagInclude(z *html.Tokenizer) (tag string, key includeKey, ok bool) {
	name, hasAttr := z.TagName()
	tag = string(name)
	if tag != "script" && tag != "link" {
		return tag, includeKey{}, false
	}

	var url, rel string
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		switch string(k) {
		case "src":
			if tag == "script" {
				url = string(v)
			}
		case "href":
			if tag == "link" {
				url = string(v)
			}
		case "rel":
			rel = strings.ToLower(strings.TrimSpace(string(v)))
		}
	}
	if url == "" {
		return tag, includeKey{}, false
	}

	if tag == "script" {
		return tag, includeKey{kind: "script", url: url}, true
	}
	return tag, includeKey{kind: rel, url: url}, true
}

// pageScan is what InjectIncludes needs to know about a page. Offsets are
// byte positions in the page, -1 when the tag is absent.
type pageScan struct {
	includes  map[includeKey]bool
	headEnd   int // start of the first </head>
	bodyStart int // end of the first <body ...>
}

// scanPage collects the includes a page already loads and locates the
// insertion points. An applied stylesheet also satisfies a preload of the
// same URL; a preload alone does not satisfy a stylesheet.
func scanPage(page string) (pageScan, error) {
	scan := pageScan{includes: make(map[includeKey]bool), headEnd: -1, bodyStart: -1}
	pos := 0

	z := html.NewTokenizer(strings.NewReader(page))
	for {
		tt := z.Next()
		raw := len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return pageScan{}, err
			}
			return scan, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			tag, key, ok := tagInclude(z)
			if ok {
				scan.includes[key] = true
				if key.kind == "stylesheet" {
					scan.includes[includeKey{kind: "preload", url: key.url}] = true
				}
			}
			if tag == "body" && scan.bodyStart < 0 {
				scan.bodyStart = pos + raw
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "head" && scan.headEnd < 0 {
				scan.headEnd = pos
			}
		}
		pos += raw
	}
}

// filterIncludes drops the tags of fragment whose include is in existing.
// A dropped script also drops its body and end tag.
func filterIncludes(fragment string, existing map[includeKey]bool) (string, error) {
	var out strings.Builder
	skippingScript := false

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		// TagName lowercases the buffer in place; copy the raw bytes first.
		raw := string(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return out.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			if tag, key, ok := tagInclude(z); ok && existing[key] {
				skippingScript = tag == "script" && tt == html.StartTagToken
				continue
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); skippingScript && string(name) == "script" {
				skippingScript = false
				continue
			}
		}

		if !skippingScript {
			out.WriteString(raw)
		}
	}
}

// Compile-time interface check.
var _ IncludeInjector = (*IncludeInjection)(nil)
