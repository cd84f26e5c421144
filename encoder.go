package clientlib

import "golang.org/x/net/html"

// HTMLAttrEncoder escapes attribute values with the x/net/html escaper,
// which covers the five characters that can end or reopen markup:
// & ' < > ".
type HTMLAttrEncoder struct{}

// EncodeForHTMLAttr implements AttrEncoder.
func (HTMLAttrEncoder) EncodeForHTMLAttr(s string) string {
	return html.EscapeString(s)
}

// Compile-time interface check.
var _ AttrEncoder = HTMLAttrEncoder{}
