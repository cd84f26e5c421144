package clientlib

import "strings"

// LibraryType identifies the kind of file a client library contributes.
type LibraryType int

const (
	TypeCSS LibraryType = iota
	TypeJS
)

// String returns the file extension used for the type.
func (t LibraryType) String() string {
	switch t {
	case TypeCSS:
		return "css"
	case TypeJS:
		return "js"
	default:
		return "unknown"
	}
}

// ParseLibraryType converts "css" or "js" (case-insensitive) to a LibraryType.
func ParseLibraryType(s string) (LibraryType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return TypeCSS, true
	case "js":
		return TypeJS, true
	default:
		return 0, false
	}
}

// Mode selects which library types a render emits.
type Mode int

const (
	ModeAll Mode = iota // styles, then scripts
	ModeJS
	ModeCSS
)

// ParseMode maps "js" and "css" (case-insensitive) to their modes.
// Any other value, including empty, selects ModeAll.
func ParseMode(s string) Mode {
	switch {
	case strings.EqualFold(s, "js"):
		return ModeJS
	case strings.EqualFold(s, "css"):
		return ModeCSS
	default:
		return ModeAll
	}
}

// Types returns the library types to render for the mode, in output order.
func (m Mode) Types() []LibraryType {
	switch m {
	case ModeJS:
		return []LibraryType{TypeJS}
	case ModeCSS:
		return []LibraryType{TypeCSS}
	default:
		return []LibraryType{TypeCSS, TypeJS}
	}
}

// Library is a client library as exposed by the host platform.
type Library interface {
	// IncludePath returns the public path of the library's file for the
	// given type, pointing to the minified variant when minify is true.
	IncludePath(t LibraryType, minify bool) string

	// AllowProxy reports whether the library may be served through the
	// public proxy prefix.
	AllowProxy() bool

	// Path returns the storage path of the library itself.
	Path() string
}

// LibraryManager resolves categories to libraries.
// The order of the returned libraries is owned by the implementation.
type LibraryManager interface {
	Libraries(categories []string, t LibraryType, expand, restrictToListed bool) []Library
	MinifyEnabled() bool
}

// AttrEncoder escapes untrusted text for use inside a double-quoted
// HTML attribute value.
type AttrEncoder interface {
	EncodeForHTMLAttr(s string) string
}

// Resource is a node of the host content tree.
type Resource interface {
	Path() string
}

// ResourceResolver looks up resources as seen by the current request.
// ok is false when the resource does not exist or is not visible.
type ResourceResolver interface {
	Resolve(path string) (res Resource, ok bool)
}
