package clientlib

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"
)

type mockLibrary struct {
	paths      map[LibraryType]string
	minPaths   map[LibraryType]string
	allowProxy bool
	path       string
}

func (m *mockLibrary) IncludePath(t LibraryType, minify bool) string {
	if minify {
		if p, ok := m.minPaths[t]; ok {
			return p
		}
	}
	return m.paths[t]
}

func (m *mockLibrary) AllowProxy() bool { return m.allowProxy }
func (m *mockLibrary) Path() string     { return m.path }

func jsLib(path string, allowProxy bool) *mockLibrary {
	return &mockLibrary{
		paths:      map[LibraryType]string{TypeJS: path + ".js"},
		allowProxy: allowProxy,
		path:       path,
	}
}

func cssLib(path string, allowProxy bool) *mockLibrary {
	return &mockLibrary{
		paths:      map[LibraryType]string{TypeCSS: path + ".css"},
		allowProxy: allowProxy,
		path:       path,
	}
}

type libraryCall struct {
	categories       []string
	typ              LibraryType
	expand           bool
	restrictToListed bool
}

type mockManager struct {
	libs   map[LibraryType][]Library
	minify bool
	calls  []libraryCall
}

func (m *mockManager) Libraries(categories []string, t LibraryType, expand, restrictToListed bool) []Library {
	m.calls = append(m.calls, libraryCall{categories, t, expand, restrictToListed})
	return m.libs[t]
}

func (m *mockManager) MinifyEnabled() bool { return m.minify }

type mockResource string

func (r mockResource) Path() string { return string(r) }

type mockResolver struct {
	visible map[string]bool
	calls   []string
}

func (m *mockResolver) Resolve(path string) (Resource, bool) {
	m.calls = append(m.calls, path)
	if m.visible[path] {
		return mockResource(path), true
	}
	return nil, false
}

type mockEncoder struct {
	fn    func(string) string
	calls int
}

func (m *mockEncoder) EncodeForHTMLAttr(s string) string {
	m.calls++
	if m.fn != nil {
		return m.fn(s)
	}
	return s
}

// testLogger returns a JSON logger writing to buf.
func testLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf)
}

// logLines returns the non-empty log lines written to buf.
func logLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
