package clientlib

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	scriptTag = `<script type="text/javascript" src="%s"%s></script>`
)

func errorLines(buf *bytes.Buffer) []string {
	var out []string
	for _, l := range logLines(buf) {
		if strings.Contains(l, `"level":"error"`) {
			out = append(out, l)
		}
	}
	return out
}

func TestRenderer_Include_MissingCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		categories any
	}{
		{name: "nil categories", categories: nil},
		{name: "empty string", categories: ""},
		{name: "only commas and spaces", categories: " , ,, "},
		{name: "empty slice", categories: []string{}},
		{name: "non-string entries only", categories: []any{1, true, nil}},
		{name: "unsupported type", categories: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			manager := &mockManager{libs: map[LibraryType][]Library{TypeJS: {jsLib("/apps/x/a", true)}}}

			r := New(Bindings{Categories: tt.categories, Mode: "js"}, Services{
				Libraries: manager,
				Encoder:   &mockEncoder{},
				Resolver:  &mockResolver{},
				Logger:    testLogger(&buf),
			})

			if got := r.Include(); got != "" {
				t.Errorf("Include() = %q, want empty", got)
			}
			if len(manager.calls) != 0 {
				t.Errorf("library manager called %d times, want 0", len(manager.calls))
			}

			lines := errorLines(&buf)
			if len(lines) != 1 {
				t.Fatalf("got %d error log entries, want 1: %v", len(lines), logLines(&buf))
			}
			if !strings.Contains(lines[0], "categories") {
				t.Errorf("error log %q should mention categories", lines[0])
			}
		})
	}
}

func TestRenderer_Include_LogsResource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := New(Bindings{Resource: mockResource("/content/site/home")}, Services{Logger: testLogger(&buf)})
	r.Include()

	lines := errorLines(&buf)
	if len(lines) != 1 || !strings.Contains(lines[0], `"resource":"/content/site/home"`) {
		t.Errorf("error log = %v, want resource field", lines)
	}
}

func TestRenderer_Include_Modes(t *testing.T) {
	t.Parallel()

	css := cssLib("/apps/x/style", true)
	js := jsLib("/apps/x/app", true)

	preload := `<link rel="preload" href="/etc.clientlibs/x/style.css" as="style">`
	stylesheet := `<link rel="stylesheet" href="/etc.clientlibs/x/style.css" media="print" type="text/css" onload="this.media='all'">`
	script := `<script type="text/javascript" src="/etc.clientlibs/x/app.js"></script>`

	tests := []struct {
		mode      string
		want      string
		wantTypes []LibraryType
	}{
		{mode: "js", want: script, wantTypes: []LibraryType{TypeJS}},
		{mode: "JS", want: script, wantTypes: []LibraryType{TypeJS}},
		{mode: "css", want: preload + stylesheet, wantTypes: []LibraryType{TypeCSS}},
		{mode: "Css", want: preload + stylesheet, wantTypes: []LibraryType{TypeCSS}},
		{mode: "", want: preload + stylesheet + script, wantTypes: []LibraryType{TypeCSS, TypeJS}},
		{mode: "all", want: preload + stylesheet + script, wantTypes: []LibraryType{TypeCSS, TypeJS}},
		{mode: "javascript", want: preload + stylesheet + script, wantTypes: []LibraryType{TypeCSS, TypeJS}},
	}

	for _, tt := range tests {
		t.Run("mode="+tt.mode, func(t *testing.T) {
			t.Parallel()

			manager := &mockManager{libs: map[LibraryType][]Library{TypeCSS: {css}, TypeJS: {js}}}
			r := New(Bindings{Categories: "site", Mode: tt.mode}, Services{
				Libraries: manager,
				Encoder:   &mockEncoder{},
				Resolver:  &mockResolver{},
			})

			if got := r.Include(); got != tt.want {
				t.Errorf("Include() =\n%s\nwant\n%s", got, tt.want)
			}

			var gotTypes []LibraryType
			for _, c := range manager.calls {
				gotTypes = append(gotTypes, c.typ)
				if c.expand || c.restrictToListed {
					t.Errorf("Libraries() called with expand=%v restrictToListed=%v, want false/false", c.expand, c.restrictToListed)
				}
				if diff := cmp.Diff([]string{"site"}, c.categories); diff != "" {
					t.Errorf("Libraries() categories mismatch (-want +got):\n%s", diff)
				}
			}
			if diff := cmp.Diff(tt.wantTypes, gotTypes); diff != "" {
				t.Errorf("Libraries() types mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_Include_LoadingAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		loading string
		want    string
	}{
		{loading: "async", want: " async"},
		{loading: "defer", want: " defer"},
		{loading: "DEFER", want: " defer"},
		{loading: "Async", want: " async"},
		{loading: "", want: ""},
		{loading: "lazy", want: ""},
		{loading: " defer", want: ""},
		{loading: "async defer", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.loading, func(t *testing.T) {
			t.Parallel()

			manager := &mockManager{libs: map[LibraryType][]Library{
				TypeJS:  {jsLib("/apps/x/a", true)},
				TypeCSS: {cssLib("/apps/x/b", true)},
			}}
			r := New(Bindings{Categories: "a", Loading: tt.loading}, Services{
				Libraries: manager,
				Encoder:   &mockEncoder{},
			})

			got := r.Include()
			wantScript := strings.Replace(scriptTag, "%s", "/etc.clientlibs/x/a.js", 1)
			wantScript = strings.Replace(wantScript, "%s", tt.want, 1)
			if !strings.HasSuffix(got, wantScript) {
				t.Errorf("Include() = %s\nwant suffix %s", got, wantScript)
			}
			if tt.want != "" && strings.Count(got, tt.want) != 1 {
				t.Errorf("loading attribute %q should appear on the script only: %s", tt.want, got)
			}
		})
	}
}

func TestRenderer_Include_CrossOriginAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		crossOrigin string
		want        string
	}{
		{crossOrigin: "anonymous", want: ` crossorigin="anonymous"`},
		{crossOrigin: "ANONYMOUS", want: ` crossorigin="anonymous"`},
		{crossOrigin: "Use-Credentials", want: ` crossorigin="use-credentials"`},
		{crossOrigin: "", want: ""},
		{crossOrigin: "credentials", want: ""},
		{crossOrigin: `anonymous" onerror="x`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.crossOrigin, func(t *testing.T) {
			t.Parallel()

			manager := &mockManager{libs: map[LibraryType][]Library{
				TypeJS:  {jsLib("/apps/x/a", true)},
				TypeCSS: {cssLib("/apps/x/b", true)},
			}}
			r := New(Bindings{Categories: "a", CrossOrigin: tt.crossOrigin}, Services{
				Libraries: manager,
				Encoder:   &mockEncoder{},
			})

			got := r.Include()
			want := `<link rel="preload" href="/etc.clientlibs/x/b.css"` + tt.want + ` as="style">` +
				`<link rel="stylesheet" href="/etc.clientlibs/x/b.css"` + tt.want + ` media="print" type="text/css" onload="this.media='all'">` +
				`<script type="text/javascript" src="/etc.clientlibs/x/a.js"` + tt.want + `></script>`
			if got != want {
				t.Errorf("Include() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRenderer_Include_OnloadAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		onload      string
		encode      func(string) string
		want        string
		wantEncodes int
	}{
		{
			name:        "onload is encoded",
			onload:      `init("x")`,
			encode:      HTMLAttrEncoder{}.EncodeForHTMLAttr,
			want:        ` onload="init(&#34;x&#34;)"`,
			wantEncodes: 1,
		},
		{
			name:        "blank encoded value dropped",
			onload:      "<bad>",
			encode:      func(string) string { return "  " },
			want:        "",
			wantEncodes: 1,
		},
		{
			name:        "blank onload not encoded",
			onload:      "   ",
			want:        "",
			wantEncodes: 0,
		},
		{
			name:        "absent onload",
			onload:      "",
			want:        "",
			wantEncodes: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc := &mockEncoder{fn: tt.encode}
			manager := &mockManager{libs: map[LibraryType][]Library{
				TypeJS:  {jsLib("/apps/x/a", true), jsLib("/apps/x/b", true)},
				TypeCSS: {cssLib("/apps/x/c", true)},
			}}
			r := New(Bindings{Categories: []string{"a"}, Onload: tt.onload}, Services{
				Libraries: manager,
				Encoder:   enc,
			})

			got := r.Include()
			if strings.Contains(got, `<link rel="preload" href="/etc.clientlibs/x/c.css" onload`) {
				t.Errorf("onload must not be added to link tags: %s", got)
			}
			wantA := `<script type="text/javascript" src="/etc.clientlibs/x/a.js"` + tt.want + `></script>`
			wantB := `<script type="text/javascript" src="/etc.clientlibs/x/b.js"` + tt.want + `></script>`
			if !strings.HasSuffix(got, wantA+wantB) {
				t.Errorf("Include() = %s\nwant suffix %s", got, wantA+wantB)
			}
			if enc.calls != tt.wantEncodes {
				t.Errorf("encoder called %d times, want %d (once per render, not per library)", enc.calls, tt.wantEncodes)
			}
		})
	}
}

func TestRenderer_Include_AttributeOrder(t *testing.T) {
	t.Parallel()

	manager := &mockManager{libs: map[LibraryType][]Library{TypeJS: {jsLib("/apps/x/a", true)}}}
	r := New(Bindings{
		Categories:  "a",
		Mode:        "js",
		Loading:     "Async",
		Onload:      "go()",
		CrossOrigin: "anonymous",
	}, Services{Libraries: manager, Encoder: HTMLAttrEncoder{}})

	want := `<script type="text/javascript" src="/etc.clientlibs/x/a.js" async onload="go()" crossorigin="anonymous"></script>`
	if got := r.Include(); got != want {
		t.Errorf("Include() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderer_Include_IncludePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lib          *mockLibrary
		visible      map[string]bool
		nilResolver  bool
		want         string
		wantResolved []string
	}{
		{
			name:         "proxied apps path rewritten without visibility check",
			lib:          jsLib("/apps/x/a", true),
			want:         `<script type="text/javascript" src="/etc.clientlibs/x/a.js"></script>`,
			wantResolved: nil,
		},
		{
			name:         "proxied libs path rewritten",
			lib:          jsLib("/libs/granite/a", true),
			want:         `<script type="text/javascript" src="/etc.clientlibs/granite/a.js"></script>`,
			wantResolved: nil,
		},
		{
			name:         "proxy disallowed and visible keeps path",
			lib:          jsLib("/apps/x/a", false),
			visible:      map[string]bool{"/apps/x/a": true},
			want:         `<script type="text/javascript" src="/apps/x/a.js"></script>`,
			wantResolved: []string{"/apps/x/a"},
		},
		{
			name:         "proxy disallowed and invisible suppressed",
			lib:          jsLib("/apps/x/a", false),
			want:         "",
			wantResolved: []string{"/apps/x/a"},
		},
		{
			name:         "proxy allowed outside proxied roots checks visibility",
			lib:          jsLib("/etc/designs/a", true),
			visible:      map[string]bool{"/etc/designs/a": true},
			want:         `<script type="text/javascript" src="/etc/designs/a.js"></script>`,
			wantResolved: []string{"/etc/designs/a"},
		},
		{
			name:         "proxy allowed outside proxied roots invisible suppressed",
			lib:          jsLib("/etc/designs/a", true),
			want:         "",
			wantResolved: []string{"/etc/designs/a"},
		},
		{
			name:        "nil resolver suppresses unproxied library",
			lib:         jsLib("/apps/x/a", false),
			nilResolver: true,
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := &mockResolver{visible: tt.visible}
			svc := Services{
				Libraries: &mockManager{libs: map[LibraryType][]Library{TypeJS: {tt.lib}}},
				Encoder:   &mockEncoder{},
				Resolver:  resolver,
			}
			if tt.nilResolver {
				svc.Resolver = nil
			}

			got := New(Bindings{Categories: "a", Mode: "js"}, svc).Include()
			if got != tt.want {
				t.Errorf("Include() = %q, want %q", got, tt.want)
			}
			if diff := cmp.Diff(tt.wantResolved, resolver.calls); diff != "" {
				t.Errorf("resolver calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_Include_CSSInvisibleLibrary(t *testing.T) {
	t.Parallel()

	manager := &mockManager{libs: map[LibraryType][]Library{TypeCSS: {cssLib("/apps/x/a", false)}}}
	r := New(Bindings{Categories: "a", Mode: "css"}, Services{
		Libraries: manager,
		Encoder:   &mockEncoder{},
		Resolver:  &mockResolver{},
	})

	if got := r.Include(); got != "" {
		t.Errorf("Include() = %q, want empty", got)
	}
}

func TestRenderer_Include_SkipsOnlyInaccessible(t *testing.T) {
	t.Parallel()

	manager := &mockManager{libs: map[LibraryType][]Library{TypeJS: {
		jsLib("/apps/x/a", true),
		jsLib("/apps/x/hidden", false),
		jsLib("/apps/x/b", true),
	}}}
	r := New(Bindings{Categories: "a", Mode: "js"}, Services{
		Libraries: manager,
		Encoder:   &mockEncoder{},
		Resolver:  &mockResolver{},
	})

	want := `<script type="text/javascript" src="/etc.clientlibs/x/a.js"></script>` +
		`<script type="text/javascript" src="/etc.clientlibs/x/b.js"></script>`
	if got := r.Include(); got != want {
		t.Errorf("Include() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderer_Include_Minify(t *testing.T) {
	t.Parallel()

	lib := &mockLibrary{
		paths:      map[LibraryType]string{TypeJS: "/apps/x/a.js"},
		minPaths:   map[LibraryType]string{TypeJS: "/apps/x/a.min.js"},
		allowProxy: true,
	}

	for _, minify := range []bool{false, true} {
		manager := &mockManager{libs: map[LibraryType][]Library{TypeJS: {lib}}, minify: minify}
		got := New(Bindings{Categories: "a", Mode: "js"}, Services{Libraries: manager, Encoder: &mockEncoder{}}).Include()

		want := "/etc.clientlibs/x/a.js"
		if minify {
			want = "/etc.clientlibs/x/a.min.js"
		}
		if !strings.Contains(got, `src="`+want+`"`) {
			t.Errorf("minify=%v: Include() = %s, want src %s", minify, got, want)
		}
	}
}

func TestRenderer_Include_NilServices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		svc  Services
	}{
		{name: "no services", svc: Services{}},
		{name: "no encoder", svc: Services{Libraries: &mockManager{libs: map[LibraryType][]Library{TypeJS: {jsLib("/apps/x/a", true)}}}}},
		{name: "no manager", svc: Services{Encoder: &mockEncoder{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New(Bindings{Categories: "a", Onload: "x()", Loading: "defer"}, tt.svc)
			if got := r.Include(); got != "" {
				t.Errorf("Include() = %q, want empty", got)
			}
		})
	}
}

// Two proxied scripts from a comma-separated category list, with the
// loading attribute given in upper case and emitted lowercased.
func TestRenderer_Include_DeferredScripts(t *testing.T) {
	t.Parallel()

	manager := &mockManager{libs: map[LibraryType][]Library{TypeJS: {
		&mockLibrary{paths: map[LibraryType]string{TypeJS: "/apps/x/a.js"}, allowProxy: true, path: "/apps/x/a"},
		&mockLibrary{paths: map[LibraryType]string{TypeJS: "/apps/x/b.js"}, allowProxy: true, path: "/apps/x/b"},
	}}}

	r := New(Bindings{Categories: "foo, bar", Mode: "js", Loading: "DEFER"}, Services{
		Libraries: manager,
		Encoder:   HTMLAttrEncoder{},
		Resolver:  &mockResolver{},
	})

	want := `<script type="text/javascript" src="/etc.clientlibs/x/a.js" defer></script>` +
		`<script type="text/javascript" src="/etc.clientlibs/x/b.js" defer></script>`
	if got := r.Include(); got != want {
		t.Errorf("Include() =\n%s\nwant\n%s", got, want)
	}
	if diff := cmp.Diff([]string{"foo", "bar"}, manager.calls[0].categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Categories(t *testing.T) {
	t.Parallel()

	r := New(Bindings{Categories: " a ,b "}, Services{})
	got := r.Categories()
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}

	got[0] = "changed"
	if r.Categories()[0] != "a" {
		t.Error("Categories() must return a copy")
	}
}
