package assets

import (
	"errors"
	"testing"
)

func TestCleanContentPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "simple path", input: "/apps/site", want: "/apps/site"},
		{name: "root", input: "/", want: "/"},
		{name: "trailing slash removed", input: "/apps/site/", want: "/apps/site"},
		{name: "double slash collapsed", input: "/apps//site", want: "/apps/site"},
		{name: "dot dot resolved", input: "/apps/site/../other", want: "/apps/other"},
		{name: "dot dot cannot climb above root", input: "/../../etc/passwd", want: "/etc/passwd"},
		{name: "empty", input: "", wantErr: ErrInvalidContentPath},
		{name: "relative", input: "apps/site", wantErr: ErrInvalidContentPath},
		{name: "null byte", input: "/apps/\x00site", wantErr: ErrInvalidContentPath},
		{name: "backslash", input: `/apps\site`, wantErr: ErrInvalidContentPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CleanContentPath(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CleanContentPath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanContentPath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CleanContentPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
