package main

import (
	"bytes"
	"testing"

	"github.com/alnah/go-clientlib/internal/config"
	"github.com/alnah/go-clientlib/internal/pipeline"
)

// testConfig is a small catalog: one proxied library under /apps, one
// library under /etc that relies on visibility.
func testConfig() *config.Config {
	return &config.Config{
		Content: config.ContentConfig{
			Allow: []string{"/etc/designs/**"},
		},
		Libraries: []config.LibraryConfig{
			{
				Path:       "/apps/site/clientlibs/base",
				Categories: []string{"site.base"},
				Types:      []string{"css", "js"},
				AllowProxy: true,
			},
			{
				Path:       "/etc/designs/site/theme",
				Categories: []string{"site.theme"},
				Types:      []string{"css"},
			},
		},
	}
}

// testEnv returns an Environment writing to buffers and serving cfg for
// every config name.
func testEnv(t *testing.T, cfg *config.Config, loadErr error) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		LoadConfig: func(string) (*config.Config, error) {
			if loadErr != nil {
				return nil, loadErr
			}
			return cfg, nil
		},
		Injector: &pipeline.IncludeInjection{},
	}
	return env, &stdout, &stderr
}
