package main

import (
	"io"
	"os"

	"github.com/alnah/go-clientlib/internal/config"
	"github.com/alnah/go-clientlib/internal/pipeline"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	LoadConfig func(nameOrPath string) (*config.Config, error)
	Injector   pipeline.IncludeInjector
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		LoadConfig: config.LoadConfig,
		Injector:   &pipeline.IncludeInjection{},
	}
}
