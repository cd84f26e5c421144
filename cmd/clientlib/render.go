package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	clientlib "github.com/alnah/go-clientlib"
	"github.com/alnah/go-clientlib/internal/assets"
	"github.com/alnah/go-clientlib/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrReadPage       = errors.New("failed to read HTML page")
	ErrWriteOutput    = errors.New("failed to write output")
)

// runRenderCmd renders the includes described by args.
// Categories come from --categories, or else from positional arguments,
// each of which may hold several comma-separated categories.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printRenderUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	categories := flags.include.categories
	if categories == "" {
		categories = strings.Join(positional, ",")
	} else if len(positional) > 0 {
		return fmt.Errorf("%w: %v (categories already given with --categories)", ErrUnexpectedArgs, positional)
	}
	if len(clientlib.ParseCategories(categories)) == 0 {
		return clientlib.ErrMissingCategories
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	svc, err := loadServices(flags.common.config, env)
	if err != nil {
		return err
	}
	svc.Logger = log

	r := clientlib.New(clientlib.Bindings{
		Categories:  categories,
		Mode:        flags.include.mode,
		Loading:     flags.include.loading,
		Onload:      flags.include.onload,
		CrossOrigin: flags.include.crossOrigin,
	}, svc)

	out := r.Include()
	log.Debug().Strs("categories", r.Categories()).Int("bytes", len(out)).Msg("rendered includes")

	if flags.inject != "" {
		page, err := os.ReadFile(flags.inject) // #nosec G304 -- page path is user-provided
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadPage, err)
		}
		if out, err = env.Injector.InjectIncludes(ctx, string(page), out); err != nil {
			return err
		}
	}

	return writeOutput(flags.output, out, env)
}

// loadServices builds the catalog and resolver described by the config.
func loadServices(configName string, env *Environment) (clientlib.Services, error) {
	cfg, err := loadConfig(configName, env)
	if err != nil {
		return clientlib.Services{}, err
	}

	resolver, err := assets.NewResolver(cfg.Content)
	if err != nil {
		return clientlib.Services{}, err
	}

	return clientlib.Services{
		Libraries: assets.NewCatalog(cfg),
		Encoder:   clientlib.HTMLAttrEncoder{},
		Resolver:  resolver,
	}, nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string, env *Environment) error {
	if path == "" {
		if _, err := fmt.Fprintln(env.Stdout, content); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if err := fileutil.WriteFile(path, content); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
