package main

import (
	flag "github.com/spf13/pflag"
)

// defaultConfigName is searched when --config is not given.
const defaultConfigName = "clientlib"

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// includeFlags holds the options of a single include.
type includeFlags struct {
	categories  string
	mode        string
	loading     string
	onload      string
	crossOrigin string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	include includeFlags
	inject  string
	output  string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", defaultConfigName, "catalog config name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped libraries")
}

// addIncludeFlags adds include option flags to a FlagSet.
func addIncludeFlags(fs *flag.FlagSet, f *includeFlags) {
	fs.StringVar(&f.categories, "categories", "", "comma-separated categories to include")
	fs.StringVarP(&f.mode, "mode", "m", "", "js, css, or empty for both")
	fs.StringVar(&f.loading, "loading", "", "script loading attribute: async, defer")
	fs.StringVar(&f.onload, "onload", "", "script onload handler")
	fs.StringVar(&f.crossOrigin, "crossorigin", "", "crossorigin value: anonymous, use-credentials")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.Usage = func() {}
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVarP(&f.inject, "inject", "i", "", "HTML page to inject the includes into")

	addCommonFlags(fs, &f.common)
	addIncludeFlags(fs, &f.include)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCategoriesFlags parses categories command flags.
func parseCategoriesFlags(args []string) (*commonFlags, error) {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.Usage = func() {}
	f := &commonFlags{}
	addCommonFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
