package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clientlib <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render       Render script and link tags for client library categories")
	fmt.Fprintln(w, "  categories   List the categories defined in the catalog")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'clientlib help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clientlib render [categories...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render script and link tags for the libraries of the given categories.")
	fmt.Fprintln(w, "Each positional argument may list several categories separated by commas.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Include:")
	fmt.Fprintln(w, "      --categories <list>   Comma-separated categories (or positional args)")
	fmt.Fprintln(w, "  -m, --mode <s>            js, css, or empty for both")
	fmt.Fprintln(w, "      --loading <s>         Script loading attribute: async, defer")
	fmt.Fprintln(w, "      --onload <js>         Script onload handler")
	fmt.Fprintln(w, "      --crossorigin <s>     anonymous, use-credentials")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Catalog config name or path (default: clientlib)")
	fmt.Fprintln(w, "  -i, --inject <page>       Inject the tags into an HTML page")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log skipped libraries")
}

// printCategoriesUsage prints usage for the categories command.
func printCategoriesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: clientlib categories [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the categories defined in the catalog, sorted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Catalog config name or path (default: clientlib)")
}
