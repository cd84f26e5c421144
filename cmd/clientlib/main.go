package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	clientlib "github.com/alnah/go-clientlib"
	"github.com/alnah/go-clientlib/internal/assets"
	"github.com/alnah/go-clientlib/internal/config"
	"github.com/alnah/go-clientlib/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to the command named by args[1] and returns the
// process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error

	switch cmd {
	case "render":
		err = runRenderCmd(ctx, rest, env)
	case "categories":
		err = runCategoriesCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "clientlib %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		printError(env.Stderr, cmd, err)
	}
	return exitCodeFor(err)
}

// runHelp prints the usage of a command, or the main usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "categories":
		printCategoriesUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n", args[0])
		return ExitUsage
	}
	return ExitSuccess
}

// printError writes err followed by any hint for it.
func printError(w io.Writer, cmd string, err error) {
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(cmd, err))
}

// hintedError carries a hint that depends on context the error alone
// does not hold.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

// hintFor returns the hint matching err, or an empty string.
func hintFor(cmd string, err error) string {
	var he *hintedError
	switch {
	case errors.As(err, &he):
		return he.hint
	case errors.Is(err, clientlib.ErrMissingCategories):
		return hints.ForMissingCategories()
	case errors.Is(err, assets.ErrInvalidBasePath):
		return hints.ForContentRoot()
	case errors.Is(err, assets.ErrInvalidPattern), errors.Is(err, config.ErrInvalidPattern):
		return hints.ForPattern()
	case errors.Is(err, ErrInvalidFlags), errors.Is(err, ErrUnexpectedArgs):
		return hints.ForInvalidFlags(cmd)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// loadConfig loads the named config, attaching a hint when it is missing.
func loadConfig(name string, env *Environment) (*config.Config, error) {
	cfg, err := env.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, &hintedError{err: err, hint: hints.ForConfigNotFound(name)}
	}
	return cfg, err
}
