package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-clientlib/internal/assets"
)

// runCategoriesCmd lists the categories defined in the catalog.
func runCategoriesCmd(args []string, env *Environment) error {
	flags, err := parseCategoriesFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCategoriesUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	cfg, err := loadConfig(flags.config, env)
	if err != nil {
		return err
	}

	for _, c := range assets.NewCatalog(cfg).Categories() {
		fmt.Fprintln(env.Stdout, c)
	}
	return nil
}
