package gotypes

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// LoadConfig controls package loading.
type LoadConfig struct {
	Dir        string   // working directory, empty for the current one
	BuildFlags []string // passed to the build system, e.g. -tags=wireinject
}

// Load loads the packages matching patterns and builds a Universe over them.
// Patterns are standard Go package patterns (e.g., "./...", "inject-visitor/examples/coffee").
func Load(cfg LoadConfig, patterns []string, opts ...Option) (*Universe, error) {
	pcfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
	}

	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	return FromPackages(pkgs, opts...), nil
}
