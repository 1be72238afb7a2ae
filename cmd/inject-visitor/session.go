package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"inject-visitor/internal/classpath"
	"inject-visitor/internal/config"
	"inject-visitor/internal/element"
	"inject-visitor/internal/gotypes"
	"inject-visitor/internal/host"
	"inject-visitor/internal/inspect"
	"inject-visitor/internal/visitor"
)

// sourceOptions select the frontend the session runs over.
type sourceOptions struct {
	manifests []string
	packages  []string
	dir       string
}

func (s *sourceOptions) register(cmd *cobra.Command) {
	s.addFlags(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("classpath", "packages")
}

func (s *sourceOptions) addFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&s.manifests, "classpath", nil, "YAML class manifests to load")
	flags.StringSliceVar(&s.packages, "packages", nil, "Go package patterns to load")
	flags.StringVar(&s.dir, "dir", "", "directory to load Go packages from")
}

// namer is implemented by frontends that can list their declarations.
type namer interface {
	Names() []string
}

// session is one visitor context over a loaded frontend.
type session struct {
	ctx       *visitor.Context
	known     []string
	inspector *inspect.Inspector
}

func openSession(cfg *config.Config, src *sourceOptions) (*session, error) {
	h, err := openHost(cfg, src)
	if err != nil {
		return nil, err
	}

	ctx := visitor.New(h)

	var opts []element.FactoryOption
	if cfg.Generics == config.GenericsArguments {
		opts = append(opts, element.WithGenerics(element.TypeArgumentGenerics{}))
	}

	var known []string
	if n, ok := h.(namer); ok {
		known = n.Names()
	}

	return &session{
		ctx:       ctx,
		known:     known,
		inspector: inspect.New(element.NewFactory(ctx, opts...), inspect.WithKnownNames(known)),
	}, nil
}

func openHost(cfg *config.Config, src *sourceOptions) (host.Host, error) {
	switch {
	case len(src.manifests) > 0:
		return classpath.LoadFiles(src.manifests...)
	case len(src.packages) > 0:
		return gotypes.Load(
			gotypes.LoadConfig{Dir: src.dir, BuildFlags: cfg.BuildFlags},
			src.packages,
			gotypes.WithDirectives(cfg.Directives...),
			gotypes.WithTags(cfg.Tags...),
		)
	default:
		return nil, errors.New("either --classpath or --packages is required")
	}
}

// names returns args, or every declaration of the frontend when args is empty.
func (s *session) names(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return s.known
}

func (s *session) Close() {
	s.ctx.Close()
}
