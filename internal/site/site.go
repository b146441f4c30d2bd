// Package site assembles the macro registry and page renderer from
// configuration. The registry is built once per invocation and is
// read-only from then on.
package site

import (
	"fmt"

	"github.com/open-docs-collective/docref-cli/internal/bcd"
	"github.com/open-docs-collective/docref-cli/internal/config"
	"github.com/open-docs-collective/docref-cli/internal/macros"
	"github.com/open-docs-collective/docref-cli/internal/render"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// NewRenderer builds a page renderer with the full built-in macro set.
// Compat data is loaded up front so no I/O happens during resolution.
func NewRenderer(cfg *config.Config) (*render.Renderer, error) {
	registry, err := NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	return render.New(registry, render.Options{
		BasePath: cfg.BasePath,
		Locale:   cfg.Locale,
	}), nil
}

// NewRegistry builds the macro registry from configuration.
func NewRegistry(cfg *config.Config) (*macro.Registry, error) {
	opts, err := macroOptions(cfg)
	if err != nil {
		return nil, err
	}

	registry := macro.NewRegistry()
	if err := macros.Register(registry, opts); err != nil {
		return nil, fmt.Errorf("failed to build macro registry: %w", err)
	}
	return registry, nil
}

// Builtins returns the configured built-in macro set, for listing.
func Builtins(cfg *config.Config) ([]macros.Builtin, error) {
	opts, err := macroOptions(cfg)
	if err != nil {
		return nil, err
	}
	return macros.Builtins(opts), nil
}

func macroOptions(cfg *config.Config) (macros.Options, error) {
	opts := macros.Options{
		BasePath: cfg.BasePath,
		Locale:   cfg.Locale,
	}
	if cfg.CompatData != "" {
		store, err := bcd.Load(cfg.CompatData)
		if err != nil {
			return macros.Options{}, err
		}
		opts.Compat = store
	}
	return opts, nil
}
