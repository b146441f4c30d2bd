// Package macros provides the built-in macro handlers: cross-reference
// links, compat tables, specification lists, and status banners.
package macros

import (
	"strings"

	"github.com/open-docs-collective/docref-cli/internal/bcd"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en-US"

// Options configures the built-in handlers.
type Options struct {
	BasePath string     // site path prefix, usually empty
	Locale   string     // defaults to DefaultLocale
	Compat   *bcd.Store // compat data; nil disables Compat/Specifications
}

// docsRoot returns the locale-aware docs path prefix, e.g. "/en-US/docs".
func (o Options) docsRoot() string {
	locale := o.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	return strings.TrimSuffix(o.BasePath, "/") + "/" + locale + "/docs"
}

// Builtin pairs a macro name with its handler and a one-line summary
// for the macros listing command.
type Builtin struct {
	Name    string
	Summary string
	Handler macro.Handler
}

// Builtins returns the full built-in macro set.
// Adding a new macro = adding one entry here.
func Builtins(opts Options) []Builtin {
	return []Builtin{
		{
			Name:    "domxref",
			Summary: "Link to a Web API reference page",
			Handler: domxref(opts),
		},
		{
			Name:    "cssxref",
			Summary: "Link to a CSS reference page",
			Handler: cssxref(opts),
		},
		{
			Name:    "jsxref",
			Summary: "Link to a JavaScript reference page",
			Handler: jsxref(opts),
		},
		{
			Name:    "htmlelement",
			Summary: "Link to an HTML element reference page",
			Handler: htmlElement(opts),
		},
		{
			Name:    "glossary",
			Summary: "Link to a glossary entry",
			Handler: glossary(opts),
		},
		{
			Name:    "Compat",
			Summary: "Browser compatibility table for the page's compat key",
			Handler: compat(opts),
		},
		{
			Name:    "Specifications",
			Summary: "Specification list for the page's compat key",
			Handler: specifications(opts),
		},
		{
			Name:    "Deprecated_Header",
			Summary: "Deprecation notice banner",
			Handler: banner("deprecated", "Deprecated: This feature is no longer recommended."),
		},
		{
			Name:    "SeeCompatTable",
			Summary: "Experimental feature banner",
			Handler: banner("experimental", "Experimental: Check the browser compatibility table before using this in production."),
		},
		{
			Name:    "Non-standard_Header",
			Summary: "Non-standard feature banner",
			Handler: banner("nonstandard", "Non-standard: This feature is not on a standards track."),
		},
		{
			Name:    "AvailableInWorkers",
			Summary: "Worker availability note",
			Handler: availableInWorkers(),
		},
		{
			Name:    "EmbedLiveSample",
			Summary: "Placeholder frame for a live code sample",
			Handler: embedLiveSample(),
		},
	}
}

// Register adds every built-in handler to the registry.
func Register(reg *macro.Registry, opts Options) error {
	for _, b := range Builtins(opts) {
		if err := reg.Register(b.Name, b.Handler); err != nil {
			return err
		}
	}
	return nil
}
