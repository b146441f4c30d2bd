// Package render turns documentation source pages into HTML: front
// matter -> macro resolution -> Markdown conversion -> link rewriting.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
	"github.com/open-docs-collective/docref-cli/pkg/page"
)

// mdParser is a pre-configured goldmark instance with GFM table
// extension. Raw HTML passes through unescaped because macro handlers
// emit HTML fragments into the Markdown stream.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Options configures a Renderer.
type Options struct {
	BasePath string // site path prefix applied to doc links
	Locale   string
}

// Renderer renders pages against a fixed macro registry. It holds no
// per-document state: one Renderer may serve many concurrent renders.
type Renderer struct {
	resolver *macro.Resolver
	opts     Options
}

// New creates a renderer backed by the given registry.
func New(registry *macro.Registry, opts Options) *Renderer {
	return &Renderer{
		resolver: macro.NewResolver(registry),
		opts:     opts,
	}
}

// ResolvePage parses front matter and resolves macros, returning the
// expanded Markdown without HTML conversion.
func (r *Renderer) ResolvePage(source []byte) (string, error) {
	p, err := page.Parse(source)
	if err != nil {
		return "", err
	}
	return r.resolver.Resolve(p.Body, p.Context(r.opts.Locale))
}

// RenderPage renders a source page to HTML.
func (r *Renderer) RenderPage(source []byte) (string, error) {
	p, err := page.Parse(source)
	if err != nil {
		return "", err
	}

	resolved, err := r.resolver.Resolve(p.Body, p.Context(r.opts.Locale))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(resolved), &buf); err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}

	return rewriteDocLinks(buf.String(), r.opts.BasePath), nil
}
