// Package page loads reference documentation source files: Markdown
// bodies with a YAML front-matter header.
package page

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// Meta holds the front-matter metadata of a page.
type Meta struct {
	Title         string   `yaml:"title"`
	Slug          string   `yaml:"slug"`
	PageType      string   `yaml:"page-type,omitempty"`
	BrowserCompat string   `yaml:"browser-compat,omitempty"`
	Status        []string `yaml:"status,omitempty"`
}

// Page is a loaded source document: metadata plus the Markdown body.
// BodyOffset is the byte offset of the body within the original source,
// so body-relative error offsets can be mapped back to source positions.
type Page struct {
	Meta       Meta
	Body       string
	BodyOffset int
}

// Context builds the macro page context for rendering this page.
func (p *Page) Context(locale string) *macro.PageContext {
	return &macro.PageContext{
		Slug:          p.Meta.Slug,
		Title:         p.Meta.Title,
		PageType:      p.Meta.PageType,
		BrowserCompat: p.Meta.BrowserCompat,
		Locale:        locale,
	}
}

const frontMatterDelim = "---"

// Parse splits source into front matter and body. A page without a
// front-matter header yields empty metadata and the whole source as
// body. Malformed YAML in the header is an error.
func Parse(source []byte) (*Page, error) {
	text := string(source)

	rest, ok := strings.CutPrefix(text, frontMatterDelim+"\n")
	if !ok {
		return &Page{Body: text}, nil
	}

	header, body, found := strings.Cut(rest, "\n"+frontMatterDelim)
	if !found {
		return nil, fmt.Errorf("unterminated front matter")
	}
	// Drop the newline following the closing delimiter, if any.
	body = strings.TrimPrefix(body, "\n")

	var meta Meta
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}

	return &Page{Meta: meta, Body: body, BodyOffset: len(text) - len(body)}, nil
}

// Load reads and parses a page from disk.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
