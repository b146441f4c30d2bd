// Package macro expands {{name(...)}} invocations embedded in reference
// documentation source against a registry of named handlers.
package macro

import (
	"fmt"
	"sort"
	"strings"
)

// PageContext carries per-document metadata into macro handlers.
// It is constructed once per render and never mutated by handlers.
type PageContext struct {
	Slug          string // path identifier, e.g. "Web/API/Element/ariaLevel"
	Title         string
	PageType      string // e.g. "web-api-instance-property"
	BrowserCompat string // compat-data lookup key, e.g. "api.Element.ariaLevel"
	Locale        string // e.g. "en-US"
}

// Handler produces replacement text for one macro kind.
// Handlers must be safe for concurrent use: many documents may be
// rendered in parallel against the same registry.
type Handler interface {
	Expand(args []string, ctx *PageContext) (string, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(args []string, ctx *PageContext) (string, error)

// Expand calls f.
func (f HandlerFunc) Expand(args []string, ctx *PageContext) (string, error) {
	return f(args, ctx)
}

// Registry maps macro names to their handlers. Names are matched
// case-insensitively. A Registry is populated at startup and must not
// be modified once rendering begins.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under the given name, normalizing to lowercase.
// Registering the same name twice is an error: macro names are unique.
func (r *Registry) Register(name string, h Handler) error {
	key := strings.ToLower(name)
	if _, exists := r.handlers[key]; exists {
		return fmt.Errorf("macro %q already registered", name)
	}
	r.handlers[key] = h
	return nil
}

// Lookup returns the handler for a given name, normalizing to lowercase.
// Returns ok=false if the macro is not registered.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[strings.ToLower(name)]
	return h, ok
}

// Names returns all registered macro names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
