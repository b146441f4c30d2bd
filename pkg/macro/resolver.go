// resolver.go substitutes resolved macro output back into document text.
package macro

import "strings"

// Resolver expands macro invocations in document text against a
// registry. A Resolver is stateless and safe for concurrent use once
// the registry is populated.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Resolve replaces every macro invocation in input with its handler's
// output and returns the new document text. Invocations are resolved
// strictly left to right; handler output is never rescanned, so
// expansion cannot loop. Any malformed invocation, unknown macro name,
// or handler failure aborts the render: no partial output is returned.
func (r *Resolver) Resolve(input string, ctx *PageContext) (string, error) {
	// Documents without invocations pass through untouched.
	if !strings.Contains(input, openDelim) {
		return input, nil
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(input))

	for _, token := range tokens {
		switch token.Type {
		case TokenText:
			out.WriteString(token.Text)
		case TokenInvocation:
			handler, ok := r.registry.Lookup(token.Name)
			if !ok {
				return "", &UnknownMacroError{Name: token.Name, Offset: token.Offset}
			}
			replacement, err := handler.Expand(token.Args, ctx)
			if err != nil {
				return "", &HandlerError{Name: token.Name, Offset: token.Offset, Err: err}
			}
			out.WriteString(replacement)
		}
	}

	return out.String(), nil
}
