// xref.go implements the cross-reference link macros.
package macros

import (
	"fmt"
	"html"
	"strings"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// domxref links to a Web API reference page.
// {{domxref("Element.ariaLevel")}} or {{domxref("Element.ariaLevel", "ariaLevel")}}
func domxref(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		target, display, err := linkArgs("domxref", args)
		if err != nil {
			return "", err
		}
		href := opts.docsRoot() + "/Web/API/" + apiSlug(target)
		return codeLink(href, display), nil
	})
}

// cssxref links to a CSS reference page.
func cssxref(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		target, display, err := linkArgs("cssxref", args)
		if err != nil {
			return "", err
		}
		href := opts.docsRoot() + "/Web/CSS/" + pathSegment(target)
		return codeLink(href, display), nil
	})
}

// jsxref links to a JavaScript global-object reference page.
func jsxref(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		target, display, err := linkArgs("jsxref", args)
		if err != nil {
			return "", err
		}
		href := opts.docsRoot() + "/Web/JavaScript/Reference/Global_Objects/" + apiSlug(target)
		return codeLink(href, display), nil
	})
}

// htmlElement links to an HTML element reference page. The display
// text is the element name in angle brackets unless overridden.
func htmlElement(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		target, display, err := linkArgs("htmlelement", args)
		if err != nil {
			return "", err
		}
		if len(args) < 2 {
			display = "<" + target + ">"
		}
		href := opts.docsRoot() + "/Web/HTML/Element/" + pathSegment(target)
		return codeLink(href, display), nil
	})
}

// glossary links to a glossary entry as plain text, no code styling.
func glossary(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		target, display, err := linkArgs("glossary", args)
		if err != nil {
			return "", err
		}
		href := opts.docsRoot() + "/Glossary/" + pathSegment(target)
		return fmt.Sprintf(`<a href="%s">%s</a>`, href, html.EscapeString(display)), nil
	})
}

// linkArgs validates the common (target, optional display) argument
// shape shared by all cross-reference macros.
func linkArgs(name string, args []string) (target, display string, err error) {
	if len(args) == 0 || args[0] == "" {
		return "", "", fmt.Errorf("%s requires a target argument", name)
	}
	target = args[0]
	display = target
	if len(args) > 1 && args[1] != "" {
		display = args[1]
	}
	return target, display, nil
}

// apiSlug converts a dotted API reference ("Element.ariaLevel") into a
// slug path ("Element/ariaLevel"). Call parentheses and spaces are
// normalized away.
func apiSlug(target string) string {
	s := strings.ReplaceAll(target, "()", "")
	s = strings.ReplaceAll(s, ".", "/")
	return pathSegment(s)
}

// pathSegment makes a name safe for use inside a docs path.
func pathSegment(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// codeLink renders the standard cross-reference anchor.
func codeLink(href, display string) string {
	return fmt.Sprintf(`<a href="%s"><code>%s</code></a>`, href, html.EscapeString(display))
}
