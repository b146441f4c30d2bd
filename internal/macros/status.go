// status.go implements the fixed status banner macros.
package macros

import (
	"fmt"
	"html"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// banner returns a handler emitting a fixed notice block. Banners take
// no arguments.
func banner(kind, message string) macro.Handler {
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		if len(args) > 0 {
			return "", fmt.Errorf("banner macro takes no arguments")
		}
		return fmt.Sprintf(`<div class="notecard %s"><p>%s</p></div>`,
			kind, html.EscapeString(message)), nil
	})
}

// availableInWorkers emits the worker availability note. An optional
// argument narrows the scope, e.g. "window_and_worker_except_service".
func availableInWorkers() macro.Handler {
	scopes := map[string]string{
		"":                                "This feature is available in Web Workers.",
		"window_and_worker_except_service": "This feature is available in Web Workers, except for Service Workers.",
		"dedicated":                        "This feature is only available in Dedicated Web Workers.",
		"worker":                           "This feature is only available in Web Workers.",
	}
	return macro.HandlerFunc(func(args []string, _ *macro.PageContext) (string, error) {
		scope := ""
		if len(args) > 0 {
			scope = args[0]
		}
		message, ok := scopes[scope]
		if !ok {
			return "", fmt.Errorf("unknown worker scope %q", scope)
		}
		return fmt.Sprintf(`<div class="notecard note"><p>%s</p></div>`,
			html.EscapeString(message)), nil
	})
}
