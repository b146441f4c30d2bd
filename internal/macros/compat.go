// compat.go implements the Compat and Specifications macros, which
// render from the preloaded compat data store.
package macros

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/open-docs-collective/docref-cli/internal/bcd"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// browserLabels maps compat data browser identifiers to display names.
// Browsers outside this set are shown under their raw identifier.
var browserLabels = map[string]string{
	"chrome":          "Chrome",
	"chrome_android":  "Chrome Android",
	"edge":            "Edge",
	"firefox":         "Firefox",
	"safari":          "Safari",
	"safari_ios":      "Safari on iOS",
	"opera":           "Opera",
	"webview_android": "WebView Android",
}

// compat renders a browser support table for the page's compat key.
// An explicit key may be passed as the first argument.
func compat(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, ctx *macro.PageContext) (string, error) {
		feature, err := lookupFeature(opts, args, ctx)
		if err != nil {
			return "", err
		}
		return renderCompatTable(feature), nil
	})
}

// specifications renders the specification link list for the page's
// compat key.
func specifications(opts Options) macro.Handler {
	return macro.HandlerFunc(func(args []string, ctx *macro.PageContext) (string, error) {
		feature, err := lookupFeature(opts, args, ctx)
		if err != nil {
			return "", err
		}
		if len(feature.SpecURLs) == 0 {
			return `<p>No specification found for this feature.</p>`, nil
		}
		var sb strings.Builder
		sb.WriteString(`<ul class="spec-list">`)
		for _, url := range feature.SpecURLs {
			escaped := html.EscapeString(url)
			fmt.Fprintf(&sb, `<li><a href="%s">%s</a></li>`, escaped, escaped)
		}
		sb.WriteString(`</ul>`)
		return sb.String(), nil
	})
}

// lookupFeature resolves the compat key from the argument list or the
// page context and fetches its feature record.
func lookupFeature(opts Options, args []string, ctx *macro.PageContext) (bcd.Feature, error) {
	key := ctx.BrowserCompat
	if len(args) > 0 && args[0] != "" {
		key = args[0]
	}
	if key == "" {
		return bcd.Feature{}, fmt.Errorf("page %q has no browser-compat key", ctx.Slug)
	}
	if opts.Compat == nil {
		return bcd.Feature{}, fmt.Errorf("no compat data loaded")
	}
	feature, ok := opts.Compat.Lookup(key)
	if !ok {
		return bcd.Feature{}, fmt.Errorf("unknown compat feature %q", key)
	}
	return feature, nil
}

func renderCompatTable(feature bcd.Feature) string {
	browsers := make([]string, 0, len(feature.Support))
	for browser := range feature.Support {
		browsers = append(browsers, browser)
	}
	sort.Strings(browsers)

	var sb strings.Builder
	sb.WriteString(`<table class="bc-table"><thead><tr>`)
	for _, browser := range browsers {
		fmt.Fprintf(&sb, `<th>%s</th>`, html.EscapeString(browserLabel(browser)))
	}
	sb.WriteString(`</tr></thead><tbody><tr>`)
	for _, browser := range browsers {
		version := feature.Support[browser]
		fmt.Fprintf(&sb, `<td class="bc-%s">%s</td>`, supportClass(version), html.EscapeString(version))
	}
	sb.WriteString(`</tr></tbody></table>`)
	return sb.String()
}

func browserLabel(id string) string {
	if label, ok := browserLabels[id]; ok {
		return label
	}
	return id
}

func supportClass(version string) string {
	if version == "no" {
		return "unsupported"
	}
	return "supported"
}
