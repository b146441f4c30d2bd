// links.go rewrites authored doc links against the configured site prefix.
package render

import "regexp"

// docLinkPattern matches root-relative locale doc links in rendered
// HTML, e.g. href="/en-US/docs/Web/API/Element".
var docLinkPattern = regexp.MustCompile(`href="(/[A-Za-z-]+/docs/[^"]*)"`)

// rewriteDocLinks prefixes root-relative doc links with the site base
// path. Macro handlers already emit prefixed links; this covers links
// the author wrote directly in Markdown.
func rewriteDocLinks(html, basePath string) string {
	if basePath == "" || basePath == "/" {
		return html
	}
	return docLinkPattern.ReplaceAllString(html, `href="`+basePath+`$1"`)
}
