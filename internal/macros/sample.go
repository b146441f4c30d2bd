// sample.go implements the EmbedLiveSample macro.
package macros

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

// embedLiveSample emits a placeholder iframe for a named code sample.
// {{EmbedLiveSample("Basic usage", 640, 160)}}
func embedLiveSample() macro.Handler {
	return macro.HandlerFunc(func(args []string, ctx *macro.PageContext) (string, error) {
		if len(args) == 0 || args[0] == "" {
			return "", fmt.Errorf("EmbedLiveSample requires a sample name")
		}
		width, height := 660, 250
		var err error
		if len(args) > 1 {
			if width, err = strconv.Atoi(args[1]); err != nil {
				return "", fmt.Errorf("invalid sample width %q", args[1])
			}
		}
		if len(args) > 2 {
			if height, err = strconv.Atoi(args[2]); err != nil {
				return "", fmt.Errorf("invalid sample height %q", args[2])
			}
		}

		id := sampleID(args[0])
		return fmt.Sprintf(
			`<iframe class="live-sample" id="sample-%s" data-slug="%s" width="%d" height="%d"></iframe>`,
			id, ctx.Slug, width, height), nil
	})
}

// sampleID normalizes a sample heading into a fragment identifier.
func sampleID(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
