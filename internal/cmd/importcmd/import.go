// Package importcmd provides the import command for dref.
package importcmd

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"
)

type importOptions struct {
	outFile string
	noMacro bool
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file.html>",
		Short: "Convert an HTML page to Markdown source",
		Long: `Convert a legacy HTML reference page into Markdown source.

Links into known reference sections (Web API, Glossary) are rewritten
back into macro invocations so the imported page renders through the
same pipeline as hand-written pages.`,
		Example: `  # Convert to stdout
  dref import legacy/arialevel.html

  # Convert to a source file
  dref import legacy/arialevel.html --out content/arialevel/index.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImport(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write Markdown to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noMacro, "no-macros", false, "Keep plain links instead of rewriting to macros")

	return cmd
}

func runImport(path string, opts *importOptions) error {
	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(string(html))
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}
	markdown = strings.TrimSpace(markdown) + "\n"

	if !opts.noMacro {
		markdown = rebracketLinks(markdown)
	}

	if opts.outFile != "" {
		if err := os.WriteFile(opts.outFile, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Print(markdown)
	return nil
}

// Markdown links into reference sections, e.g.
// [`ariaLevel`](/en-US/docs/Web/API/Element/ariaLevel). The label may
// carry backticks from code-styled anchors.
var (
	apiLinkPattern      = regexp.MustCompile("\\[`?([^`\\]]+)`?\\]\\((?:https?://[^/)]+)?/[A-Za-z-]+/docs/Web/API/([^)#\\s]+)\\)")
	glossaryLinkPattern = regexp.MustCompile("\\[`?([^`\\]]+)`?\\]\\((?:https?://[^/)]+)?/[A-Za-z-]+/docs/Glossary/([^)#\\s]+)\\)")
)

// rebracketLinks rewrites reference links back into macro syntax so the
// imported page resolves them the way authored pages do.
func rebracketLinks(markdown string) string {
	markdown = apiLinkPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		groups := apiLinkPattern.FindStringSubmatch(match)
		target := strings.ReplaceAll(groups[2], "/", ".")
		if display := groups[1]; display != target {
			return fmt.Sprintf(`{{domxref("%s", "%s")}}`, target, display)
		}
		return fmt.Sprintf(`{{domxref("%s")}}`, target)
	})
	markdown = glossaryLinkPattern.ReplaceAllStringFunc(markdown, func(match string) string {
		groups := glossaryLinkPattern.FindStringSubmatch(match)
		target := strings.ReplaceAll(groups[2], "_", " ")
		if display := groups[1]; display != target {
			return fmt.Sprintf(`{{glossary("%s", "%s")}}`, target, display)
		}
		return fmt.Sprintf(`{{glossary("%s")}}`, target)
	})
	return markdown
}
