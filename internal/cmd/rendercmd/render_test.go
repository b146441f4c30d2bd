package rendercmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-docs-collective/docref-cli/internal/macros"
	"github.com/open-docs-collective/docref-cli/internal/render"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

func testRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	registry := macro.NewRegistry()
	require.NoError(t, macros.Register(registry, macros.Options{}))
	return render.New(registry, render.Options{})
}

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunRender_ToFile(t *testing.T) {
	path := writePage(t, "---\nslug: Web/API/Element\n---\n\nSee {{domxref(\"Element\")}}.\n")
	outPath := filepath.Join(t.TempDir(), "index.html")

	err := runRender(path, &renderOptions{outFile: outPath}, testRenderer(t))
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="/en-US/docs/Web/API/Element"`)
}

func TestRunRender_TextMode(t *testing.T) {
	path := writePage(t, "# Title\n\n{{domxref(\"Element\")}}\n")
	outPath := filepath.Join(t.TempDir(), "out.md")

	err := runRender(path, &renderOptions{outFile: outPath, text: true}, testRenderer(t))
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "# Title")
	assert.NotContains(t, string(out), "<h1>")
}

func TestRunRender_UnknownMacro(t *testing.T) {
	path := writePage(t, "{{mystery}}\n")

	err := runRender(path, &renderOptions{}, testRenderer(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown macro "mystery"`)
	assert.Contains(t, err.Error(), path)
}

func TestRunRender_MissingFile(t *testing.T) {
	err := runRender(filepath.Join(t.TempDir(), "missing.md"), &renderOptions{}, testRenderer(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read page")
}
