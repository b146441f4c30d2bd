package macroscmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-docs-collective/docref-cli/internal/macros"
)

func TestRunMacros(t *testing.T) {
	builtins := macros.Builtins(macros.Options{})

	for _, format := range []string{"table", "json", "plain"} {
		t.Run(format, func(t *testing.T) {
			opts := &macrosOptions{output: format, noColor: true}
			require.NoError(t, runMacros(opts, builtins))
		})
	}
}

func TestRunMacros_InvalidFormat(t *testing.T) {
	opts := &macrosOptions{output: "xml", noColor: true}
	err := runMacros(opts, macros.Builtins(macros.Options{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
