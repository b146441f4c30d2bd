package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

func TestEmbedLiveSample(t *testing.T) {
	h := embedLiveSample()
	ctx := &macro.PageContext{Slug: "Web/API/Element/ariaLevel"}

	out, err := h.Expand([]string{"Basic usage", "640", "160"}, ctx)
	require.NoError(t, err)
	assert.Equal(t,
		`<iframe class="live-sample" id="sample-basic_usage" data-slug="Web/API/Element/ariaLevel" width="640" height="160"></iframe>`,
		out)
}

func TestEmbedLiveSample_DefaultDimensions(t *testing.T) {
	h := embedLiveSample()

	out, err := h.Expand([]string{"Examples"}, &macro.PageContext{})
	require.NoError(t, err)
	assert.Contains(t, out, `width="660"`)
	assert.Contains(t, out, `height="250"`)
}

func TestEmbedLiveSample_Failures(t *testing.T) {
	h := embedLiveSample()

	_, err := h.Expand(nil, &macro.PageContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a sample name")

	_, err = h.Expand([]string{"Examples", "wide"}, &macro.PageContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid sample width "wide"`)

	_, err = h.Expand([]string{"Examples", "640", "tall"}, &macro.PageContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid sample height "tall"`)
}

func TestSampleID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Basic usage", "basic_usage"},
		{"Examples", "examples"},
		{"With punctuation!", "with_punctuation_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sampleID(tt.input))
		})
	}
}
