package macros

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-docs-collective/docref-cli/internal/bcd"
	"github.com/open-docs-collective/docref-cli/pkg/macro"
)

func testStore(t *testing.T) *bcd.Store {
	t.Helper()
	store, err := bcd.Parse([]byte(`{
		"api": {
			"Element": {
				"ariaLevel": {
					"__compat": {
						"support": {
							"chrome": {"version_added": "81"},
							"firefox": {"version_added": "119"},
							"ie": {"version_added": false}
						},
						"spec_url": "https://w3c.github.io/aria/#dom-ariamixin-arialevel",
						"status": {"standard_track": true}
					}
				},
				"unspecified": {
					"__compat": {
						"support": {"chrome": {"version_added": "1"}}
					}
				}
			}
		}
	}`))
	require.NoError(t, err)
	return store
}

func TestCompat_RendersTable(t *testing.T) {
	h := compat(Options{Compat: testStore(t)})
	ctx := &macro.PageContext{
		Slug:          "Web/API/Element/ariaLevel",
		BrowserCompat: "api.Element.ariaLevel",
	}

	out, err := h.Expand(nil, ctx)
	require.NoError(t, err)

	assert.Contains(t, out, `<table class="bc-table">`)
	assert.Contains(t, out, "<th>Chrome</th>")
	assert.Contains(t, out, "<th>Firefox</th>")
	assert.Contains(t, out, `<td class="bc-supported">81</td>`)
	assert.Contains(t, out, `<td class="bc-supported">119</td>`)
	assert.Contains(t, out, `<td class="bc-unsupported">no</td>`)
}

func TestCompat_ExplicitKeyArgument(t *testing.T) {
	h := compat(Options{Compat: testStore(t)})

	out, err := h.Expand([]string{"api.Element.ariaLevel"}, &macro.PageContext{})
	require.NoError(t, err)
	assert.Contains(t, out, "81")
}

func TestCompat_Failures(t *testing.T) {
	store := testStore(t)

	tests := []struct {
		name    string
		opts    Options
		ctx     *macro.PageContext
		wantErr string
	}{
		{
			"no compat key on page",
			Options{Compat: store},
			&macro.PageContext{Slug: "Web/API/Element"},
			"has no browser-compat key",
		},
		{
			"no compat data loaded",
			Options{},
			&macro.PageContext{BrowserCompat: "api.Element.ariaLevel"},
			"no compat data loaded",
		},
		{
			"unknown feature",
			Options{Compat: store},
			&macro.PageContext{BrowserCompat: "api.Element.missing"},
			"unknown compat feature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := compat(tt.opts)
			_, err := h.Expand(nil, tt.ctx)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSpecifications(t *testing.T) {
	h := specifications(Options{Compat: testStore(t)})
	ctx := &macro.PageContext{BrowserCompat: "api.Element.ariaLevel"}

	out, err := h.Expand(nil, ctx)
	require.NoError(t, err)
	assert.Contains(t, out, `<ul class="spec-list">`)
	assert.Contains(t, out, "https://w3c.github.io/aria/#dom-ariamixin-arialevel")
}

func TestSpecifications_NoSpecURL(t *testing.T) {
	h := specifications(Options{Compat: testStore(t)})
	ctx := &macro.PageContext{BrowserCompat: "api.Element.unspecified"}

	out, err := h.Expand(nil, ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>No specification found for this feature.</p>", out)
}
