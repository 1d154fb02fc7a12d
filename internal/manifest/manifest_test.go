package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/selector"
)

const sampleManifest = `
component:
  group: org
  name: lib
  version: "1.0"
variants:
  - name: api
    attributes:
      usage: java-api
      status: release
  - name: runtime
    attributes:
      usage: java-runtime
    capabilities:
      - org:lib:1.0
      - org:lib-runtime:1.0
schema:
  - attribute: usage
    compatible:
      - consumer: java-api
        producers: [java-api, java-7-api]
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	require.Equal(t, "org:lib:1.0", doc.Component.ID.String())
	require.Len(t, doc.Component.Variants, 2)

	api := doc.Component.Variants[0]
	require.Equal(t, "api", api.Name)
	// Mapping order must survive decoding.
	require.Equal(t, []string{"usage", "status"}, api.Attributes.Names())
	require.Empty(t, api.Capabilities)

	runtime := doc.Component.Variants[1]
	require.Len(t, runtime.Capabilities, 2)
	require.Equal(t, "org:lib-runtime:1.0", runtime.Capabilities[1].String())

	require.True(t, doc.Schema.Compatible("usage", "java-api", "java-7-api"))
	require.False(t, doc.Schema.Compatible("usage", "java-api", "java-runtime"))
}

func TestParseFeedsSelection(t *testing.T) {
	doc, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	req := selector.Request{
		Attributes: model.NewAttributeSet(model.Attr("usage", "java-runtime")),
	}

	v, err := selector.Select(req, doc.Component, doc.Schema)
	require.NoError(t, err)
	require.Equal(t, "runtime", v.Name)
}

func TestParseRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing identity", "variants:\n  - name: api\n"},
		{"no variants", "component: {group: org, name: lib, version: \"1.0\"}\n"},
		{"duplicate variant", `
component: {group: org, name: lib, version: "1.0"}
variants:
  - name: api
  - name: api
`},
		{"malformed capability", `
component: {group: org, name: lib, version: "1.0"}
variants:
  - name: api
    capabilities: [not-a-capability]
`},
		{"schema rule without attribute", `
component: {group: org, name: lib, version: "1.0"}
variants:
  - name: api
schema:
  - compatible:
      - consumer: a
        producers: [b]
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			require.Error(t, err)
		})
	}
}
