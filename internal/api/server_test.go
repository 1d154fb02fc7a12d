package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/facet-platform/facet/internal/registry"
)

const libManifest = `
component:
  group: org
  name: lib
  version: "1.0"
variants:
  - name: api
    attributes:
      usage: java-api
  - name: runtime
    attributes:
      usage: java-runtime
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(registry.New(), zap.NewNop(), ":0")
}

func register(t *testing.T, router http.Handler, body string) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/components", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func postSelect(t *testing.T, router http.Handler, body SelectRequest) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/select", bytes.NewReader(raw))
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndList(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, libManifest)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/components", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list ComponentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Equal(t, []string{"org:lib:1.0"}, list.Components)
}

func TestRegisterRejectsBadManifest(t *testing.T) {
	router := newTestServer(t).Router()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/components", strings.NewReader("variants: []"))
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectReturnsVariant(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, libManifest)

	rec := postSelect(t, router, SelectRequest{
		Component:  "org:lib:1.0",
		Attributes: []AttributePair{{Name: "usage", Value: "java-api"}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SelectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "api", resp.Variant.Name)
	require.Equal(t, []string{"org:lib:1.0"}, resp.Variant.Capabilities)
}

func TestSelectUnknownComponent(t *testing.T) {
	router := newTestServer(t).Router()
	rec := postSelect(t, router, SelectRequest{Component: "org:missing:1.0"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectNoMatchCarriesVerbatimDiagnostic(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, libManifest)

	rec := postSelect(t, router, SelectRequest{
		Component:  "org:lib:1.0",
		Attributes: []AttributePair{{Name: "usage", Value: "cplusplus-api"}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var failure SelectionFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	require.Equal(t, "no-match", failure.Kind)
	require.Len(t, failure.Candidates, 2)

	want := `Unable to find a matching variant of org:lib:1.0:
  - Variant 'api' capability org:lib:1.0:
      - Required usage 'cplusplus-api' and found incompatible value 'java-api'.
  - Variant 'runtime' capability org:lib:1.0:
      - Required usage 'cplusplus-api' and found incompatible value 'java-runtime'.`
	require.Equal(t, want, failure.Message)
}

func TestSelectAmbiguous(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, `
component:
  group: org
  name: lib
  version: "1.0"
variants:
  - name: api1
    attributes:
      usage: java-api
  - name: api2
    attributes:
      usage: java-api
`)

	rec := postSelect(t, router, SelectRequest{
		Component:  "org:lib:1.0",
		Attributes: []AttributePair{{Name: "usage", Value: "java-api"}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var failure SelectionFailure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	require.Equal(t, "ambiguous", failure.Kind)
	require.Equal(t, []string{"api1", "api2"}, []string{failure.Candidates[0].Name, failure.Candidates[1].Name})
	require.True(t, strings.HasPrefix(failure.Message, "Cannot choose between the following variants of org:lib:1.0:"))
}

func TestSelectWithCapabilityFilter(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, `
component:
  group: org
  name: lib
  version: "1.0"
variants:
  - name: api1
    attributes:
      usage: java-api
  - name: api2
    attributes:
      usage: java-api
    capabilities:
      - org:second:1.0
`)

	rec := postSelect(t, router, SelectRequest{
		Component:    "org:lib:1.0",
		Attributes:   []AttributePair{{Name: "usage", Value: "java-api"}},
		Capabilities: []string{"org:second:1.0"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SelectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "api2", resp.Variant.Name)
}

func TestSelectRejectsMalformedCapability(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, libManifest)

	rec := postSelect(t, router, SelectRequest{
		Component:    "org:lib:1.0",
		Capabilities: []string{"not-a-capability"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteComponent(t *testing.T) {
	router := newTestServer(t).Router()
	register(t, router, libManifest)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/components/org:lib:1.0", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/components/org:lib:1.0", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
