// Package api exposes the resolution daemon's HTTP surface: component
// registration, variant selection, health and metrics.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/facet-platform/facet/internal/manifest"
	"github.com/facet-platform/facet/internal/model"
	"github.com/facet-platform/facet/internal/registry"
	"github.com/facet-platform/facet/internal/selector"
)

type Server struct {
	registry *registry.Registry
	logger   *zap.Logger
	http     *http.Server
}

func NewServer(reg *registry.Registry, logger *zap.Logger, addr string) *Server {
	s := &Server{registry: reg, logger: logger}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Router builds the route table; exposed separately for tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/components", s.handleRegister)
		r.Get("/components", s.handleListComponents)
		r.Delete("/components/{id}", s.handleDeleteComponent)
		r.Post("/select", s.handleSelect)
	})
	return r
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("api listening", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleRegister accepts a YAML component manifest and registers (or
// replaces) the component under its coordinates.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	doc, err := manifest.Load(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.registry.Put(doc.Component, doc.Schema)
	facetRegisteredComponents.Set(float64(s.registry.Len()))
	s.logger.Info("component registered",
		zap.String("component", doc.Component.ID.String()),
		zap.Int("variants", len(doc.Component.Variants)),
	)

	s.writeJSON(w, http.StatusCreated, RegisterResponse{
		Component: doc.Component.ID.String(),
		Variants:  len(doc.Component.Variants),
	})
}

func (s *Server) handleListComponents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, ComponentsResponse{Components: s.registry.Keys()})
}

func (s *Server) handleDeleteComponent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.registry.Delete(id) {
		s.writeError(w, http.StatusNotFound, registry.ErrNotFound)
		return
	}
	facetRegisteredComponents.Set(float64(s.registry.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	entry, err := s.registry.Lookup(req.Component)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	sel, err := toSelectorRequest(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	variant, err := selector.Select(sel, entry.Component, entry.Schema)
	facetSelectionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.writeSelectionFailure(w, req.Component, err)
		return
	}

	facetSelectionTotal.WithLabelValues("selected").Inc()
	s.writeJSON(w, http.StatusOK, SelectResponse{
		Component: req.Component,
		Variant:   toVariantPayload(variant, entry.Component.ID),
	})
}

// writeSelectionFailure maps the selector's typed failures onto 422 payloads
// carrying the verbatim diagnostic text.
func (s *Server) writeSelectionFailure(w http.ResponseWriter, component string, err error) {
	var (
		ambiguous *selector.AmbiguousVariantError
		noMatch   *selector.NoMatchingVariantError
	)
	switch {
	case errors.As(err, &ambiguous):
		facetSelectionTotal.WithLabelValues("ambiguous").Inc()
		s.logger.Warn("ambiguous selection", zap.String("component", component))
		s.writeJSON(w, http.StatusUnprocessableEntity, SelectionFailure{
			Kind:       "ambiguous",
			Component:  component,
			Message:    err.Error(),
			Candidates: toCandidatePayloads(ambiguous.Candidates),
		})
	case errors.As(err, &noMatch):
		facetSelectionTotal.WithLabelValues("no_match").Inc()
		s.logger.Warn("no matching variant", zap.String("component", component))
		s.writeJSON(w, http.StatusUnprocessableEntity, SelectionFailure{
			Kind:       "no-match",
			Component:  component,
			Message:    err.Error(),
			Candidates: toCandidatePayloads(noMatch.Candidates),
		})
	default:
		facetSelectionTotal.WithLabelValues("error").Inc()
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func toSelectorRequest(req SelectRequest) (selector.Request, error) {
	pairs := make([]model.Attribute, 0, len(req.Attributes))
	for _, a := range req.Attributes {
		pairs = append(pairs, model.Attr(a.Name, a.Value))
	}
	out := selector.Request{Attributes: model.NewAttributeSet(pairs...)}
	for _, raw := range req.Capabilities {
		rc, err := model.ParseRequestedCapability(raw)
		if err != nil {
			return selector.Request{}, err
		}
		out.Capabilities = append(out.Capabilities, rc)
	}
	return out, nil
}

func toVariantPayload(v model.Variant, owner model.ComponentID) VariantPayload {
	p := VariantPayload{Name: v.Name}
	for _, name := range v.Attributes.Names() {
		value, _ := v.Attributes.Value(name)
		p.Attributes = append(p.Attributes, AttributePair{Name: name, Value: value})
	}
	for _, c := range v.EffectiveCapabilities(owner) {
		p.Capabilities = append(p.Capabilities, c.String())
	}
	return p
}

func toCandidatePayloads(candidates []selector.Candidate) []CandidatePayload {
	out := make([]CandidatePayload, 0, len(candidates))
	for _, c := range candidates {
		p := CandidatePayload{Name: c.Variant.Name}
		for _, capability := range c.Capabilities {
			p.Capabilities = append(p.Capabilities, capability.String())
		}
		for _, a := range c.Assessments {
			p.Assessments = append(p.Assessments, AssessmentEntry{
				Attribute:     a.Name,
				ConsumerValue: a.ConsumerValue,
				ProducerValue: a.ProducerValue,
				Requested:     a.Requested,
				Provided:      a.Provided,
				Compatible:    a.Compatible,
			})
		}
		out = append(out, p)
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
