// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package handler exposes the brain dump and draft generation endpoints as
// http.Handlers. Both follow the same pipeline: check the method, decode and
// validate the body, call the model once, parse the reply and respond with
// JSON. Every failure becomes a {"error": "..."} body.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/internal/metrics"
	"github.com/pdiddy/mailwright/pkg/types"
)

// maxBodyBytes caps inbound request bodies.
const maxBodyBytes = 1 << 20

// Extractor structures a brain dump. The reply stays raw JSON so callers see
// the model's keys and values unchanged.
type Extractor interface {
	Extract(ctx context.Context, brainDump string) (json.RawMessage, error)
}

// Generator writes a draft set as raw JSON.
type Generator interface {
	Generate(ctx context.Context, req types.EmailRequest) (json.RawMessage, error)
}

// Handlers holds the endpoint dependencies.
type Handlers struct {
	extractor Extractor
	generator Generator
	log       *zap.Logger
}

// New returns Handlers backed by e and g. A nil logger discards output.
func New(e Extractor, g Generator, log *zap.Logger) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{extractor: e, generator: g, log: log}
}

// brainDumpRequest is the body accepted by the brain dump endpoint.
type brainDumpRequest struct {
	BrainDump string `json:"brainDump"`
}

// BrainDump returns the endpoint that turns free text into an EmailRequest.
func (h *Handlers) BrainDump() http.Handler {
	return &endpoint{
		name:       "braindump",
		gatewayMsg: "Failed to process brain dump",
		log:        h.log,
		serve: func(r *http.Request) (any, error) {
			var in brainDumpRequest
			if err := decodeBody(r, &in); err != nil {
				return nil, err
			}
			return h.extractor.Extract(r.Context(), in.BrainDump)
		},
	}
}

// Drafts returns the endpoint that writes three drafts for an EmailRequest.
func (h *Handlers) Drafts() http.Handler {
	return &endpoint{
		name:       "drafts",
		gatewayMsg: "Failed to generate emails",
		log:        h.log,
		serve: func(r *http.Request) (any, error) {
			var in types.EmailRequest
			if err := decodeBody(r, &in); err != nil {
				return nil, err
			}
			return h.generator.Generate(r.Context(), in)
		},
	}
}

// endpoint is the shared POST pipeline around one serve function.
type endpoint struct {
	name       string
	gatewayMsg string
	log        *zap.Logger
	serve      func(r *http.Request) (any, error)
}

func (e *endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := e.log.With(zap.String("handler", e.name))
	if id := RequestID(r.Context()); id != "" {
		log = log.With(zap.String("request_id", id))
	}

	if r.Method != http.MethodPost {
		e.fail(w, log, methodNotAllowed())
		return
	}

	defer func() {
		if p := recover(); p != nil {
			e.fail(w, log, internal(fmt.Errorf("panic: %v", p)))
		}
	}()

	out, err := e.serve(r)
	if err != nil {
		e.fail(w, log, classify(err, e.gatewayMsg))
		return
	}

	metrics.IncrementEmailRequest(e.name, "ok")
	writeJSON(w, http.StatusOK, out)
}

func (e *endpoint) fail(w http.ResponseWriter, log *zap.Logger, he *Error) {
	var se *gateway.StatusError
	switch {
	case he.Kind == KindGateway && errors.As(he, &se):
		log.Error("model gateway error", zap.Int("status", se.StatusCode), zap.String("body", se.Body))
	case he.Kind == KindInternal || he.Kind == KindUnexpectedFormat:
		log.Error("handler error", zap.Error(he.Err))
	default:
		log.Debug("request rejected", zap.Int("status", he.Status), zap.String("reason", he.Message))
	}

	metrics.IncrementEmailRequest(e.name, string(he.Kind))
	writeJSON(w, he.Status, errorBody{Error: he.Message})
}

type errorBody struct {
	Error string `json:"error"`
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return validation(msgInvalidBody, errors.New("empty body"))
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return validation(msgInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validation(msgInvalidBody, errors.New("trailing data after JSON body"))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
