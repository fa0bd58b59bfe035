// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose asks the model for three tonal drafts of one email.
package compose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/pkg/types"
)

// MaxTokens is the reply budget for one draft set.
const MaxTokens = 1000

// ErrMissingFields is returned when the recipient or context is empty.
var ErrMissingFields = errors.New("recipient and context are required")

// ShapeError reports a parsed reply that lacks one of the three drafts. An
// empty Tone means the reply was not a JSON object at all.
type ShapeError struct {
	Tone types.Tone
}

func (e *ShapeError) Error() string {
	if e.Tone == "" {
		return "reply is not a draft set object"
	}
	return fmt.Sprintf("reply has no %s draft", e.Tone)
}

// Generator writes draft sets through a gateway.Completer.
type Generator struct {
	completer gateway.Completer
}

// NewGenerator returns a Generator that calls c.
func NewGenerator(c gateway.Completer) *Generator {
	return &Generator{completer: c}
}

// Validate checks the fields a draft cannot be written without.
func Validate(req types.EmailRequest) error {
	if req.Recipient == "" || req.Context == "" {
		return ErrMissingFields
	}
	return nil
}

// Generate returns the model's friendly, formal and direct drafts for req as
// written, fences removed. The reply must carry a subject or body for every
// tone; other keys pass through untouched.
func (g *Generator) Generate(ctx context.Context, req types.EmailRequest) (json.RawMessage, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	prompt, err := renderPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	text, err := g.completer.Complete(ctx, gateway.Request{
		Operation: "drafts",
		Prompt:    prompt,
		MaxTokens: MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	raw, err := gateway.ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	if err := checkShape(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// checkShape requires an object holding a draft object per tone, each with a
// non-empty subject or body.
func checkShape(raw json.RawMessage) error {
	var set map[string]json.RawMessage
	if err := json.Unmarshal(raw, &set); err != nil || set == nil {
		return &ShapeError{}
	}
	for _, tone := range types.Tones {
		var d map[string]any
		if err := json.Unmarshal(set[string(tone)], &d); err != nil || !(present(d["subject"]) || present(d["body"])) {
			return &ShapeError{Tone: tone}
		}
	}
	return nil
}

// present reports a draft field holding anything but null or "".
func present(v any) bool {
	if s, ok := v.(string); ok {
		return s != ""
	}
	return v != nil
}

// Decode reads a draft reply into a DraftSet.
func Decode(raw json.RawMessage) (types.DraftSet, error) {
	var set types.DraftSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return types.DraftSet{}, fmt.Errorf("decoding drafts: %w", err)
	}
	return set, nil
}
