// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package braindump turns free-form notes about an email into a structured
// request by asking the model to classify and summarize them.
package braindump

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/pkg/types"
)

// MaxTokens is the reply budget for one extraction.
const MaxTokens = 800

// ErrEmpty is returned for a brain dump that is empty after trimming.
var ErrEmpty = errors.New("brain dump content is required")

// Extractor reads brain dumps through a gateway.Completer.
type Extractor struct {
	completer gateway.Completer
}

// NewExtractor returns an Extractor that calls c.
func NewExtractor(c gateway.Completer) *Extractor {
	return &Extractor{completer: c}
}

// Extract asks the model to structure brainDump and returns its JSON reply
// as written, fences removed. Gateway errors are returned unchanged so
// callers can tell upstream failures from parse failures.
func (e *Extractor) Extract(ctx context.Context, brainDump string) (json.RawMessage, error) {
	if strings.TrimSpace(brainDump) == "" {
		return nil, ErrEmpty
	}

	prompt, err := renderPrompt(brainDump)
	if err != nil {
		return nil, fmt.Errorf("rendering prompt: %w", err)
	}

	text, err := e.completer.Complete(ctx, gateway.Request{
		Operation: "braindump",
		Prompt:    prompt,
		MaxTokens: MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	return gateway.ExtractJSON(text)
}

// Decode reads an extraction reply into a BrainDumpResult. Keys outside the
// six descriptor fields are ignored and null fields read as empty.
func Decode(raw json.RawMessage) (types.BrainDumpResult, error) {
	var result types.BrainDumpResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return types.BrainDumpResult{}, fmt.Errorf("decoding email request: %w", err)
	}
	return result, nil
}
