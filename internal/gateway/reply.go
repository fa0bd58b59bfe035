// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencePattern matches Markdown code fence markers, with or without the json
// language tag, and one trailing newline.
var fencePattern = regexp.MustCompile("```(?:json)?\n?")

// StripFences removes every code fence marker from text and trims the result.
func StripFences(text string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// ExtractJSON strips code fences from a model reply and returns the JSON
// inside as the model wrote it. Text that is not one JSON value yields a
// *ParseError.
func ExtractJSON(text string) (json.RawMessage, error) {
	cleaned := StripFences(text)
	var v any
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, &ParseError{Text: cleaned, Err: err}
	}
	return json.RawMessage(cleaned), nil
}
