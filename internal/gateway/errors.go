// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"errors"
	"fmt"
)

// ErrUnexpectedFormat reports a successful reply whose envelope carries no
// text in its first content block.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// StatusError reports a non-2xx reply from the model API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model API returned %d", e.StatusCode)
}

// ParseError reports model text that is not the expected JSON.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing model reply as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
