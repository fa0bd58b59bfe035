// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handler

import (
	"errors"
	"net/http"

	"github.com/pdiddy/mailwright/internal/braindump"
	"github.com/pdiddy/mailwright/internal/compose"
	"github.com/pdiddy/mailwright/internal/gateway"
)

// Kind classifies a failed request. It doubles as the metrics outcome label.
type Kind string

const (
	KindMethodNotAllowed Kind = "method"
	KindValidation       Kind = "invalid"
	KindGateway          Kind = "upstream"
	KindUnexpectedFormat Kind = "format"
	KindInternal         Kind = "internal"
)

// Messages returned to callers.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "Invalid request body"
	msgBrainDumpMissing = "Brain dump content is required"
	msgFieldsMissing    = "Recipient and context are required"
	msgUnexpected       = "Unexpected response format"
	msgInternal         = "Internal server error"
)

// Error is a request failure ready to be written as {"error": Message}.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func methodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Status: http.StatusMethodNotAllowed, Message: msgMethodNotAllowed}
}

func validation(msg string, err error) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: msgInternal, Err: err}
}

// classify maps err onto the error taxonomy. gatewayMsg is the message used
// when the model API itself rejected the call.
func classify(err error, gatewayMsg string) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}

	var se *gateway.StatusError
	switch {
	case errors.Is(err, braindump.ErrEmpty):
		return validation(msgBrainDumpMissing, err)
	case errors.Is(err, compose.ErrMissingFields):
		return validation(msgFieldsMissing, err)
	case errors.As(err, &se):
		return &Error{Kind: KindGateway, Status: upstreamStatus(se.StatusCode), Message: gatewayMsg, Err: err}
	case errors.Is(err, gateway.ErrUnexpectedFormat):
		return &Error{Kind: KindUnexpectedFormat, Status: http.StatusInternalServerError, Message: msgUnexpected, Err: err}
	}
	// Parse and shape failures land here with every other fault.
	return internal(err)
}

// upstreamStatus passes model API error statuses through. Anything outside
// 400-599 could not carry the JSON error body and becomes 502.
func upstreamStatus(code int) int {
	if code < 400 || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
