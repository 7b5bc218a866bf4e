package services

import (
	"errors"
	"fmt"
)

// FailureKind classifies fatal generation failures. Parsing is not in
// this taxonomy: malformed model output degrades to partial results
// instead of failing.
type FailureKind string

const (
	// FailureUpstreamCall covers network, auth, and rate-limit errors
	// from the text-generation call
	FailureUpstreamCall FailureKind = "upstream_call_failed"
	// FailureEmptyResponse means the call succeeded but returned no
	// usable text
	FailureEmptyResponse FailureKind = "empty_response"
)

// ErrInvalidRequest is returned when country or style is empty
var ErrInvalidRequest = errors.New("country and style are required")

// GenerationError is the fatal error surfaced by GenerateNames and
// GenerateMenu so callers can distinguish "the API failed" from "the API
// returned nothing parseable"
type GenerationError struct {
	Kind FailureKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newUpstreamError(err error) *GenerationError {
	return &GenerationError{Kind: FailureUpstreamCall, Err: err}
}

func newEmptyResponseError() *GenerationError {
	return &GenerationError{Kind: FailureEmptyResponse, Err: errors.New("model returned no usable text")}
}

// AsGenerationError unwraps err into a *GenerationError when possible
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
