// Error types and handling
package llm

import (
	"errors"
	"fmt"
)

// Error codes for every failure kind this library produces.
const (
	CodeUnknownModel           = "unknown_model"
	CodeSerialization          = "serialization_error"
	CodeMalformedResponse      = "malformed_response"
	CodeTransport              = "transport_error"
	CodeUnrecoverableEvent     = "unrecoverable_event"
	CodeCaptioningPrecondition = "captioning_precondition"
)

// Error represents a standardized go-bedrock error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewUnknownModelError reports a model identifier outside the closed
// dispatch set. Never retried.
func NewUnknownModelError(modelID string) *Error {
	return &Error{
		Code:    CodeUnknownModel,
		Message: fmt.Sprintf("unknown model identifier: %s", modelID),
		Type:    "validation_error",
	}
}

// NewSerializationError reports a request payload that could not be encoded.
func NewSerializationError(modelID string, err error) *Error {
	return &Error{
		Code:    CodeSerialization,
		Message: fmt.Sprintf("failed to serialize request for %s: %v", modelID, err),
		Type:    "validation_error",
	}
}

// NewMalformedResponseError reports a payload that is not valid structured
// data for its model family, or that lacks a field the family asserts.
func NewMalformedResponseError(modelID string, err error) *Error {
	return &Error{
		Code:    CodeMalformedResponse,
		Message: fmt.Sprintf("malformed response from %s: %v", modelID, err),
		Type:    "api_error",
	}
}

// NewTransportError wraps a collaborator transport failure unchanged.
// Retry policy, if any, belongs to the transport layer.
func NewTransportError(errType string, err error) *Error {
	return &Error{
		Code:    CodeTransport,
		Message: err.Error(),
		Type:    errType,
	}
}

// NewUnrecoverableEventError reports an inbound streaming event the decoder
// has no policy for. The call must abort rather than silently continue.
func NewUnrecoverableEventError(detail string) *Error {
	return &Error{
		Code:    CodeUnrecoverableEvent,
		Message: fmt.Sprintf("unrecoverable streaming event: %s", detail),
		Type:    "api_error",
	}
}

// NewCaptioningPreconditionError reports a captioning call that cannot
// proceed (missing image or non-multimodal model).
func NewCaptioningPreconditionError(message string) *Error {
	return &Error{
		Code:    CodeCaptioningPrecondition,
		Message: message,
		Type:    "validation_error",
	}
}

func hasCode(err error, code string) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsUnknownModel reports whether err is an unknown-model failure.
func IsUnknownModel(err error) bool { return hasCode(err, CodeUnknownModel) }

// IsSerialization reports whether err is a request serialization failure.
func IsSerialization(err error) bool { return hasCode(err, CodeSerialization) }

// IsMalformedResponse reports whether err is a malformed-response failure.
func IsMalformedResponse(err error) bool { return hasCode(err, CodeMalformedResponse) }

// IsTransport reports whether err is a propagated transport failure.
func IsTransport(err error) bool { return hasCode(err, CodeTransport) }

// IsUnrecoverableEvent reports whether err aborted a stream on an event
// with no defined handling.
func IsUnrecoverableEvent(err error) bool { return hasCode(err, CodeUnrecoverableEvent) }

// IsCaptioningPrecondition reports whether err is a captioning precondition
// failure.
func IsCaptioningPrecondition(err error) bool { return hasCode(err, CodeCaptioningPrecondition) }
