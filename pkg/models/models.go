// Request building and response decoding entry points
package models

import (
	"github.com/inercia/go-bedrock/pkg/captioner"
	"github.com/inercia/go-bedrock/pkg/llm"
)

// ModelRequest is a model-specific request payload. Exactly one variant
// exists per logical call; ModelID always matches the identifier the
// variant was registered under.
type ModelRequest interface {
	// ModelID returns the model identifier this payload targets.
	ModelID() string

	// Body serializes the payload to its wire form.
	Body() ([]byte, error)
}

// Build constructs the request payload for modelID with the supplied
// question, optional image and scalar defaults. Identifiers outside the
// registered set fail with an unknown-model error. Pure construction;
// the image value is not retained.
func Build(modelID string, question *string, image *captioner.Image, d Defaults) (ModelRequest, error) {
	e, exists := lookup(modelID)
	if !exists {
		return nil, llm.NewUnknownModelError(modelID)
	}
	return e.family.NewRequest(modelID, question, image, d)
}

// DecodeResponse extracts the text of a complete (non-streamed) response
// payload for modelID.
func DecodeResponse(modelID string, payload []byte) (string, error) {
	e, exists := lookup(modelID)
	if !exists {
		return "", llm.NewUnknownModelError(modelID)
	}
	return e.family.DecodeResponse(modelID, payload)
}

// DecodeChunk extracts the text carried by one streaming chunk for modelID.
// Protocol events that carry no text decode to "" without error.
func DecodeChunk(modelID string, payload []byte) (string, error) {
	e, exists := lookup(modelID)
	if !exists {
		return "", llm.NewUnknownModelError(modelID)
	}
	return e.family.DecodeChunk(modelID, payload)
}
