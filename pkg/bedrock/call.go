// The model-agnostic wire envelope
package bedrock

import (
	"github.com/inercia/go-bedrock/pkg/models"
)

// All current model families speak JSON and accept anything back.
const (
	callContentType = "application/json"
	callAccept      = "*/*"
)

// Call is the transport-level request shape, independent of model family.
// It is immutable once built and consumed exactly once by the Invoker.
type Call struct {
	Body        []byte
	ContentType string
	Accept      string
	ModelID     string
}

// NewCall serializes a model request into its wire envelope. Fails only if
// the payload cannot be encoded; a failed serialization is surfaced, never
// replaced with an empty body.
func NewCall(req models.ModelRequest) (Call, error) {
	body, err := req.Body()
	if err != nil {
		return Call{}, err
	}
	return Call{
		Body:        body,
		ContentType: callContentType,
		Accept:      callAccept,
		ModelID:     req.ModelID(),
	}, nil
}
