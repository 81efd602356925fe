// Collaborator ports for transport and capability lookup
package bedrock

import (
	"context"
)

// Invoker submits a Call to the inference gateway.
type Invoker interface {
	// Invoke performs a single-shot invocation and returns the complete
	// response payload.
	Invoke(ctx context.Context, call Call) ([]byte, error)

	// InvokeStream performs a streaming invocation and returns a handle
	// yielding the inbound chunks.
	InvokeStream(ctx context.Context, call Call) (ChunkStream, error)
}

// ChunkStream yields the payload bytes of inbound streaming chunks, in
// arrival order. Next returns io.EOF once the stream is exhausted; an
// inbound event that is not a content chunk surfaces as an
// unrecoverable-event error, and a transport abort surfaces as an error
// rather than a hang.
type ChunkStream interface {
	Next(ctx context.Context) ([]byte, error)
	Close() error
}

// CapabilityChecker reports whether a model's endpoint supports incremental
// response delivery. A nil result means the capability is not reported.
type CapabilityChecker interface {
	SupportsStreaming(ctx context.Context, modelID string) (*bool, error)
}
