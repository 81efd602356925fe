// ChunkStream over the Bedrock response event stream
package bedrock

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/inercia/go-bedrock/pkg/llm"
)

// responseChunkStream adapts the SDK event-stream union to the ChunkStream
// port. Only payload chunks have a defined handling; any other union member
// aborts the stream with an unrecoverable-event error instead of being
// silently skipped.
type responseChunkStream struct {
	stream *bedrockruntime.InvokeModelWithResponseStreamEventStream
}

func (s *responseChunkStream) Next(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, llm.NewTransportError("api_error", ctx.Err())
	case event, ok := <-s.stream.Events():
		if !ok {
			// Channel closed: either a clean end or a transport abort.
			if err := s.stream.Err(); err != nil {
				return nil, convertError(err)
			}
			return nil, io.EOF
		}
		switch v := event.(type) {
		case *types.ResponseStreamMemberChunk:
			return v.Value.Bytes, nil
		default:
			return nil, llm.NewUnrecoverableEventError(fmt.Sprintf("%T", event))
		}
	}
}

func (s *responseChunkStream) Close() error {
	return s.stream.Close()
}
