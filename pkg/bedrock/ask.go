// Dispatcher orchestration: build, capability check, invoke, decode
package bedrock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/inercia/go-bedrock/pkg/captioner"
	"github.com/inercia/go-bedrock/pkg/llm"
	"github.com/inercia/go-bedrock/pkg/models"
)

// RunType selects the dispatch behavior of a call.
type RunType string

const (
	// RunStandard answers a question, echoing decoded text to the output
	// writer as it is produced.
	RunStandard RunType = "standard"
	// RunCaptioning describes an image. Never streams, never echoes; the
	// caption only travels in the return value.
	RunCaptioning RunType = "captioning"
)

// Dispatcher turns a question into text through the inference gateway.
// Each Ask call is independent and owns its own envelope and decode
// buffer, so a single Dispatcher is safe for concurrent calls as long as
// the output writer is.
type Dispatcher struct {
	invoker  Invoker
	caps     CapabilityChecker
	defaults models.Defaults
	out      io.Writer
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher writing standard-mode text to stdout.
func NewDispatcher(invoker Invoker, caps CapabilityChecker, defaults models.Defaults) *Dispatcher {
	return &Dispatcher{
		invoker:  invoker,
		caps:     caps,
		defaults: defaults,
		out:      os.Stdout,
		logger:   slog.Default(),
	}
}

// SetOutput redirects the standard-mode echo stream.
func (d *Dispatcher) SetOutput(w io.Writer) {
	d.out = w
}

// SetLogger replaces the logger used for per-chunk decode warnings.
func (d *Dispatcher) SetLogger(l *slog.Logger) {
	d.logger = l
}

// Ask sends question (and, for captioning, image) to the model identified
// by modelID and returns the decoded text. The capability port is queried
// once per standard call to choose between streaming and single-shot
// invocation.
func (d *Dispatcher) Ask(ctx context.Context, question string, image *captioner.Image, modelID string, runType RunType) (string, error) {
	switch runType {
	case RunCaptioning:
		return d.caption(ctx, question, image, modelID)
	case RunStandard:
		return d.standard(ctx, question, image, modelID)
	default:
		return "", fmt.Errorf("unknown run type: %q", runType)
	}
}

func (d *Dispatcher) standard(ctx context.Context, question string, image *captioner.Image, modelID string) (string, error) {
	call, err := d.buildCall(question, image, modelID)
	if err != nil {
		return "", err
	}

	streaming, err := d.streamingSupported(ctx, modelID)
	if err != nil {
		return "", err
	}
	if streaming {
		return d.stream(ctx, call)
	}

	text, err := d.invokeOnce(ctx, call)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(d.out, text)
	return text, nil
}

// caption checks the mode preconditions before anything else, so a missing
// image fails the same way whatever the model identifier is.
func (d *Dispatcher) caption(ctx context.Context, question string, image *captioner.Image, modelID string) (string, error) {
	if image == nil {
		return "", llm.NewCaptioningPreconditionError("no image provided, captioning aborted")
	}
	if !models.Multimodal(modelID) {
		return "", llm.NewCaptioningPreconditionError(fmt.Sprintf(
			"model %s is not able to caption images, select one of: %s",
			modelID, strings.Join(models.MultimodalModels(), ", ")))
	}

	call, err := d.buildCall(question, image, modelID)
	if err != nil {
		return "", err
	}
	// Captioning never streams, whatever the model reports.
	return d.invokeOnce(ctx, call)
}

func (d *Dispatcher) buildCall(question string, image *captioner.Image, modelID string) (Call, error) {
	req, err := models.Build(modelID, &question, image, d.defaults)
	if err != nil {
		return Call{}, err
	}
	return NewCall(req)
}

// streamingSupported treats an unreported capability as "does not stream".
func (d *Dispatcher) streamingSupported(ctx context.Context, modelID string) (bool, error) {
	supported, err := d.caps.SupportsStreaming(ctx, modelID)
	if err != nil {
		return false, err
	}
	return supported != nil && *supported, nil
}

func (d *Dispatcher) invokeOnce(ctx context.Context, call Call) (string, error) {
	payload, err := d.invoker.Invoke(ctx, call)
	if err != nil {
		return "", err
	}
	return models.DecodeResponse(call.ModelID, payload)
}

// stream pulls chunks until the handle reports io.EOF, decoding and echoing
// each one synchronously. A malformed chunk is logged and dropped; text
// already accumulated stays. Any other failure aborts the call, returning
// whatever text arrived before it.
func (d *Dispatcher) stream(ctx context.Context, call Call) (string, error) {
	handle, err := d.invoker.InvokeStream(ctx, call)
	if err != nil {
		return "", err
	}
	defer func() { _ = handle.Close() }()

	var output strings.Builder
	for {
		payload, err := handle.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return output.String(), err
		}

		text, err := models.DecodeChunk(call.ModelID, payload)
		if err != nil {
			if llm.IsMalformedResponse(err) {
				d.logger.Warn("dropping malformed streaming chunk",
					"model", call.ModelID, "error", err)
				continue
			}
			return output.String(), err
		}

		output.WriteString(text)
		fmt.Fprint(d.out, text)
	}
	fmt.Fprintln(d.out)

	return output.String(), nil
}
