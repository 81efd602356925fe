// AWS-backed implementation of the Invoker and CapabilityChecker ports
package bedrock

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"

	"github.com/inercia/go-bedrock/pkg/llm"
)

const defaultRegion = "us-east-1"

// ClientConfig holds the AWS-specific settings of the transport.
type ClientConfig struct {
	// Region of the Bedrock endpoints. Falls back to AWS_DEFAULT_REGION,
	// then to us-east-1.
	Region string
	// ControlEndpoint overrides the bedrock control-plane endpoint.
	ControlEndpoint string
	// RuntimeEndpoint overrides the bedrock-runtime endpoint.
	RuntimeEndpoint string
}

// Client talks to AWS Bedrock. It implements both Invoker (runtime plane)
// and CapabilityChecker (control plane), authenticating through the SDK's
// default credential chain.
type Client struct {
	controlClient *bedrock.Client
	runtimeClient *bedrockruntime.Client
	region        string
}

// NewClient creates an AWS Bedrock client.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = defaultRegion
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, &llm.Error{
			Code:    llm.CodeTransport,
			Message: fmt.Sprintf("failed to load AWS configuration: %v", err),
			Type:    "authentication_error",
		}
	}

	controlClient := bedrock.NewFromConfig(awsConfig, func(o *bedrock.Options) {
		if cfg.ControlEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.ControlEndpoint)
		}
	})
	runtimeClient := bedrockruntime.NewFromConfig(awsConfig, func(o *bedrockruntime.Options) {
		if cfg.RuntimeEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.RuntimeEndpoint)
		}
	})

	return &Client{
		controlClient: controlClient,
		runtimeClient: runtimeClient,
		region:        region,
	}, nil
}

// Region returns the region the client was configured with.
func (c *Client) Region() string { return c.region }

// Invoke submits the envelope single-shot and returns the raw response body.
func (c *Client) Invoke(ctx context.Context, call Call) ([]byte, error) {
	response, err := c.runtimeClient.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(call.ModelID),
		ContentType: aws.String(call.ContentType),
		Accept:      aws.String(call.Accept),
		Body:        call.Body,
	})
	if err != nil {
		return nil, convertError(err)
	}
	return response.Body, nil
}

// InvokeStream submits the envelope and returns a handle over the response
// event stream.
func (c *Client) InvokeStream(ctx context.Context, call Call) (ChunkStream, error) {
	response, err := c.runtimeClient.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     aws.String(call.ModelID),
		ContentType: aws.String(call.ContentType),
		Accept:      aws.String(call.Accept),
		Body:        call.Body,
	})
	if err != nil {
		return nil, convertError(err)
	}
	return &responseChunkStream{stream: response.GetStream()}, nil
}

// SupportsStreaming asks the control plane whether modelID delivers
// incremental responses. Returns nil when the model details do not report
// the capability.
func (c *Client) SupportsStreaming(ctx context.Context, modelID string) (*bool, error) {
	response, err := c.controlClient.GetFoundationModel(ctx, &bedrock.GetFoundationModelInput{
		ModelIdentifier: aws.String(modelID),
	})
	if err != nil {
		return nil, convertError(err)
	}
	if response.ModelDetails == nil {
		return nil, llm.NewTransportError("api_error",
			fmt.Errorf("no model details returned for %s", modelID))
	}
	return response.ModelDetails.ResponseStreamingSupported, nil
}

// convertError maps AWS failures onto the transport error taxonomy.
func convertError(err error) *llm.Error {
	if err == nil {
		return nil
	}

	var ourErr *llm.Error
	if errors.As(err, &ourErr) {
		return ourErr
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ThrottlingException", "TooManyRequestsException":
			return llm.NewTransportError("rate_limit_error", err)
		case "AccessDeniedException", "UnrecognizedClientException", "ExpiredTokenException":
			return llm.NewTransportError("authentication_error", err)
		case "ValidationException", "ResourceNotFoundException":
			return llm.NewTransportError("validation_error", err)
		}
	}

	return llm.NewTransportError("api_error", err)
}
