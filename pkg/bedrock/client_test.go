package bedrock

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-bedrock/pkg/llm"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		config     ClientConfig
		wantRegion string
	}{
		{
			name:       "default region",
			config:     ClientConfig{},
			wantRegion: "us-east-1",
		},
		{
			name:       "custom region",
			config:     ClientConfig{Region: "eu-west-1"},
			wantRegion: "eu-west-1",
		},
		{
			name: "custom endpoints",
			config: ClientConfig{
				Region:          "us-west-2",
				ControlEndpoint: "https://bedrock.custom.amazonaws.com",
				RuntimeEndpoint: "https://bedrock-runtime.custom.amazonaws.com",
			},
			wantRegion: "us-west-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_DEFAULT_REGION", "")

			client, err := NewClient(context.Background(), tt.config)
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, tt.wantRegion, client.Region())
		})
	}
}

func TestNewClientRegionFromEnv(t *testing.T) {
	t.Setenv("AWS_DEFAULT_REGION", "ap-southeast-2")

	client, err := NewClient(context.Background(), ClientConfig{})
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", client.Region())
}

func TestConvertError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{
			name:     "throttling",
			err:      &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			wantType: "rate_limit_error",
		},
		{
			name:     "access denied",
			err:      &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "no"},
			wantType: "authentication_error",
		},
		{
			name:     "validation",
			err:      &smithy.GenericAPIError{Code: "ValidationException", Message: "bad model"},
			wantType: "validation_error",
		},
		{
			name:     "anything else",
			err:      errors.New("connection reset"),
			wantType: "api_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := convertError(tt.err)
			require.NotNil(t, converted)
			assert.Equal(t, llm.CodeTransport, converted.Code)
			assert.Equal(t, tt.wantType, converted.Type)
		})
	}
}

func TestConvertErrorPassesThroughTyped(t *testing.T) {
	orig := llm.NewUnrecoverableEventError("control frame")
	assert.Same(t, orig, convertError(orig))
	assert.Nil(t, convertError(nil))
}
