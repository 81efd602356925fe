package bedrock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inercia/go-bedrock/pkg/models"
)

func TestNewCall(t *testing.T) {
	req, err := models.Build(models.ClaudeV3Sonnet, strPtr("hello"), nil, testDefaults())
	require.NoError(t, err)

	call, err := NewCall(req)
	require.NoError(t, err)
	assert.Equal(t, models.ClaudeV3Sonnet, call.ModelID)
	assert.Equal(t, "application/json", call.ContentType)
	assert.Equal(t, "*/*", call.Accept)
	assert.NotEmpty(t, call.Body)
	assert.Contains(t, string(call.Body), `"hello"`)
}

func strPtr(s string) *string { return &s }
