// Claude 3 (Anthropic messages API) model family
package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inercia/go-bedrock/pkg/captioner"
	"github.com/inercia/go-bedrock/pkg/llm"
)

// Claude 3 model identifiers served through Bedrock.
const (
	ClaudeV3Sonnet = "anthropic.claude-3-sonnet-20240229-v1:0"
	ClaudeV3Haiku  = "anthropic.claude-3-haiku-20240307-v1:0"
)

const textDeltaType = "text_delta"

func init() {
	family := claudeV3{}
	Register(ClaudeV3Sonnet, family, true)
	Register(ClaudeV3Haiku, family, true)
}

// ImageSource is the base64 image block of the Claude messages API.
type ImageSource struct {
	Type      string `json:"type"`
	Data      string `json:"data"`
	MediaType string `json:"media_type"`
}

type claudeV3Content struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *ImageSource `json:"source,omitempty"`
}

type claudeV3Message struct {
	Role    string            `json:"role"`
	Content []claudeV3Content `json:"content"`
}

type claudeV3Body struct {
	AnthropicVersion string            `json:"anthropic_version"`
	MaxTokens        int               `json:"max_tokens"`
	Messages         []claudeV3Message `json:"messages"`
}

type claudeV3Response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// claudeV3Request is the ModelRequest variant for the Claude 3 family.
type claudeV3Request struct {
	modelID string
	body    claudeV3Body
}

func (r *claudeV3Request) ModelID() string { return r.modelID }

func (r *claudeV3Request) Body() ([]byte, error) {
	payload, err := json.Marshal(r.body)
	if err != nil {
		return nil, llm.NewSerializationError(r.modelID, err)
	}
	return payload, nil
}

// claudeV3 implements Family for the Claude 3 messages API.
type claudeV3 struct{}

func (claudeV3) NewRequest(modelID string, question *string, image *captioner.Image, d Defaults) (ModelRequest, error) {
	defaults := d.ClaudeV3

	var content []claudeV3Content
	if question != nil {
		content = append(content, claudeV3Content{
			Type: defaults.DefaultContentType,
			Text: *question,
		})
	}
	if image != nil {
		content = append(content, claudeV3Content{
			Type: "image",
			Source: &ImageSource{
				Type:      "base64",
				Data:      image.Base64,
				MediaType: fmt.Sprintf("image/%s", image.Extension),
			},
		})
	}

	return &claudeV3Request{
		modelID: modelID,
		body: claudeV3Body{
			AnthropicVersion: defaults.AnthropicVersion,
			MaxTokens:        defaults.MaxTokens,
			Messages: []claudeV3Message{
				{Role: defaults.Role, Content: content},
			},
		},
	}, nil
}

func (claudeV3) DecodeResponse(modelID string, payload []byte) (string, error) {
	var resp claudeV3Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", llm.NewMalformedResponseError(modelID, err)
	}
	if len(resp.Content) == 0 {
		return "", llm.NewMalformedResponseError(modelID, errors.New("response has no content items"))
	}
	return resp.Content[0].Text, nil
}

// DecodeChunk handles the heterogeneous Claude 3 stream: message_start,
// content_block deltas, message_stop and friends all arrive on the same
// channel, and only text_delta events carry text. Everything else decodes
// to "" so the caller can concatenate chunk results in arrival order.
func (claudeV3) DecodeChunk(modelID string, payload []byte) (string, error) {
	var chunk map[string]interface{}
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return "", llm.NewMalformedResponseError(modelID, err)
	}

	delta, ok := chunk["delta"].(map[string]interface{})
	if !ok {
		return "", nil
	}
	deltaType, ok := delta["type"].(string)
	if !ok || deltaType != textDeltaType {
		return "", nil
	}

	// The chunk claims to be a text delta, so the text field must exist.
	text, ok := delta["text"].(string)
	if !ok {
		return "", llm.NewMalformedResponseError(modelID, errors.New("text_delta chunk has no text field"))
	}
	return text, nil
}
