package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionRequest is one exchange with the hosted model: a persona's
// system prompt plus the user message built from the learner's input.
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string
	Model        string
	Temperature  float32
}

// Client is a stateless wrapper around the OpenAI chat completion API.
// It keeps no per-call state, so a single instance is shared by every agent.
type Client struct {
	api          *openai.Client
	defaultModel string
	hasKey       bool
}

// NewClient builds a completion client bound to the given API key.
// An empty key is allowed at construction time; calls will then fail
// with ErrAuthentication instead of panicking at startup.
func NewClient(apiKey, defaultModel string) *Client {
	return &Client{
		api:          openai.NewClient(apiKey),
		defaultModel: defaultModel,
		hasKey:       strings.TrimSpace(apiKey) != "",
	}
}

// Complete sends one chat completion request and returns the full reply text.
// The reply is passed through unmodified; no retries are attempted.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if !c.hasKey {
		return "", fmt.Errorf("no OpenAI API key configured: %w", ErrAuthentication)
	}

	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		Temperature: clampTemperature(req.Temperature),
	})
	if err != nil {
		return "", translateError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices: %w", ErrModel)
	}

	return resp.Choices[0].Message.Content, nil
}

// clampTemperature keeps sampling temperature inside the API's [0, 2] range.
func clampTemperature(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 2 {
		return 2
	}
	return t
}
