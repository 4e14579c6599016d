// Package agent pairs a persona with the completion client and exposes the
// single Run operation the rest of the service is built on.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/persona"
)

// genericLessonRequest is sent when the learner provides no input, so every
// persona can still produce a generic daily lesson.
const genericLessonRequest = "Give me today's lesson. Pick a topic that is generally useful for Dutch job-interview preparation."

// CompletionClient is the seam between agents and the hosted model.
type CompletionClient interface {
	Complete(ctx context.Context, req ai.CompletionRequest) (string, error)
}

// Agent binds one persona to the shared completion client. Agents carry no
// per-call state and are safe to share once constructed.
type Agent struct {
	persona persona.Persona
	client  CompletionClient
}

// New creates an agent for the given persona.
func New(p persona.Persona, client CompletionClient) *Agent {
	return &Agent{persona: p, client: client}
}

// Persona returns the bound persona definition.
func (a *Agent) Persona() persona.Persona {
	return a.persona
}

// Run builds the user message from the learner's input and delegates to the
// completion client. The reply is returned unmodified; client failures
// propagate unchanged.
func (a *Agent) Run(ctx context.Context, userInput string) (string, error) {
	text, err := a.client.Complete(ctx, ai.CompletionRequest{
		SystemPrompt: a.persona.SystemPrompt(),
		UserMessage:  a.userMessage(userInput),
		Model:        a.persona.Model,
		Temperature:  a.persona.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.persona.Name, err)
	}

	return text, nil
}

// userMessage prefixes the learner's input with the persona's input label so
// the model knows what it is looking at. Empty input asks for a generic
// daily lesson instead.
func (a *Agent) userMessage(userInput string) string {
	if strings.TrimSpace(userInput) == "" {
		return genericLessonRequest
	}
	return fmt.Sprintf("%s:\n%s", a.persona.InputLabel, userInput)
}
