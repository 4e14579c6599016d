package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/persona"
)

// fakeCompletionClient captures every request it receives and returns a
// canned reply or error.
type fakeCompletionClient struct {
	reply    string
	err      error
	requests []ai.CompletionRequest
}

func (f *fakeCompletionClient) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRunWithEmptyInput(t *testing.T) {
	for _, p := range persona.All() {
		t.Run(string(p.Key), func(t *testing.T) {
			client := &fakeCompletionClient{reply: "een les"}

			if _, err := New(p, client).Run(context.Background(), ""); err != nil {
				t.Fatalf("Run with empty input failed: %v", err)
			}
			if len(client.requests) != 1 {
				t.Fatalf("expected the completion client to be reached once, got %d calls", len(client.requests))
			}

			req := client.requests[0]
			if strings.TrimSpace(req.SystemPrompt) == "" {
				t.Error("system prompt must never be empty")
			}
			if strings.TrimSpace(req.UserMessage) == "" {
				t.Error("empty input should still request a generic daily lesson")
			}
		})
	}
}

func TestRunKeepsInputVerbatim(t *testing.T) {
	input := "This week I practiced verb conjugations en ik heb gesproken over mijn hobby's."

	for _, p := range persona.All() {
		t.Run(string(p.Key), func(t *testing.T) {
			client := &fakeCompletionClient{reply: "les"}

			if _, err := New(p, client).Run(context.Background(), input); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if !strings.Contains(client.requests[0].UserMessage, input) {
				t.Errorf("user input must appear verbatim in the user message, got:\n%s", client.requests[0].UserMessage)
			}
		})
	}
}

func TestRunReturnsReplyUnmodified(t *testing.T) {
	reply := "Dutch uses 'de' and 'het' as definite articles...\nExercise 1: ___ huis"
	client := &fakeCompletionClient{reply: reply}

	p, _ := persona.Get(persona.Grammar)
	text, err := New(p, client).Run(context.Background(), "articles de/het")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if text != reply {
		t.Errorf("reply must pass through unchanged:\nwant %q\ngot  %q", reply, text)
	}
}

func TestRunPropagatesErrorKind(t *testing.T) {
	client := &fakeCompletionClient{
		err: fmt.Errorf("invalid key: %w", ai.ErrAuthentication),
	}

	p, _ := persona.Get(persona.Vocabulary)
	_, err := New(p, client).Run(context.Background(), "groenten")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ai.ErrAuthentication) {
		t.Errorf("authentication errors must keep their kind through Run, got: %v", err)
	}
}

func TestRunForwardsPersonaParameters(t *testing.T) {
	client := &fakeCompletionClient{reply: "les"}
	p, _ := persona.Get(persona.Conversation)

	if _, err := New(p, client).Run(context.Background(), "Ik ben heel gemotiveerd voor deze baan"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	req := client.requests[0]
	if req.Temperature != p.Temperature {
		t.Errorf("expected temperature %v, got %v", p.Temperature, req.Temperature)
	}
	if req.Model != p.Model {
		t.Errorf("expected model %q, got %q", p.Model, req.Model)
	}
}
