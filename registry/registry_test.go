package registry

import (
	"context"
	"testing"

	"github.com/taalhuis/taalhuis/ai"
	"github.com/taalhuis/taalhuis/persona"
)

type noopClient struct{}

func (noopClient) Complete(ctx context.Context, req ai.CompletionRequest) (string, error) {
	return "", nil
}

func TestNewWithDefaults(t *testing.T) {
	r := NewWithDefaults(noopClient{})

	for _, p := range persona.All() {
		a, ok := r.Get(p.Key)
		if !ok {
			t.Fatalf("missing agent for persona %q", p.Key)
		}
		if a.Persona().Key != p.Key {
			t.Errorf("agent for %q carries persona %q", p.Key, a.Persona().Key)
		}
	}

	if _, ok := r.Get(persona.Key("pronunciation")); ok {
		t.Error("unknown persona keys must not resolve")
	}

	if got := len(r.Personas()); got != 4 {
		t.Errorf("expected 4 registered personas, got %d", got)
	}
}
