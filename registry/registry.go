// Package registry holds the process-lifetime agent set, one per persona.
package registry

import (
	"sync"

	"github.com/taalhuis/taalhuis/agent"
	"github.com/taalhuis/taalhuis/persona"
)

// Registry maps persona keys to their single agent instance. Agents are
// immutable after registration, so reads never need more than the map lock.
type Registry struct {
	mu     sync.Mutex
	agents map[persona.Key]*agent.Agent
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{agents: make(map[persona.Key]*agent.Agent)}
}

// NewWithDefaults builds a registry holding one agent per default persona.
func NewWithDefaults(client agent.CompletionClient) *Registry {
	r := New()
	for _, p := range persona.All() {
		r.Register(agent.New(p, client))
	}
	return r
}

// Register stores an agent under its persona key, replacing any previous one.
func (r *Registry) Register(a *agent.Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.Persona().Key] = a
}

// Get returns the agent for a persona key.
func (r *Registry) Get(key persona.Key) (*agent.Agent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.agents[key]
	return a, ok
}

// Personas lists the registered personas in the default display order.
func (r *Registry) Personas() []persona.Persona {
	r.mu.Lock()
	defer r.mu.Unlock()

	var personas []persona.Persona
	for _, p := range persona.All() {
		if a, ok := r.agents[p.Key]; ok {
			personas = append(personas, a.Persona())
		}
	}
	return personas
}
