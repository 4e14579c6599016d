// Package persona defines the four fixed teaching profiles that shape the
// model's behavior. The set is closed: lessons are dispatched by Key, not by
// registering new types at runtime.
package persona

import "strings"

// Key identifies one of the four teaching personas.
type Key string

const (
	Vocabulary   Key = "vocabulary"
	Grammar      Key = "grammar"
	Conversation Key = "conversation"
	WeeklyPlan   Key = "weekly-plan"
)

// Persona is an immutable instruction profile plus its model parameters.
// One instance exists per key for the process lifetime.
type Persona struct {
	Key          Key      `json:"key"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Instructions []string `json:"instructions"`
	Model        string   `json:"model,omitempty"`
	Temperature  float32  `json:"temperature"`
	InputLabel   string   `json:"inputLabel"`
	InputHint    string   `json:"inputHint"`
}

// SystemPrompt renders the persona's fixed instruction block. It is never
// empty, even when the learner provides no input.
func (p Persona) SystemPrompt() string {
	var builder strings.Builder
	builder.WriteString("You are " + p.Name + ", a " + p.Role + ".\n")
	for _, instruction := range p.Instructions {
		builder.WriteString(instruction)
		builder.WriteString("\n")
	}
	return builder.String()
}

// Defaults returns the four persona definitions, keyed for lookup.
func Defaults() map[Key]Persona {
	return map[Key]Persona{
		Vocabulary: {
			Key:  Vocabulary,
			Name: "Dutch Vocabulary Teacher",
			Role: "Dutch vocabulary teacher preparing learners for Dutch-speaking job interviews",
			Instructions: []string{
				"Teach the user 5 to 10 new important Dutch words or phrases that are useful for Dutch-speaking job interviews.",
				"For each word or phrase, provide: the Dutch word or phrase, its English translation, an example sentence in Dutch, and the English translation of the example sentence.",
				"Add a quick tip on when to use each item: formally, casually, or in common interview situations.",
				"Be supportive, motivating, and realistic.",
			},
			Temperature: 0.7,
			InputLabel:  "Today's topic or practice notes",
			InputHint:   "e.g. my speaking practice notes, a vocabulary theme, or today's exercises",
		},
		Grammar: {
			Key:  Grammar,
			Name: "Dutch Grammar Coach",
			Role: "Dutch grammar coach preparing learners for Dutch-speaking job interviews",
			Instructions: []string{
				"Teach the user one key Dutch grammar topic that is important for Dutch-speaking job interviews.",
				"Explain the grammar concept in simple Dutch, then add a plain English explanation.",
				"Give at least 3 Dutch example sentences using the grammar rule, with English translations.",
				"Finish with 2 to 3 short exercises (fill in the blanks, correct the sentence) based on the topic.",
			},
			Temperature: 0.4,
			InputLabel:  "Grammar topic or today's exercises",
			InputHint:   "e.g. articles de/het, word order, or paste your exercise answers",
		},
		Conversation: {
			Key:  Conversation,
			Name: "Virtual Dutch Partner",
			Role: "Dutch conversation partner simulating realistic job-interview exchanges",
			Instructions: []string{
				"Role-play a realistic Dutch job-interview conversation with the user.",
				"Adjust the conversation difficulty to the user's current level.",
				"Correct grammar, vocabulary, and sentence structure politely and explain each correction.",
				"Suggest useful expressions or structures that sound more natural.",
				"Close with a short summary of the key mistakes and encouragement to keep practicing.",
			},
			Temperature: 0.8,
			InputLabel:  "Your Dutch sentence or interview answer",
			InputHint:   "e.g. your attempted Dutch reply to an interview question",
		},
		WeeklyPlan: {
			Key:  WeeklyPlan,
			Name: "Weekly Language Planner",
			Role: "Dutch learning tracker and planner",
			Instructions: []string{
				"Review the user's Dutch learning progress: topics mastered, new vocabulary learned, common mistakes identified.",
				"Summarize the stated progress, then create a clear 7-day study plan: topics to review, new topics to study, and daily activities.",
				"Organize the plan in a simple weekly schedule format.",
				"Align all planning with the user's goal of Dutch-speaking job interviews at B1 level fluency.",
			},
			Temperature: 0.5,
			InputLabel:  "Summary of this week's learning progress",
			InputHint:   "e.g. this week I learned verb conjugations and practiced talking about my hobbies",
		},
	}
}

// All returns the personas in a stable display order.
func All() []Persona {
	defaults := Defaults()
	ordered := []Key{Vocabulary, Grammar, Conversation, WeeklyPlan}

	personas := make([]Persona, 0, len(ordered))
	for _, key := range ordered {
		personas = append(personas, defaults[key])
	}
	return personas
}

// Get looks up a persona by key.
func Get(key Key) (Persona, bool) {
	p, ok := Defaults()[key]
	return p, ok
}
