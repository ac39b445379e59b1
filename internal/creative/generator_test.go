package creative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"adcraft/pkg/prompts"
)

type mockLLM struct {
	response string
	err      error

	gotSystem string
	gotUser   string
}

func (m *mockLLM) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	m.gotSystem = systemPrompt
	m.gotUser = userPrompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestIdea(t *testing.T) {
	mock := &mockLLM{response: "A dog reviews smart home gadgets"}
	gen := NewGenerator(mock, prompts.Defaults(), 8, 30)

	idea := gen.Idea(context.Background(), "smart home gadgets")

	if idea != "A dog reviews smart home gadgets" {
		t.Errorf("Idea() = %q, want model response", idea)
	}
	if !strings.Contains(mock.gotSystem, "viral marketing expert") {
		t.Errorf("system prompt missing persona: %q", mock.gotSystem)
	}
	if !strings.Contains(mock.gotUser, "smart home gadgets") {
		t.Errorf("user prompt missing seed: %q", mock.gotUser)
	}
	if !strings.Contains(mock.gotUser, "30 seconds") {
		t.Errorf("user prompt missing duration: %q", mock.gotUser)
	}
}

func TestIdeaFallbackOnError(t *testing.T) {
	mock := &mockLLM{err: errors.New("rate limited")}
	gen := NewGenerator(mock, prompts.Defaults(), 8, 30)

	idea := gen.Idea(context.Background(), "coffee makers")

	want := "Viral coffee makers challenge that will shock everyone!"
	if idea != want {
		t.Errorf("Idea() = %q, want %q", idea, want)
	}
}

func TestScript(t *testing.T) {
	mock := &mockLLM{response: "0-3s: dog stares at camera"}
	gen := NewGenerator(mock, prompts.Defaults(), 8, 30)

	script := gen.Script(context.Background(), "A dog reviews smart home gadgets")

	if script != "0-3s: dog stares at camera" {
		t.Errorf("Script() = %q, want model response", script)
	}
	if mock.gotSystem != "" {
		t.Errorf("script call sent a system prompt: %q", mock.gotSystem)
	}
	if !strings.Contains(mock.gotUser, "A dog reviews smart home gadgets") {
		t.Errorf("user prompt missing idea: %q", mock.gotUser)
	}
}

func TestScriptFallbackOnError(t *testing.T) {
	mock := &mockLLM{err: errors.New("rate limited")}
	gen := NewGenerator(mock, prompts.Defaults(), 8, 30)

	script := gen.Script(context.Background(), "any idea")

	want := "0-3s: Hook with surprising visual\n3-10s: Build emotional connection\n10-30s: Amazing reveal and call to action"
	if script != want {
		t.Errorf("Script() = %q, want fallback template", script)
	}
}
