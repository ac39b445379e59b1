package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderIdeaPrompts(t *testing.T) {
	p := Defaults()

	system, err := p.RenderIdeaSystem(IdeaParams{Seed: "water bottle", MinDuration: 8, MaxDuration: 30})
	if err != nil {
		t.Fatalf("RenderIdeaSystem() error: %v", err)
	}
	if !strings.Contains(system, "8-30 seconds") {
		t.Errorf("system prompt missing duration window: %q", system)
	}
	if !strings.Contains(system, "viral marketing expert") {
		t.Errorf("system prompt missing role: %q", system)
	}

	user, err := p.RenderIdeaUser(IdeaParams{Seed: "water bottle", MaxDuration: 30})
	if err != nil {
		t.Fatalf("RenderIdeaUser() error: %v", err)
	}
	if !strings.Contains(user, "water bottle") {
		t.Errorf("user prompt missing seed: %q", user)
	}
	if !strings.Contains(user, "30 seconds") {
		t.Errorf("user prompt missing duration: %q", user)
	}
}

func TestRenderScriptUser(t *testing.T) {
	p := Defaults()

	got, err := p.RenderScriptUser(ScriptParams{Idea: "dancing robot ad", MaxDuration: 30})
	if err != nil {
		t.Fatalf("RenderScriptUser() error: %v", err)
	}

	for _, want := range []string{"30-second script", "dancing robot ad", "Timing breakdown", "Call to action", "Virality hooks"} {
		if !strings.Contains(got, want) {
			t.Errorf("script prompt missing %q", want)
		}
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if p.Idea.System != defaultIdeaSystem {
		t.Error("missing file should fall back to default prompts")
	}
}

func TestLoadFromOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	override := `
idea:
  user: "Custom idea prompt for {{.Seed}}"
`
	_ = os.WriteFile(path, []byte(override), 0644)

	p, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	got, err := p.RenderIdeaUser(IdeaParams{Seed: "sneakers"})
	if err != nil {
		t.Fatalf("RenderIdeaUser() error: %v", err)
	}
	if got != "Custom idea prompt for sneakers" {
		t.Errorf("RenderIdeaUser() = %q", got)
	}

	// Sections absent from the override keep their defaults.
	if p.Script.User != defaultScriptUser {
		t.Error("script prompt should keep default when not overridden")
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	_ = os.WriteFile(path, []byte(":\nnot yaml ["), 0644)

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid YAML")
	}
}
