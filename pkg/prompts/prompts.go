package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

const defaultIdeaSystem = `You are a viral marketing expert. Create ad ideas that MUST go viral.
Key virality factors: emotional appeal, surprise, humor, relatability, shareability.
Duration: {{.MinDuration}}-{{.MaxDuration}} seconds.
Include: hook in first 3 seconds, emotional payoff, call to action.
Avoid generic, boring, or corporate-style ads.`

const defaultIdeaUser = `Create a highly viral ad idea based on: {{.Seed}}. Make it {{.MaxDuration}} seconds long with maximum share potential.`

const defaultScriptUser = `Create a detailed {{.MaxDuration}}-second script for this viral ad: {{.Idea}}
Include:
- Timing breakdown (seconds)
- Visual descriptions
- Emotional arc
- Sound effects/music
- Text overlays
- Call to action
- Virality hooks`

type Prompts struct {
	Idea   IdeaPrompts   `yaml:"idea"`
	Script ScriptPrompts `yaml:"script"`
}

type IdeaPrompts struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type ScriptPrompts struct {
	User string `yaml:"user"`
}

type IdeaParams struct {
	Seed        string
	MinDuration int
	MaxDuration int
}

type ScriptParams struct {
	Idea        string
	MaxDuration int
}

// Load returns the built-in prompts, overridden by prompts.yaml when present.
func Load() (*Prompts, error) {
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	p := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("read prompts file: %w", err)
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse prompts file: %w", err)
	}

	return p, nil
}

func Defaults() *Prompts {
	return &Prompts{
		Idea: IdeaPrompts{
			System: defaultIdeaSystem,
			User:   defaultIdeaUser,
		},
		Script: ScriptPrompts{
			User: defaultScriptUser,
		},
	}
}

func (p *Prompts) RenderIdeaSystem(params IdeaParams) (string, error) {
	return render(p.Idea.System, params)
}

func (p *Prompts) RenderIdeaUser(params IdeaParams) (string, error) {
	return render(p.Idea.User, params)
}

func (p *Prompts) RenderScriptUser(params ScriptParams) (string, error) {
	return render(p.Script.User, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
