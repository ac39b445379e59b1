// Package creative turns a topic seed into an ad idea and a timed script.
package creative

import (
	"context"
	"fmt"
	"log/slog"

	"adcraft/internal/llm"
	"adcraft/pkg/prompts"
)

// Generator drives the two-step idea and script generation. LLM failures
// never propagate: every call degrades to a deterministic template so the
// pipeline always produces a complete record.
type Generator struct {
	llm         llm.Client
	prompts     *prompts.Prompts
	minDuration int
	maxDuration int
}

func NewGenerator(client llm.Client, p *prompts.Prompts, minDuration, maxDuration int) *Generator {
	return &Generator{
		llm:         client,
		prompts:     p,
		minDuration: minDuration,
		maxDuration: maxDuration,
	}
}

// Idea produces a viral ad concept for the given seed.
func (g *Generator) Idea(ctx context.Context, seed string) string {
	params := prompts.IdeaParams{
		Seed:        seed,
		MinDuration: g.minDuration,
		MaxDuration: g.maxDuration,
	}

	system, err := g.prompts.RenderIdeaSystem(params)
	if err != nil {
		slog.Warn("Idea prompt render failed, using fallback idea", "error", err)
		return g.fallbackIdea(seed)
	}
	user, err := g.prompts.RenderIdeaUser(params)
	if err != nil {
		slog.Warn("Idea prompt render failed, using fallback idea", "error", err)
		return g.fallbackIdea(seed)
	}

	idea, err := g.llm.Complete(ctx, system, user)
	if err != nil {
		slog.Warn("Idea generation failed, using fallback idea", "error", err)
		return g.fallbackIdea(seed)
	}

	return idea
}

// Script expands an idea into a timed shooting script.
func (g *Generator) Script(ctx context.Context, idea string) string {
	user, err := g.prompts.RenderScriptUser(prompts.ScriptParams{
		Idea:        idea,
		MaxDuration: g.maxDuration,
	})
	if err != nil {
		slog.Warn("Script prompt render failed, using fallback script", "error", err)
		return g.fallbackScript()
	}

	script, err := g.llm.Complete(ctx, "", user)
	if err != nil {
		slog.Warn("Script generation failed, using fallback script", "error", err)
		return g.fallbackScript()
	}

	return script
}

func (g *Generator) fallbackIdea(seed string) string {
	return fmt.Sprintf("Viral %s challenge that will shock everyone!", seed)
}

func (g *Generator) fallbackScript() string {
	return fmt.Sprintf("0-3s: Hook with surprising visual\n3-10s: Build emotional connection\n10-%ds: Amazing reveal and call to action", g.maxDuration)
}
