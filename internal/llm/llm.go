package llm

import "context"

// Client is the completion provider behind idea and script generation.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
