package app

import (
	"context"
	"fmt"
	"log/slog"

	"adcraft/internal/creative"
	"adcraft/internal/library"
	"adcraft/internal/llm"
	"adcraft/internal/scoring"
	"adcraft/internal/secrets"
	"adcraft/internal/trends"
	"adcraft/pkg/config"
	"adcraft/pkg/prompts"
)

// BuildService constructs a fully wired Service from configuration.
// Credentials come from the environment first; when a GCP project is
// configured, missing credentials are fetched from Secret Manager.
func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	if err := resolveSecrets(ctx, cfg); err != nil {
		return nil, err
	}

	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.Groq.Model)
	if err != nil {
		return nil, err
	}

	generator := creative.NewGenerator(llmClient, p, cfg.Ad.MinDuration, cfg.Ad.MaxDuration)
	scorer := scoring.NewScorer(cfg.Virality.Keywords, cfg.Virality.EmotionalWords, cfg.Virality.CallToActionPhrases)

	twitterClient := trends.NewTwitterClient(cfg.TwitterAPIBase, cfg.TwitterAPIKey)
	selector := trends.NewSelector(twitterClient, trends.SelectorConfig{
		Query:           cfg.Trends.Query,
		Keywords:        cfg.Virality.Keywords,
		MaxResults:      cfg.Trends.MaxResults,
		TopCount:        cfg.Trends.TopCount,
		DisableFallback: cfg.Trends.DisableFallback,
	})

	lib := library.New(cfg.Library.Dir)

	var mirror *library.GCSMirror
	if cfg.MirrorEnabled() {
		mirror, err = library.NewGCSMirror(ctx, cfg.GCSBucket, cfg.GCS.Prefix)
		if err != nil {
			slog.Warn("GCS mirror unavailable, continuing with local storage only", "error", err)
		}
	}

	return NewService(ServiceOptions{
		Config:    cfg,
		Generator: generator,
		Scorer:    scorer,
		Selector:  selector,
		Library:   lib,
		Mirror:    mirror,
	}), nil
}

// resolveSecrets fills credentials that are absent from the environment.
// Secret Manager lookups are attempted only when a GCP project is set, and a
// missing Twitter credential is not fatal: the trend selector degrades to
// its fallback content without one.
func resolveSecrets(ctx context.Context, cfg *config.Config) error {
	if cfg.GCPProject == "" {
		return nil
	}
	if cfg.GroqAPIKey != "" && cfg.TwitterAPIKey != "" && cfg.TwitterUserID != "" {
		return nil
	}

	provider, err := secrets.NewGCPProvider(ctx, cfg.GCPProject)
	if err != nil {
		return fmt.Errorf("create secret manager client: %w", err)
	}
	defer func() { _ = provider.Close() }()

	if cfg.GroqAPIKey == "" {
		cfg.GroqAPIKey, err = provider.Get(ctx, cfg.Secrets.LLMKey)
		if err != nil {
			return fmt.Errorf("resolve LLM API key: %w", err)
		}
	}
	if cfg.TwitterAPIKey == "" {
		if cfg.TwitterAPIKey, err = provider.Get(ctx, cfg.Secrets.TwitterAPIKey); err != nil {
			slog.Warn("Twitter API key unavailable, trend search will use fallback content", "error", err)
		}
	}
	if cfg.TwitterUserID == "" {
		if cfg.TwitterUserID, err = provider.Get(ctx, cfg.Secrets.TwitterUserID); err != nil {
			slog.Warn("Twitter user id unavailable", "error", err)
		}
	}

	return nil
}
