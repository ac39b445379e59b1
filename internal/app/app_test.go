package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"adcraft/internal/creative"
	"adcraft/internal/library"
	"adcraft/internal/scoring"
	"adcraft/internal/trends"
	"adcraft/pkg/config"
	"adcraft/pkg/prompts"
)

type mockLLM struct {
	idea   string
	script string
	err    error
	calls  int
}

func (m *mockLLM) Complete(_ context.Context, _, _ string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if m.calls == 1 {
		return m.idea, nil
	}
	return m.script, nil
}

type mockSearch struct {
	tweets []trends.Tweet
	err    error
}

func (m *mockSearch) SearchTweets(_ context.Context, _ string, _ int) ([]trends.Tweet, error) {
	return m.tweets, m.err
}

func newTestService(t *testing.T, llm *mockLLM, search *mockSearch, disableFallback bool) *Service {
	t.Helper()

	cfg := &config.Config{}
	cfg.Ad.MinDuration = 8
	cfg.Ad.MaxDuration = 30
	cfg.Virality.Keywords = []string{"viral", "challenge", "amazing", "shocking"}
	cfg.Virality.EmotionalWords = []string{"amazing", "shocking", "funny"}
	cfg.Virality.CallToActionPhrases = []string{"share", "subscribe"}

	generator := creative.NewGenerator(llm, prompts.Defaults(), cfg.Ad.MinDuration, cfg.Ad.MaxDuration)
	scorer := scoring.NewScorer(cfg.Virality.Keywords, cfg.Virality.EmotionalWords, cfg.Virality.CallToActionPhrases)
	selector := trends.NewSelector(search, trends.SelectorConfig{
		Query:           "viral ad",
		Keywords:        cfg.Virality.Keywords,
		DisableFallback: disableFallback,
	})

	return NewService(ServiceOptions{
		Config:    cfg,
		Generator: generator,
		Scorer:    scorer,
		Selector:  selector,
		Library:   library.New(t.TempDir()),
	})
}

func TestGenerateFromPrompt(t *testing.T) {
	llm := &mockLLM{idea: "An amazing viral stunt", script: "0-3s: share this challenge"}
	svc := newTestService(t, llm, &mockSearch{}, false)

	record, err := svc.GenerateFromPrompt(context.Background(), "  energy drinks  ")
	if err != nil {
		t.Fatalf("GenerateFromPrompt() error = %v", err)
	}

	if record.Source != "User prompt: energy drinks" {
		t.Errorf("Source = %q", record.Source)
	}
	if record.Idea != "An amazing viral stunt" {
		t.Errorf("Idea = %q", record.Idea)
	}
	if record.Script != "0-3s: share this challenge" {
		t.Errorf("Script = %q", record.Script)
	}
	if record.Status != "completed" {
		t.Errorf("Status = %q, want completed", record.Status)
	}
	if record.DurationSeconds != 30 {
		t.Errorf("DurationSeconds = %d, want 30", record.DurationSeconds)
	}
	if record.Timestamp != record.ID {
		t.Errorf("Timestamp = %q, ID = %q, want equal", record.Timestamp, record.ID)
	}

	wantScore := scoring.NewScorer(
		[]string{"viral", "challenge", "amazing", "shocking"},
		[]string{"amazing", "shocking", "funny"},
		[]string{"share", "subscribe"},
	).Score(record.Idea, record.Script)
	if record.ViralityScore != wantScore {
		t.Errorf("ViralityScore = %d, want %d", record.ViralityScore, wantScore)
	}
	if record.ViralityAssessment != scoring.Assessment(wantScore) {
		t.Errorf("ViralityAssessment = %q", record.ViralityAssessment)
	}
}

func TestGenerateFromPromptPersists(t *testing.T) {
	llm := &mockLLM{idea: "idea", script: "script"}
	svc := newTestService(t, llm, &mockSearch{}, false)

	record, err := svc.GenerateFromPrompt(context.Background(), "sneakers")
	if err != nil {
		t.Fatalf("GenerateFromPrompt() error = %v", err)
	}

	dir := svc.Library().Dir()
	if _, err := os.Stat(filepath.Join(dir, "ad_"+record.ID+".json")); err != nil {
		t.Errorf("record file not written: %v", err)
	}
	for _, rel := range []string{record.VideoFile, record.AudioFile, record.Thumbnail} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Errorf("media placeholder %s not written: %v", rel, err)
		}
	}

	records, err := svc.ListAds()
	if err != nil {
		t.Fatalf("ListAds() error = %v", err)
	}
	if len(records) != 1 || records[0].ID != record.ID {
		t.Errorf("ListAds() = %+v, want the saved record", records)
	}
}

func TestGenerateFromPromptEmpty(t *testing.T) {
	svc := newTestService(t, &mockLLM{}, &mockSearch{}, false)

	for _, prompt := range []string{"", "   ", "\t\n"} {
		if _, err := svc.GenerateFromPrompt(context.Background(), prompt); !errors.Is(err, ErrEmptyPrompt) {
			t.Errorf("GenerateFromPrompt(%q) error = %v, want ErrEmptyPrompt", prompt, err)
		}
	}
}

func TestGenerateFromPromptWithLLMFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("rate limited")}
	svc := newTestService(t, llm, &mockSearch{}, false)

	record, err := svc.GenerateFromPrompt(context.Background(), "coffee")
	if err != nil {
		t.Fatalf("GenerateFromPrompt() error = %v, want fallback completion", err)
	}

	if record.Idea != "Viral coffee challenge that will shock everyone!" {
		t.Errorf("Idea = %q, want fallback idea", record.Idea)
	}
	if !strings.Contains(record.Script, "0-3s: Hook with surprising visual") {
		t.Errorf("Script = %q, want fallback script", record.Script)
	}
}

func TestGenerateFromTrends(t *testing.T) {
	llm := &mockLLM{idea: "idea", script: "script"}
	search := &mockSearch{
		tweets: []trends.Tweet{
			{Text: "Check this #viral @brand https://x.co trend", LikeCount: 100, RetweetCount: 50},
			{Text: "smaller viral post", LikeCount: 1, RetweetCount: 0},
		},
	}
	svc := newTestService(t, llm, search, false)

	record, err := svc.GenerateFromTrends(context.Background())
	if err != nil {
		t.Fatalf("GenerateFromTrends() error = %v", err)
	}

	if record.Source != "Twitter viral tweet (200 engagement)" {
		t.Errorf("Source = %q", record.Source)
	}
}

func TestGenerateFromTrendsUsesFallbackPosts(t *testing.T) {
	llm := &mockLLM{idea: "idea", script: "script"}
	svc := newTestService(t, llm, &mockSearch{err: errors.New("api down")}, false)

	record, err := svc.GenerateFromTrends(context.Background())
	if err != nil {
		t.Fatalf("GenerateFromTrends() error = %v", err)
	}
	if record.Source != "Twitter viral tweet (10000 engagement)" {
		t.Errorf("Source = %q, want top fallback engagement", record.Source)
	}
}

func TestGenerateFromTrendsNoContent(t *testing.T) {
	svc := newTestService(t, &mockLLM{}, &mockSearch{err: errors.New("api down")}, true)

	if _, err := svc.GenerateFromTrends(context.Background()); !errors.Is(err, ErrNoTrendingContent) {
		t.Errorf("GenerateFromTrends() error = %v, want ErrNoTrendingContent", err)
	}
}
