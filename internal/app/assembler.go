package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"adcraft/internal/library"
	"adcraft/internal/scoring"
	"adcraft/internal/trends"
)

var (
	// ErrEmptyPrompt rejects prompt-driven generation with no usable text.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrNoTrendingContent means the trend source produced nothing and the
	// fallback list is disabled.
	ErrNoTrendingContent = errors.New("no viral content found on Twitter")
)

// GenerateFromPrompt runs the full pipeline seeded by a user prompt.
func (s *Service) GenerateFromPrompt(ctx context.Context, prompt string) (library.AdRecord, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return library.AdRecord{}, ErrEmptyPrompt
	}

	return s.assemble(ctx, prompt, "User prompt: "+prompt)
}

// GenerateFromTrends runs the full pipeline seeded by the strongest trending
// post.
func (s *Service) GenerateFromTrends(ctx context.Context) (library.AdRecord, error) {
	posts := s.selector.TopTrending(ctx)
	if len(posts) == 0 {
		return library.AdRecord{}, ErrNoTrendingContent
	}

	top := posts[0]
	seed := trends.ExtractSeed(top.Text)
	source := fmt.Sprintf("Twitter viral tweet (%d engagement)", top.Engagement)

	return s.assemble(ctx, seed, source)
}

func (s *Service) assemble(ctx context.Context, seed, source string) (library.AdRecord, error) {
	idea := s.generator.Idea(ctx, seed)
	script := s.generator.Script(ctx, idea)
	score := s.scorer.Score(idea, script)

	id := s.library.NewID()
	video, audio, thumbnail, err := s.library.WritePlaceholderMedia(id, s.cfg.Ad.MaxDuration)
	if err != nil {
		return library.AdRecord{}, fmt.Errorf("write placeholder media: %w", err)
	}

	record := library.AdRecord{
		ID:                 id,
		Source:             source,
		Idea:               idea,
		Script:             script,
		ViralityScore:      score,
		DurationSeconds:    s.cfg.Ad.MaxDuration,
		Timestamp:          id,
		Status:             "completed",
		VideoFile:          video,
		Thumbnail:          thumbnail,
		AudioFile:          audio,
		ViralityAssessment: scoring.Assessment(score),
	}

	if err := s.library.Save(record); err != nil {
		return library.AdRecord{}, err
	}

	s.mirrorRecord(ctx, record)

	return record, nil
}

// mirrorRecord copies the record and its media to GCS when a mirror is
// configured. Upload failures are logged, never returned: the local record
// is already complete.
func (s *Service) mirrorRecord(ctx context.Context, record library.AdRecord) {
	if s.mirror == nil {
		return
	}

	relPaths := []string{
		"ad_" + record.ID + ".json",
		record.VideoFile,
		record.AudioFile,
		record.Thumbnail,
	}
	for _, rel := range relPaths {
		local := filepath.Join(s.library.Dir(), rel)
		if err := s.mirror.Upload(ctx, local, rel); err != nil {
			slog.Warn("GCS mirror upload failed", "file", rel, "error", err)
		}
	}
}

// ListAds returns every stored ad record, newest first.
func (s *Service) ListAds() ([]library.AdRecord, error) {
	return s.library.List()
}
