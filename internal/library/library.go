// Package library persists generated ad records and their placeholder media
// on the local filesystem.
package library

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const idFormat = "20060102_150405"

// AdRecord is the persisted metadata for one generated ad.
type AdRecord struct {
	ID                 string `json:"id"`
	Source             string `json:"source"`
	Idea               string `json:"idea"`
	Script             string `json:"script"`
	ViralityScore      int    `json:"virality_score"`
	DurationSeconds    int    `json:"duration_seconds"`
	Timestamp          string `json:"timestamp"`
	Status             string `json:"status"`
	VideoFile          string `json:"video_file"`
	Thumbnail          string `json:"thumbnail"`
	AudioFile          string `json:"audio_file"`
	ViralityAssessment string `json:"virality_assessment"`
}

// Library stores ad records as JSON files under a single directory, with
// media placeholders in videos/, audio/ and thumbnails/ subdirectories.
type Library struct {
	dir string

	mu     sync.Mutex
	lastID time.Time
}

func New(dir string) *Library {
	return &Library{dir: dir}
}

func (l *Library) Dir() string {
	return l.dir
}

// NewID allocates a second-resolution timestamp identifier. Allocation is
// serialized and monotonic: a second allocation within the same wall-clock
// second is bumped forward so no two records ever share an id.
func (l *Library) NewID() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().Truncate(time.Second)
	if !now.After(l.lastID) {
		now = l.lastID.Add(time.Second)
	}
	l.lastID = now

	return now.Format(idFormat)
}

// Save writes the record to ad_{id}.json in the library directory.
func (l *Library) Save(record AdRecord) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create library directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ad record: %w", err)
	}

	path := filepath.Join(l.dir, "ad_"+record.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write ad record: %w", err)
	}

	return nil
}

// List returns every stored record, newest first. Unreadable or malformed
// files are logged and skipped so one corrupt record never hides the rest.
func (l *Library) List() ([]AdRecord, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read library directory: %w", err)
	}

	var records []AdRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "ad_") || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err != nil {
			slog.Warn("Skipping unreadable ad record", "file", name, "error", err)
			continue
		}

		var record AdRecord
		if err := json.Unmarshal(data, &record); err != nil {
			slog.Warn("Skipping malformed ad record", "file", name, "error", err)
			continue
		}

		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	return records, nil
}

// VideoPath resolves a video filename to its path under the library
// directory. The filename is reduced to its base name so requests cannot
// escape the videos directory.
func (l *Library) VideoPath(filename string) (string, error) {
	path := filepath.Join(l.dir, "videos", filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("video file %s: %w", filename, err)
	}
	return path, nil
}

// Clear removes every record and media placeholder from the library.
func (l *Library) Clear() error {
	if err := os.RemoveAll(l.dir); err != nil {
		return fmt.Errorf("clear library directory: %w", err)
	}
	return os.MkdirAll(l.dir, 0755)
}
