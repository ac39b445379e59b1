package library

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritePlaceholderMedia creates the placeholder video, audio and thumbnail
// files for an ad and returns their library-relative paths. The video body
// documents what a real synthesis backend would produce.
func (l *Library) WritePlaceholderMedia(id string, durationSeconds int) (video, audio, thumbnail string, err error) {
	video = filepath.Join("videos", "ad_"+id+".mp4")
	audio = filepath.Join("audio", "ad_"+id+".mp3")
	thumbnail = filepath.Join("thumbnails", "ad_"+id+".jpg")

	videoBody := fmt.Sprintf("Video placeholder for viral ad - would be generated by Veo 3 API\nDuration: %ds\nVirality Optimized", durationSeconds)

	files := []struct {
		relPath string
		body    string
	}{
		{video, videoBody},
		{audio, "Audio placeholder for viral ad voiceover"},
		{thumbnail, "Thumbnail placeholder for viral ad"},
	}

	for _, f := range files {
		path := filepath.Join(l.dir, f.relPath)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", "", "", fmt.Errorf("create media directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(f.body), 0644); err != nil {
			return "", "", "", fmt.Errorf("write placeholder %s: %w", f.relPath, err)
		}
	}

	return video, audio, thumbnail, nil
}
