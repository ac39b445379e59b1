package trends

import (
	"regexp"
	"strings"
)

var noiseTokens = regexp.MustCompile(`#\w+|@\w+|https?://\S+`)

// ExtractSeed strips hashtags, mentions and links from a raw post so the
// remainder can seed idea generation.
func ExtractSeed(raw string) string {
	return strings.TrimSpace(noiseTokens.ReplaceAllString(raw, ""))
}
