// Package scoring estimates the sharing potential of generated ad copy.
package scoring

import "strings"

const baseScore = 50

// Scorer rates idea and script text on viral signal density. Scores are
// deterministic: the same content always gets the same number.
type Scorer struct {
	keywords       []string
	emotionalWords []string
	ctaPhrases     []string
}

func NewScorer(keywords, emotionalWords, ctaPhrases []string) *Scorer {
	return &Scorer{
		keywords:       keywords,
		emotionalWords: emotionalWords,
		ctaPhrases:     ctaPhrases,
	}
}

// Score returns a virality score in [0, 100] for the combined idea and
// script text. Keyword hits add up to 20 points, emotional words up to 15,
// and any call to action a flat 10 on top of the base of 50.
func (s *Scorer) Score(idea, script string) int {
	content := strings.ToLower(idea + " " + script)

	score := baseScore
	score += capAt(countHits(content, s.keywords)*5, 20)
	score += capAt(countHits(content, s.emotionalWords)*3, 15)
	if countHits(content, s.ctaPhrases) > 0 {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Assessment maps a score to its human-readable tier.
func Assessment(score int) string {
	switch {
	case score >= 80:
		return "🔥 Highly Viral - Excellent potential for mass sharing"
	case score >= 60:
		return "🚀 Very Viral - Strong sharing potential"
	case score >= 40:
		return "👍 Potentially Viral - Good elements present"
	default:
		return "⚠️ Needs Improvement - Add more viral elements"
	}
}

func countHits(content string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(content, term) {
			count++
		}
	}
	return count
}

func capAt(value, max int) int {
	if value > max {
		return max
	}
	return value
}
