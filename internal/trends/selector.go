package trends

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// RankedPost is a trending post scored by engagement.
type RankedPost struct {
	Text       string
	Likes      int
	Retweets   int
	Engagement int
}

// Engagement weights retweets double: a retweet spreads content, a like only
// endorses it.
func Engagement(likes, retweets int) int {
	return likes + 2*retweets
}

type SearchClient interface {
	SearchTweets(ctx context.Context, query string, maxResults int) ([]Tweet, error)
}

type SelectorConfig struct {
	Query           string
	Keywords        []string
	MaxResults      int
	TopCount        int
	DisableFallback bool
}

// Selector picks the strongest trending posts for a keyword set.
type Selector struct {
	client SearchClient
	cfg    SelectorConfig
}

func NewSelector(client SearchClient, cfg SelectorConfig) *Selector {
	if cfg.TopCount <= 0 {
		cfg.TopCount = 5
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 20
	}
	return &Selector{client: client, cfg: cfg}
}

// TopTrending returns up to TopCount posts ranked by engagement, descending.
// Provider failures and empty result sets degrade to the fallback list so the
// generation pipeline keeps working offline.
func (s *Selector) TopTrending(ctx context.Context) []RankedPost {
	tweets, err := s.client.SearchTweets(ctx, s.cfg.Query, s.cfg.MaxResults)
	if err != nil {
		slog.Warn("Twitter search failed, using fallback content", "error", err)
		return s.fallback()
	}

	ranked := s.rank(tweets)
	if len(ranked) == 0 {
		slog.Warn("No tweets matched viral keywords, using fallback content")
		return s.fallback()
	}

	if len(ranked) > s.cfg.TopCount {
		ranked = ranked[:s.cfg.TopCount]
	}
	return ranked
}

func (s *Selector) rank(tweets []Tweet) []RankedPost {
	var ranked []RankedPost
	for _, tweet := range tweets {
		if !s.hasViralSignal(tweet.Text) {
			continue
		}
		ranked = append(ranked, RankedPost{
			Text:       tweet.Text,
			Likes:      tweet.LikeCount,
			Retweets:   tweet.RetweetCount,
			Engagement: Engagement(tweet.LikeCount, tweet.RetweetCount),
		})
	}

	// Stable: provider order breaks engagement ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement > ranked[j].Engagement
	})

	return ranked
}

func (s *Selector) hasViralSignal(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range s.cfg.Keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func (s *Selector) fallback() []RankedPost {
	if s.cfg.DisableFallback {
		return nil
	}
	return FallbackPosts()
}

// FallbackPosts is the pre-authored trending list used for demos and offline
// operation when the search provider is unavailable.
func FallbackPosts() []RankedPost {
	return []RankedPost{
		{Text: "This AI-generated car ad went viral with 10M views! 🚗💨 #viral #ai", Engagement: 10000},
		{Text: "Try not to laugh challenge with this hilarious product demo! 😂", Engagement: 8500},
		{Text: "Shocking results from this new tech product - mind blowing! ⚡", Engagement: 7200},
		{Text: "This satisfying cleaning gadget is trending everywhere! 🧹", Engagement: 6800},
		{Text: "Epic fail turned into amazing marketing campaign! 🎯", Engagement: 5500},
	}
}
