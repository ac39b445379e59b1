package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath     = "config.yaml"
	defaultGroqModel      = "llama-3.3-70b-versatile"
	defaultTwitterAPIBase = "https://twitterapi.io/api/v1"
	defaultSearchQuery    = "viral ad OR marketing campaign OR veo3 OR successful ad"
	defaultMaxResults     = 20
	defaultTopCount       = 5
	defaultMinDuration    = 8
	defaultMaxDuration    = 30
	defaultLibraryDir     = "./static"
	defaultServerAddr     = ":8080"
	defaultGCSPrefix      = "ads"

	defaultLLMSecretName           = "groq-api-key"
	defaultTwitterKeySecretName    = "twitterapi-io-api-key"
	defaultTwitterUserIDSecretName = "twitterapi-io-user-id"
)

func defaultViralKeywords() []string {
	return []string{
		"viral", "trending", "challenge", "hack", "secret", "shocking",
		"amazing", "unbelievable", "gone wrong", "prank", "life hack",
		"try not to laugh", "satisfying", "oddly satisfying", "fail",
		"win", "epic", "ultimate", "mind blowing", "game changing",
	}
}

func defaultEmotionalWords() []string {
	return []string{"amazing", "shocking", "emotional", "funny", "heartwarming", "exciting"}
}

func defaultCallToActionPhrases() []string {
	return []string{"share", "tag", "comment", "like", "subscribe"}
}

type Config struct {
	GroqAPIKey     string
	TwitterAPIKey  string
	TwitterUserID  string
	TwitterAPIBase string
	GCPProject     string
	GCSBucket      string

	Groq     GroqConfig     `yaml:"groq"`
	Trends   TrendsConfig   `yaml:"trends"`
	Virality ViralityConfig `yaml:"virality"`
	Ad       AdConfig       `yaml:"ad"`
	Library  LibraryConfig  `yaml:"library"`
	Server   ServerConfig   `yaml:"server"`
	GCS      GCSConfig      `yaml:"gcs"`
	Secrets  SecretsConfig  `yaml:"secrets"`
}

type GroqConfig struct {
	Model string `yaml:"model"`
}

type TrendsConfig struct {
	Query           string `yaml:"query"`
	MaxResults      int    `yaml:"max_results"`
	TopCount        int    `yaml:"top_count"`
	DisableFallback bool   `yaml:"disable_fallback"`
}

type ViralityConfig struct {
	Keywords            []string `yaml:"keywords"`
	EmotionalWords      []string `yaml:"emotional_words"`
	CallToActionPhrases []string `yaml:"call_to_action_phrases"`
}

type AdConfig struct {
	MinDuration int `yaml:"min_duration"`
	MaxDuration int `yaml:"max_duration"`
}

type LibraryConfig struct {
	Dir string `yaml:"dir"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GCSConfig struct {
	Prefix string `yaml:"prefix"`
}

// MirrorEnabled reports whether generated ads should be mirrored to GCS.
// A non-empty GCS_BUCKET is the only switch; there is no separate yaml
// toggle.
func (c *Config) MirrorEnabled() bool {
	return c.GCSBucket != ""
}

// SecretsConfig maps logical credential names to Secret Manager secret ids.
type SecretsConfig struct {
	LLMKey        string `yaml:"llm_key"`
	TwitterAPIKey string `yaml:"twitter_api_key"`
	TwitterUserID string `yaml:"twitter_user_id"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		TwitterAPIKey:  os.Getenv("TWITTER_API_KEY"),
		TwitterUserID:  os.Getenv("TWITTER_USER_ID"),
		TwitterAPIBase: getEnvOrDefault("TWITTER_API_BASE", defaultTwitterAPIBase),
		GCPProject:     os.Getenv("GOOGLE_CLOUD_PROJECT"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
	}

	loadYAMLConfig(cfg)
	applyDefaults(cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config) {
	data, err := os.ReadFile(defaultConfigPath)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	applyGroqDefaults(cfg)
	applyTrendsDefaults(cfg)
	applyViralityDefaults(cfg)
	applyAdDefaults(cfg)
	applyLibraryDefaults(cfg)
	applyServerDefaults(cfg)
	applyGCSDefaults(cfg)
	applySecretsDefaults(cfg)
}

func applyGroqDefaults(cfg *Config) {
	if cfg.Groq.Model == "" {
		cfg.Groq.Model = defaultGroqModel
	}
}

func applyTrendsDefaults(cfg *Config) {
	if cfg.Trends.Query == "" {
		cfg.Trends.Query = defaultSearchQuery
	}
	if cfg.Trends.MaxResults == 0 {
		cfg.Trends.MaxResults = defaultMaxResults
	}
	if cfg.Trends.TopCount == 0 {
		cfg.Trends.TopCount = defaultTopCount
	}
}

func applyViralityDefaults(cfg *Config) {
	if len(cfg.Virality.Keywords) == 0 {
		cfg.Virality.Keywords = defaultViralKeywords()
	}
	if len(cfg.Virality.EmotionalWords) == 0 {
		cfg.Virality.EmotionalWords = defaultEmotionalWords()
	}
	if len(cfg.Virality.CallToActionPhrases) == 0 {
		cfg.Virality.CallToActionPhrases = defaultCallToActionPhrases()
	}
}

func applyAdDefaults(cfg *Config) {
	if cfg.Ad.MinDuration == 0 {
		cfg.Ad.MinDuration = defaultMinDuration
	}
	if cfg.Ad.MaxDuration == 0 {
		cfg.Ad.MaxDuration = defaultMaxDuration
	}
}

func applyLibraryDefaults(cfg *Config) {
	if cfg.Library.Dir == "" {
		cfg.Library.Dir = defaultLibraryDir
	}
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultServerAddr
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.Prefix == "" {
		cfg.GCS.Prefix = defaultGCSPrefix
	}
}

func applySecretsDefaults(cfg *Config) {
	if cfg.Secrets.LLMKey == "" {
		cfg.Secrets.LLMKey = defaultLLMSecretName
	}
	if cfg.Secrets.TwitterAPIKey == "" {
		cfg.Secrets.TwitterAPIKey = defaultTwitterKeySecretName
	}
	if cfg.Secrets.TwitterUserID == "" {
		cfg.Secrets.TwitterUserID = defaultTwitterUserIDSecretName
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
