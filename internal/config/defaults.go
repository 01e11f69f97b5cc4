package config

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

// TrendsSettings holds the locale parameters sent to Google Trends.
type TrendsSettings struct {
	BaseURL  string `yaml:"baseURL"`
	Language string `yaml:"language"`
	Timezone int    `yaml:"timezone"`
	Geo      string `yaml:"geo"`
}

// FallbackArticle is substituted when the feed yields nothing.
type FallbackArticle struct {
	Title   string `yaml:"title"`
	Link    string `yaml:"link"`
	Summary string `yaml:"summary"`
}

// Defaults are the domain constants of a run.
type Defaults struct {
	SeedKeyword     string          `yaml:"seedKeyword"`
	TrendTimeframe  string          `yaml:"trendTimeframe"`
	TrendLimit      int             `yaml:"trendLimit"`
	Trends          TrendsSettings  `yaml:"trends"`
	FallbackTrends  []string        `yaml:"fallbackTrends"`
	FeedURL         string          `yaml:"feedURL"`
	ArticleLimit    int             `yaml:"articleLimit"`
	FallbackArticle FallbackArticle `yaml:"fallbackArticle"`
	PexelsBaseURL   string          `yaml:"pexelsBaseURL"`
}

// LoadDefaults parses the embedded defaults and applies the optional override file.
func LoadDefaults(overridePath string) (Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(embeddedDefaults, &d); err != nil {
		return Defaults{}, fmt.Errorf("failed to unmarshal embedded defaults: %w", err)
	}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return Defaults{}, fmt.Errorf("failed to read config file %s: %w", overridePath, err)
		}
		if err := yaml.Unmarshal(data, &d); err != nil {
			return Defaults{}, fmt.Errorf("failed to unmarshal config file %s: %w", overridePath, err)
		}
	}

	return d, nil
}

func (d Defaults) validate() error {
	if d.SeedKeyword == "" {
		return fmt.Errorf("seed keyword is required")
	}
	if len(d.FallbackTrends) == 0 {
		return fmt.Errorf("at least one fallback trend is required")
	}
	if d.FeedURL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if u, err := url.Parse(d.FallbackArticle.Link); err != nil || !u.IsAbs() {
		return fmt.Errorf("fallback article link %q must be an absolute URL", d.FallbackArticle.Link)
	}
	return nil
}
