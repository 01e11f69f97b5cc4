package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trendpost-bot/internal/domain/model"
	"trendpost-bot/internal/domain/ports"
)

const (
	photoSearchPath = "/v1/search"
	videoSearchPath = "/videos/search"
)

// Pexels searches the Pexels stock library for one photo or video.
type Pexels struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     ports.Logger
}

var _ ports.MediaLocator = (*Pexels)(nil)

// NewPexels builds a Pexels client. The API key is checked on first use.
func NewPexels(baseURL, apiKey string, timeout time.Duration, logger ports.Logger) *Pexels {
	return &Pexels{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		logger:     logger,
	}
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Original string `json:"original"`
		} `json:"src"`
	} `json:"photos"`
	Videos []struct {
		VideoFiles []struct {
			Link string `json:"link"`
		} `json:"video_files"`
	} `json:"videos"`
}

// FindMedia returns the first hit for query. No hits is not an error.
func (p *Pexels) FindMedia(ctx context.Context, query string, kind model.MediaKind) (model.MediaReference, error) {
	ref := model.MediaReference{Kind: kind}

	if p.apiKey == "" {
		return ref, fmt.Errorf("PEXELS_API_KEY: %w", model.ErrMissingConfig)
	}

	var path string
	switch kind {
	case model.MediaPhoto:
		path = photoSearchPath
	case model.MediaVideo:
		path = videoSearchPath
	default:
		return ref, fmt.Errorf("unsupported media kind %q", kind)
	}

	params := url.Values{
		"query":    {query},
		"per_page": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return ref, fmt.Errorf("%w: create request: %w", model.ErrMediaFetch, err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ref, fmt.Errorf("%w: perform request: %w", model.ErrMediaFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return ref, fmt.Errorf("%w: pexels status %d: %s", model.ErrMediaFetch, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ref, fmt.Errorf("%w: decode response: %w", model.ErrMediaFetch, err)
	}

	switch kind {
	case model.MediaPhoto:
		if len(payload.Photos) > 0 {
			ref.URL = payload.Photos[0].Src.Original
		}
	case model.MediaVideo:
		if len(payload.Videos) > 0 && len(payload.Videos[0].VideoFiles) > 0 {
			ref.URL = payload.Videos[0].VideoFiles[0].Link
		}
	}

	if p.logger != nil {
		p.logger.Info(ctx, "media search finished", "query", query, "kind", string(kind), "found", ref.Found())
	}
	return ref, nil
}
