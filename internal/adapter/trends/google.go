package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"trendpost-bot/internal/domain/ports"
)

const (
	explorePath      = "/trends/api/explore"
	relatedPath      = "/trends/api/widgetdata/relatedsearches"
	relatedWidgetID  = "RELATED_QUERIES"
	risingListPath   = "default.rankedList.1.rankedKeyword.#.query"
	defaultLimit     = 5
	maxResponseBytes = 1 << 20
)

// Options configures the Google Trends client.
type Options struct {
	BaseURL  string
	Language string
	Timezone int
	Geo      string
	Limit    int
	Fallback []string
	Timeout  time.Duration
}

// Client reads rising related queries from Google Trends.
// Any failure is replaced by a fixed fallback list.
type Client struct {
	httpClient *http.Client
	baseURL    string
	language   string
	timezone   int
	geo        string
	limit      int
	fallback   []string
	logger     ports.Logger
}

var _ ports.TrendSource = (*Client)(nil)

// New builds a Google Trends client.
func New(opts Options, logger ports.Logger) *Client {
	// cookiejar.New only fails on a bad PublicSuffixList.
	jar, _ := cookiejar.New(nil)

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout, Jar: jar},
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		language:   opts.Language,
		timezone:   opts.Timezone,
		geo:        opts.Geo,
		limit:      limit,
		fallback:   append([]string(nil), opts.Fallback...),
		logger:     logger,
	}
}

// RisingQueries returns up to the configured limit of rising queries for seed,
// in the order Google ranks them. It never returns an empty list.
func (c *Client) RisingQueries(ctx context.Context, seed, window string) []string {
	queries, err := c.fetchRising(ctx, seed, window)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn(ctx, "trend lookup failed, using fallback topics", "seed", seed, "error", err)
		}
		return append([]string(nil), c.fallback...)
	}

	if c.logger != nil {
		c.logger.Info(ctx, "rising queries fetched", "seed", seed, "count", len(queries))
	}
	return queries
}

func (c *Client) fetchRising(ctx context.Context, seed, window string) ([]string, error) {
	if strings.TrimSpace(seed) == "" {
		return nil, fmt.Errorf("seed keyword is empty")
	}

	if err := c.warmUp(ctx); err != nil {
		return nil, err
	}

	token, request, err := c.explore(ctx, seed, window)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, relatedPath, url.Values{
		"hl":    {c.language},
		"tz":    {strconv.Itoa(c.timezone)},
		"req":   {request},
		"token": {token},
	})
	if err != nil {
		return nil, fmt.Errorf("related queries: %w", err)
	}

	rising := gjson.GetBytes(body, risingListPath)
	if !rising.Exists() {
		return nil, fmt.Errorf("related queries response has no rising list")
	}

	queries := make([]string, 0, c.limit)
	for _, q := range rising.Array() {
		query := strings.TrimSpace(q.String())
		if query == "" {
			continue
		}
		queries = append(queries, query)
		if len(queries) >= c.limit {
			break
		}
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("no rising queries for %q", seed)
	}

	return queries, nil
}

// warmUp obtains the session cookies Google Trends expects on API calls.
func (c *Client) warmUp(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?geo=US", http.NoBody)
	if err != nil {
		return fmt.Errorf("create warm-up request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("warm-up request: %w", err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
	resp.Body.Close()
	return nil
}

func (c *Client) explore(ctx context.Context, seed, window string) (string, string, error) {
	payload, err := json.Marshal(map[string]any{
		"comparisonItem": []map[string]string{
			{"keyword": seed, "time": window, "geo": c.geo},
		},
		"category": 0,
		"property": "",
	})
	if err != nil {
		return "", "", fmt.Errorf("marshal explore request: %w", err)
	}

	body, err := c.get(ctx, explorePath, url.Values{
		"hl":  {c.language},
		"tz":  {strconv.Itoa(c.timezone)},
		"req": {string(payload)},
	})
	if err != nil {
		return "", "", fmt.Errorf("explore: %w", err)
	}

	widget := gjson.GetBytes(body, `widgets.#(id%"`+relatedWidgetID+`*")`)
	if !widget.Exists() {
		return "", "", fmt.Errorf("explore response has no %s widget", relatedWidgetID)
	}

	token := widget.Get("token").String()
	request := widget.Get("request")
	if token == "" || !request.IsObject() {
		return "", "", fmt.Errorf("%s widget is missing token or request", relatedWidgetID)
	}

	return token, request.Raw, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return stripXSSIPrefix(data)
}

// stripXSSIPrefix drops the ")]}'" guard Google prepends to JSON responses.
func stripXSSIPrefix(data []byte) ([]byte, error) {
	idx := bytes.IndexByte(data, '{')
	if idx < 0 {
		return nil, fmt.Errorf("response contains no JSON object")
	}
	data = data[idx:]
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	return data, nil
}
