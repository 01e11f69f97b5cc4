package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendpost-bot/internal/domain/model"
)

var fallbackArticle = model.Article{
	Title:   "The Future of VLSI",
	Link:    "https://example.com/future-vlsi",
	Summary: "A quick summary about advances in VLSI design and fabrication.",
}

func serveFeed(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func rssWithItems(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Semiconductors</title>
    <link>https://spectrum.example</link>
    <description>Test</description>
    ` + strings.Join(items, "\n") + `
  </channel>
</rss>`
}

func rssItem(n int) string {
	return fmt.Sprintf(`<item>
      <title>Article %d</title>
      <link>https://example.com/article%d</link>
      <description>Summary %d</description>
    </item>`, n, n, n)
}

func newTestClient() *Client {
	return New(5*time.Second, 5, fallbackArticle, nil)
}

func TestClient_RecentArticles_LimitAndOrder(t *testing.T) {
	items := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		items = append(items, rssItem(i))
	}
	server := serveFeed(t, "application/rss+xml", rssWithItems(items...))

	got := newTestClient().RecentArticles(context.Background(), server.URL)

	require.Len(t, got, 5)
	for i, a := range got {
		n := i + 1
		assert.Equal(t, model.Article{
			Title:   fmt.Sprintf("Article %d", n),
			Link:    fmt.Sprintf("https://example.com/article%d", n),
			Summary: fmt.Sprintf("Summary %d", n),
		}, a)
	}
}

func TestClient_RecentArticles_FewerThanLimit(t *testing.T) {
	server := serveFeed(t, "application/rss+xml", rssWithItems(rssItem(1), rssItem(2)))

	got := newTestClient().RecentArticles(context.Background(), server.URL)

	require.Len(t, got, 2)
	assert.Equal(t, "Article 1", got[0].Title)
	assert.Equal(t, "Article 2", got[1].Title)
}

func TestClient_RecentArticles_MissingSummary(t *testing.T) {
	server := serveFeed(t, "application/rss+xml", rssWithItems(`<item>
      <title>No Summary</title>
      <link>https://example.com/nosummary</link>
    </item>`))

	got := newTestClient().RecentArticles(context.Background(), server.URL)

	require.Len(t, got, 1)
	assert.Equal(t, model.Article{Title: "No Summary", Link: "https://example.com/nosummary"}, got[0])
}

func TestClient_RecentArticles_HTMLSummaryAndRelativeLink(t *testing.T) {
	server := serveFeed(t, "application/rss+xml", rssWithItems(`<item>
      <title>Chiplets</title>
      <link>/relative/chiplets</link>
      <description><![CDATA[<p>Chiplets are <b>here</b>.</p><p>Packaging&nbsp;matters.</p><script>x()</script>]]></description>
    </item>`))

	got := newTestClient().RecentArticles(context.Background(), server.URL)

	require.Len(t, got, 1)
	assert.Equal(t, "Chiplets are here. Packaging matters.", got[0].Summary)
	assert.Empty(t, got[0].Link)
}

func TestClient_RecentArticles_Atom(t *testing.T) {
	server := serveFeed(t, "application/atom+xml", `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <updated>2024-01-01T00:00:00Z</updated>
  <entry>
    <title>Atom Article</title>
    <link href="https://example.com/atom1"/>
    <id>atom1</id>
    <updated>2024-01-01T00:00:00Z</updated>
    <summary>Atom Summary</summary>
  </entry>
</feed>`)

	got := newTestClient().RecentArticles(context.Background(), server.URL)

	require.Len(t, got, 1)
	assert.Equal(t, model.Article{Title: "Atom Article", Link: "https://example.com/atom1", Summary: "Atom Summary"}, got[0])
}

func TestClient_RecentArticles_Fallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "empty feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, rssWithItems())
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "down", http.StatusInternalServerError)
			},
		},
		{
			name: "not a feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "this is not xml")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			got := newTestClient().RecentArticles(context.Background(), server.URL)

			assert.Equal(t, []model.Article{fallbackArticle}, got)
		})
	}
}

func TestClient_RecentArticles_UnreachableFallsBack(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	feedURL := server.URL
	server.Close()

	got := newTestClient().RecentArticles(context.Background(), feedURL)

	assert.Equal(t, []model.Article{fallbackArticle}, got)
}

func TestHTMLToText(t *testing.T) {
	tests := map[string]string{
		"":                               "",
		"plain summary":                  "plain summary",
		"  spaced \n  out ":              "spaced out",
		"<p>one</p><p>two</p>":           "one two",
		"a<br>b":                         "a b",
		"<ul><li>x</li><li>y</li></ul>":  "x y",
		"<style>p{}</style>kept":         "kept",
		"Fish &amp; Chips":               "Fish & Chips",
	}

	for in, want := range tests {
		assert.Equal(t, want, htmlToText(in), "input %q", in)
	}
}
