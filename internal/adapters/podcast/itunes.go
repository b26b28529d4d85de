package podcast

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/devbush/clipcast/internal/domain"
)

const itunesBaseURL = "https://itunes.apple.com"

// Podcast is one directory search hit.
type Podcast struct {
	Name        string
	Artist      string
	FeedURL     string
	ID          int64
	Description string
}

// Directory looks up podcasts and their RSS feeds via the iTunes
// search API.
type Directory struct {
	client *resty.Client
}

// NewDirectory creates a directory client with sane timeouts.
func NewDirectory() *Directory {
	client := resty.New().
		SetBaseURL(itunesBaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	return &Directory{client: client}
}

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		CollectionName string `json:"collectionName"`
		ArtistName     string `json:"artistName"`
		FeedURL        string `json:"feedUrl"`
		CollectionID   int64  `json:"collectionId"`
		Description    string `json:"description"`
	} `json:"results"`
}

// Search finds podcasts matching a name, at most limit results.
func (d *Directory) Search(ctx context.Context, term string, limit int) ([]Podcast, error) {
	var out searchResponse
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"term":   term,
			"entity": "podcast",
			"limit":  fmt.Sprintf("%d", limit),
		}).
		SetResult(&out).
		Get("/search")
	if err != nil {
		return nil, fmt.Errorf("itunes search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("itunes search: HTTP %d", resp.StatusCode())
	}

	podcasts := make([]Podcast, 0, len(out.Results))
	for _, r := range out.Results {
		podcasts = append(podcasts, Podcast{
			Name:        r.CollectionName,
			Artist:      r.ArtistName,
			FeedURL:     r.FeedURL,
			ID:          r.CollectionID,
			Description: truncate(r.Description, 200),
		})
	}
	return podcasts, nil
}

// LookupFeedURL resolves a podcast collection ID to its RSS feed URL.
func (d *Directory) LookupFeedURL(ctx context.Context, podcastID string) (string, error) {
	var out searchResponse
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"id":     podcastID,
			"entity": "podcast",
		}).
		SetResult(&out).
		Get("/lookup")
	if err != nil {
		return "", fmt.Errorf("itunes lookup: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("itunes lookup: HTTP %d", resp.StatusCode())
	}
	if out.ResultCount == 0 || out.Results[0].FeedURL == "" {
		return "", fmt.Errorf("%w: id %s (possibly a subscription-only feed)", domain.ErrPodcastNotFound, podcastID)
	}
	return out.Results[0].FeedURL, nil
}

// appleEpisodeURLPattern matches Apple Podcasts episode URLs of the
// form podcasts.apple.com/<cc>/podcast/<slug>/id<podcast>?i=<episode>.
var appleEpisodeURLPattern = regexp.MustCompile(`podcasts\.apple\.com/[^/]+/podcast/[^/]+/id(\d+).*[?&]i=(\d+)`)

// ParseAppleEpisodeURL extracts (podcastID, episodeID) from an Apple
// Podcasts episode URL. ok is false when the URL has another shape.
func ParseAppleEpisodeURL(url string) (podcastID, episodeID string, ok bool) {
	m := appleEpisodeURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// IsAppleURL reports whether the URL points at Apple Podcasts at all.
func IsAppleURL(url string) bool {
	return strings.Contains(url, "podcasts.apple.com")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
