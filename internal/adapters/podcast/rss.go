package podcast

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/devbush/clipcast/internal/domain"
)

// Episode is one playable item from a podcast feed.
type Episode struct {
	Title       string
	AudioURL    string
	Description string
	GUID        string
}

// Feed fetches and parses podcast RSS feeds.
type Feed struct {
	client *resty.Client
}

// NewFeed creates a feed client.
func NewFeed() *Feed {
	return &Feed{client: resty.New().SetTimeout(10 * time.Second)}
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
	Enclosure   struct {
		URL string `xml:"url,attr"`
	} `xml:"enclosure"`
}

// Episodes returns up to limit episodes from feedURL, newest first
// (feed order). Items without an audio enclosure are skipped.
func (f *Feed) Episodes(ctx context.Context, feedURL string, limit int) ([]Episode, error) {
	body, err := f.get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return parseEpisodes(body, limit)
}

// FindEpisode locates the episode whose GUID contains episodeID.
// Unlike the first version of this tool there is no silent fallback to
// the newest episode on a miss; callers get ErrEpisodeNotFound and can
// list episodes instead.
func (f *Feed) FindEpisode(ctx context.Context, feedURL, episodeID string) (*Episode, error) {
	body, err := f.get(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	episodes, err := parseEpisodes(body, 0)
	if err != nil {
		return nil, err
	}

	for i := range episodes {
		if episodes[i].GUID != "" && strings.Contains(episodes[i].GUID, episodeID) {
			return &episodes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", domain.ErrEpisodeNotFound, episodeID)
}

func (f *Feed) get(ctx context.Context, feedURL string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch feed: HTTP %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// parseEpisodes extracts playable episodes from raw RSS. limit <= 0
// means no limit.
func parseEpisodes(body []byte, limit int) ([]Episode, error) {
	var doc rssDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var episodes []Episode
	for _, item := range doc.Channel.Items {
		if item.Enclosure.URL == "" {
			continue
		}
		episodes = append(episodes, Episode{
			Title:       strings.TrimSpace(item.Title),
			AudioURL:    item.Enclosure.URL,
			Description: strings.TrimSpace(item.Description),
			GUID:        strings.TrimSpace(item.GUID),
		})
		if limit > 0 && len(episodes) >= limit {
			break
		}
	}
	return episodes, nil
}
