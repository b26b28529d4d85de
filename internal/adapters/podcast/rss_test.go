package podcast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbush/clipcast/internal/domain"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Show</title>
    <item>
      <title> Episode Three </title>
      <description>Latest</description>
      <guid>tag:example.com,1000679962434</guid>
      <enclosure url="https://cdn.example.com/ep3.mp3" type="audio/mpeg" length="1"/>
    </item>
    <item>
      <title>No audio here</title>
      <description>Text-only item</description>
      <guid>no-enclosure</guid>
    </item>
    <item>
      <title>Episode Two</title>
      <description>Older</description>
      <guid>tag:example.com,1000600000000</guid>
      <enclosure url="https://cdn.example.com/ep2.mp3" type="audio/mpeg" length="1"/>
    </item>
    <item>
      <title>Episode One</title>
      <description>Oldest</description>
      <guid>tag:example.com,1000500000000</guid>
      <enclosure url="https://cdn.example.com/ep1.mp3" type="audio/mpeg" length="1"/>
    </item>
  </channel>
</rss>`

func TestParseEpisodes(t *testing.T) {
	episodes, err := parseEpisodes([]byte(sampleFeed), 0)
	require.NoError(t, err)
	require.Len(t, episodes, 3, "items without an enclosure are skipped")

	assert.Equal(t, "Episode Three", episodes[0].Title)
	assert.Equal(t, "https://cdn.example.com/ep3.mp3", episodes[0].AudioURL)
	assert.Equal(t, "Latest", episodes[0].Description)
}

func TestParseEpisodes_Limit(t *testing.T) {
	episodes, err := parseEpisodes([]byte(sampleFeed), 2)
	require.NoError(t, err)
	assert.Len(t, episodes, 2)
	assert.Equal(t, "Episode Two", episodes[1].Title)
}

func TestParseEpisodes_BadXML(t *testing.T) {
	_, err := parseEpisodes([]byte("<rss><channel>"), 0)
	assert.Error(t, err)
}

func sampleFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFeed_FindEpisode(t *testing.T) {
	srv := sampleFeedServer(t)

	episode, err := NewFeed().FindEpisode(context.Background(), srv.URL, "1000600000000")
	require.NoError(t, err)
	assert.Equal(t, "Episode Two", episode.Title)
	assert.Equal(t, "https://cdn.example.com/ep2.mp3", episode.AudioURL)
}

func TestFeed_FindEpisode_MissIsAnError(t *testing.T) {
	srv := sampleFeedServer(t)

	_, err := NewFeed().FindEpisode(context.Background(), srv.URL, "9999999999999")
	assert.ErrorIs(t, err, domain.ErrEpisodeNotFound, "an unknown id must not fall back to another episode")
}

func TestParseAppleEpisodeURL(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantPodcast string
		wantEpisode string
		wantOK      bool
	}{
		{
			name:        "episode URL",
			url:         "https://podcasts.apple.com/ua/podcast/some-show/id1751418168?i=1000679962434",
			wantPodcast: "1751418168",
			wantEpisode: "1000679962434",
			wantOK:      true,
		},
		{
			name:        "episode URL with extra params",
			url:         "https://podcasts.apple.com/us/podcast/x/id123?foo=bar&i=456",
			wantPodcast: "123",
			wantEpisode: "456",
			wantOK:      true,
		},
		{
			name:   "show URL without episode",
			url:    "https://podcasts.apple.com/us/podcast/some-show/id1751418168",
			wantOK: false,
		},
		{
			name:   "unrelated URL",
			url:    "https://example.com/watch?v=abc",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			podcastID, episodeID, ok := ParseAppleEpisodeURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantPodcast, podcastID)
				assert.Equal(t, tt.wantEpisode, episodeID)
			}
		})
	}
}

func TestIsAppleURL(t *testing.T) {
	assert.True(t, IsAppleURL("https://podcasts.apple.com/us/podcast/x/id1?i=2"))
	assert.False(t, IsAppleURL("https://feeds.example.com/show.rss"))
}
