package ports

import (
	"context"

	"github.com/devbush/clipcast/internal/domain"
)

// FetchOptions configures a single fetch.
type FetchOptions struct {
	// CookiesFromBrowser names the browser whose stored session cookies
	// authorize the fetch. Empty disables cookie forwarding.
	CookiesFromBrowser string

	// ScratchDir is where the fetched media file lands. The caller owns
	// its lifecycle.
	ScratchDir string
}

// MediaFetcher resolves a URL to a local media file plus metadata.
// One call performs exactly one fetch; on success the returned
// LocalPath exists on disk.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string, opts FetchOptions) (*domain.MediaInfo, error)

	// IsAvailable checks whether the underlying tool can be located.
	IsAvailable() bool

	// BinaryPath returns the resolved tool path, empty when missing.
	BinaryPath() string
}
