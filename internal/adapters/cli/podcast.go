package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/devbush/clipcast/internal/adapters/podcast"
	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/output"
	"github.com/devbush/clipcast/internal/ports"
)

var (
	podSearchFlag  string
	podRSSFlag     string
	podURLFlag     string
	podEpisodeFlag int
	podListFlag    bool
)

const episodeListLimit = 20

// NewPodcastCmd creates the podcast subcommand
func NewPodcastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podcast",
		Short: "Download podcast episodes",
		Long: `Download a podcast episode and convert it to the target audio format.

Find the show by name (--search), by feed (--rss) or by an Apple
Podcasts episode URL (--url), then pick an episode interactively or
with --episode.

Examples:
  clipcast podcast --search "some show"
  clipcast podcast --rss https://feeds.example.com/show.rss --episode 0
  clipcast podcast --url "https://podcasts.apple.com/us/podcast/x/id123?i=456"`,
		RunE: runPodcast,
	}

	cmd.Flags().StringVarP(&podSearchFlag, "search", "s", "", "Search podcasts by name")
	cmd.Flags().StringVarP(&podRSSFlag, "rss", "r", "", "RSS feed URL")
	cmd.Flags().StringVarP(&podURLFlag, "url", "u", "", "Apple Podcasts episode URL or direct audio URL")
	cmd.Flags().IntVarP(&podEpisodeFlag, "episode", "e", -1, "Episode index, newest first (default: ask)")
	cmd.Flags().BoolVarP(&podListFlag, "list", "l", false, "List podcasts or episodes without downloading")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output audio format: mp3, wav, aiff (default mp3)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination directory or file path (default: downloads folder)")

	cmd.MarkFlagsOneRequired("search", "rss", "url")
	cmd.MarkFlagsMutuallyExclusive("search", "rss", "url")

	return cmd
}

func runPodcast(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	switch {
	case podSearchFlag != "":
		return runPodcastSearch(ctx, app)
	case podRSSFlag != "":
		return runFeedEpisode(ctx, app, podRSSFlag)
	default:
		return runPodcastURL(ctx, app, podURLFlag)
	}
}

func runPodcastSearch(ctx context.Context, app *App) error {
	results, err := app.Directory.Search(ctx, podSearchFlag, 10)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("%w: no matches for %q", domain.ErrPodcastNotFound, podSearchFlag)
	}

	if podListFlag {
		fmt.Printf("Found %d podcasts:\n\n", len(results))
		for i, p := range results {
			fmt.Printf("%d. %s - %s\n", i+1, p.Name, p.Artist)
			fmt.Printf("   RSS: %s\n", p.FeedURL)
			if p.Description != "" {
				fmt.Printf("   %s\n", p.Description)
			}
			fmt.Println()
		}
		return nil
	}

	labels := lo.Map(results, func(p podcast.Podcast, _ int) string {
		return fmt.Sprintf("%s - %s", p.Name, p.Artist)
	})
	idx, ok, err := app.Selector.Select("Select a podcast:", labels)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled")
		return nil
	}

	feedURL := results[idx].FeedURL
	if feedURL == "" {
		return fmt.Errorf("%w: %q has no public feed (possibly subscription-only)", domain.ErrPodcastNotFound, results[idx].Name)
	}
	return runFeedEpisode(ctx, app, feedURL)
}

func runFeedEpisode(ctx context.Context, app *App, feedURL string) error {
	episodes, err := app.Feed.Episodes(ctx, feedURL, episodeListLimit)
	if err != nil {
		return err
	}
	if len(episodes) == 0 {
		return fmt.Errorf("%w: feed %s has no playable episodes", domain.ErrEpisodeNotFound, feedURL)
	}

	if podListFlag {
		fmt.Printf("Found %d episodes:\n\n", len(episodes))
		for i, ep := range episodes {
			fmt.Printf("%d. %s\n", i, ep.Title)
			if ep.Description != "" {
				fmt.Printf("   %s\n", firstLine(ep.Description, 100))
			}
		}
		return nil
	}

	var episode podcast.Episode
	if podEpisodeFlag >= 0 {
		// No silent first-episode fallback on a bad index: that masks
		// typos. Tell the user what range is valid instead.
		if podEpisodeFlag >= len(episodes) {
			return fmt.Errorf("%w: index %d out of range 0-%d", domain.ErrEpisodeNotFound, podEpisodeFlag, len(episodes)-1)
		}
		episode = episodes[podEpisodeFlag]
	} else {
		labels := lo.Map(episodes, func(ep podcast.Episode, _ int) string { return ep.Title })
		idx, ok, err := app.Selector.Select("Select an episode:", labels)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled")
			return nil
		}
		episode = episodes[idx]
	}

	return downloadEpisode(ctx, app, episode.Title, episode.AudioURL)
}

func runPodcastURL(ctx context.Context, app *App, url string) error {
	if !podcast.IsAppleURL(url) {
		// Anything else is handed to the fetcher as-is.
		return downloadEpisode(ctx, app, "", url)
	}

	podcastID, episodeID, ok := podcast.ParseAppleEpisodeURL(url)
	if !ok {
		return fmt.Errorf("could not extract podcast and episode IDs from %s (is it an episode link?)", url)
	}

	feedURL, err := app.Directory.LookupFeedURL(ctx, podcastID)
	if err != nil {
		return err
	}

	episode, err := app.Feed.FindEpisode(ctx, feedURL, episodeID)
	if err != nil {
		if errors.Is(err, domain.ErrEpisodeNotFound) {
			return fmt.Errorf("%w (try 'clipcast podcast --rss %s --list' to browse the feed)", err, feedURL)
		}
		return err
	}

	return downloadEpisode(ctx, app, episode.Title, episode.AudioURL)
}

// downloadEpisode fetches one audio URL and converts it to the target
// format. When the fetched container already matches, the file is
// moved into place without a re-encode.
func downloadEpisode(ctx context.Context, app *App, title, audioURL string) error {
	format, err := resolveFormat(app)
	if err != nil {
		return err
	}

	outputDir := outputFlag
	if outputDir == "" {
		outputDir = app.Config.OutputDir()
	}

	scratchDir := filepath.Join(os.TempDir(), "clipcast-"+uuid.NewString())
	defer os.RemoveAll(scratchDir)

	if !quietFlag {
		fmt.Println("Downloading audio...")
	}
	info, err := app.Fetcher.Fetch(ctx, audioURL, ports.FetchOptions{ScratchDir: scratchDir})
	if err != nil {
		return err
	}

	if title == "" {
		title = info.Title
	}
	if title == "" {
		title = info.ID
	}

	outPath, err := output.Resolve(outputDir, title, format)
	if err != nil {
		return err
	}

	fetchedExt := strings.TrimPrefix(filepath.Ext(info.LocalPath), ".")
	if strings.EqualFold(fetchedExt, format.Ext()) {
		if err := moveFile(info.LocalPath, outPath); err != nil {
			return err
		}
	} else {
		if !app.Transcoder.IsAvailable() {
			return domain.ErrToolMissing
		}
		if !quietFlag {
			fmt.Println("Converting audio...")
		}
		err = app.Transcoder.Transcode(ctx, ports.TranscodeJob{
			Input:  info.LocalPath,
			Output: outPath,
			Format: format,
		})
		if err != nil {
			return err
		}
	}

	if !quietFlag {
		fmt.Printf("\n✓ Done! Audio saved to: %s\n", outPath)
	}
	return nil
}

// firstLine trims a description down to a single short line.
func firstLine(s string, max int) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
