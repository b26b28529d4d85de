package ytdlp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/devbush/clipcast/internal/config"
	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/logging"
	"github.com/devbush/clipcast/internal/ports"
)

// fetchRetries bounds re-attempts for transient extraction/fragment
// errors. Anything else fails immediately.
const fetchRetries = 3

// Fetcher implements MediaFetcher by shelling out to yt-dlp.
type Fetcher struct {
	binPath  string
	override string
}

// NewFetcher creates a yt-dlp backed fetcher. override, when set,
// names the binary explicitly (from config) and skips discovery.
func NewFetcher(override string) *Fetcher {
	return &Fetcher{override: override}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "yt-dlp.exe"
	}
	return "yt-dlp"
}

func (f *Fetcher) findBinary() string {
	if f.override != "" {
		if _, err := os.Stat(f.override); err == nil {
			return f.override
		}
		return ""
	}

	// Check bundled location first
	bundled := filepath.Join(config.BinDir(), binaryName())
	if _, err := os.Stat(bundled); err == nil {
		return bundled
	}

	// Check system PATH
	if path, err := exec.LookPath(binaryName()); err == nil {
		return path
	}

	return ""
}

func (f *Fetcher) BinaryPath() string {
	if f.binPath != "" {
		return f.binPath
	}
	f.binPath = f.findBinary()
	return f.binPath
}

func (f *Fetcher) IsAvailable() bool {
	return f.BinaryPath() != ""
}

// mediaJSON is the subset of yt-dlp's --print-json output we consume.
type mediaJSON struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Duration           float64 `json:"duration"`
	Ext                string  `json:"ext"`
	RequestedDownloads []struct {
		Filepath string `json:"filepath"`
	} `json:"requested_downloads"`
}

// Fetch downloads the best audio stream for url into opts.ScratchDir
// and returns its metadata. Transient extraction failures are retried
// up to fetchRetries times.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts ports.FetchOptions) (*domain.MediaInfo, error) {
	binPath := f.BinaryPath()
	if binPath == "" {
		return nil, &domain.FetchError{URL: url, Reason: domain.ErrFetcherMissing}
	}

	if err := os.MkdirAll(opts.ScratchDir, 0755); err != nil {
		return nil, &domain.FetchError{URL: url, Reason: fmt.Errorf("failed to create scratch directory: %w", err)}
	}

	var lastErr error
	for attempt := 0; attempt <= fetchRetries; attempt++ {
		if attempt > 0 {
			logging.L().Warn("retrying fetch after transient error",
				zap.String("url", url),
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
		}

		info, err := f.runOnce(ctx, binPath, url, opts)
		if err == nil {
			return info, nil
		}
		lastErr = err

		if !isTransient(err) || ctx.Err() != nil {
			break
		}
	}

	return nil, &domain.FetchError{URL: url, Reason: lastErr}
}

func (f *Fetcher) runOnce(ctx context.Context, binPath, url string, opts ports.FetchOptions) (*domain.MediaInfo, error) {
	outputTemplate := filepath.Join(opts.ScratchDir, "%(id)s.%(ext)s")

	args := []string{
		"--no-warnings",
		"--print-json",
		"-f", "bestaudio/best",
		"-o", outputTemplate,
	}
	if opts.CookiesFromBrowser != "" {
		args = append(args, "--cookies-from-browser", opts.CookiesFromBrowser)
	}
	args = append(args, url)

	cmd := exec.CommandContext(ctx, binPath, args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("yt-dlp failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	var info mediaJSON
	if err := json.Unmarshal(output, &info); err != nil {
		// Metadata is unusable but the download may have landed; find it.
		matches, _ := filepath.Glob(filepath.Join(opts.ScratchDir, "*"))
		if len(matches) > 0 {
			return &domain.MediaInfo{ID: "media", LocalPath: matches[0]}, nil
		}
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	localPath := filepath.Join(opts.ScratchDir, fmt.Sprintf("%s.%s", info.ID, info.Ext))
	if len(info.RequestedDownloads) > 0 && info.RequestedDownloads[0].Filepath != "" {
		localPath = info.RequestedDownloads[0].Filepath
	}

	if _, err := os.Stat(localPath); err != nil {
		return nil, fmt.Errorf("yt-dlp reported success but %s does not exist", localPath)
	}

	return &domain.MediaInfo{
		ID:              info.ID,
		Title:           info.Title,
		DurationSeconds: info.Duration,
		LocalPath:       localPath,
	}, nil
}

// transientMarkers are stderr fragments that indicate a retryable
// network/extraction hiccup rather than a hard failure.
var transientMarkers = []string{
	"fragment",
	"timed out",
	"timeout",
	"connection reset",
	"temporary failure",
	"HTTP Error 5",
}

func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

var _ ports.MediaFetcher = (*Fetcher)(nil)
