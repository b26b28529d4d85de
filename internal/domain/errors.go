package domain

import (
	"errors"
	"fmt"
)

var (
	// Request validation errors
	ErrInvalidFormat   = errors.New("invalid time format")
	ErrInvalidWindow   = errors.New("end time must be greater than start time")
	ErrMissingDuration = errors.New("media duration unknown and no end time given")
	ErrUnknownFormat   = errors.New("unsupported audio format")

	// External tool errors
	ErrFetcherMissing = errors.New("yt-dlp not found in bundled bin dir or PATH")
	ErrToolMissing    = errors.New("ffmpeg not found in bundled bin dir or PATH")

	// Podcast directory errors
	ErrPodcastNotFound = errors.New("podcast not found")
	ErrEpisodeNotFound = errors.New("episode not found in feed")
)

// FetchError wraps a failure from the download adapter, keeping the
// source URL for batch reporting.
type FetchError struct {
	URL    string
	Reason error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Reason }

// TranscodeError reports a non-zero exit from the transcode subprocess.
// ExitCode is propagated as the process exit status in single-item mode.
type TranscodeError struct {
	ExitCode int
	Stderr   string
}

func (e *TranscodeError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("ffmpeg exited with code %d: %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("ffmpeg exited with code %d", e.ExitCode)
}
