package domain

import (
	"fmt"
	"strings"
)

// Format is a target audio container/codec pair.
type Format string

const (
	FormatMP3  Format = "mp3"  // lossy, 192 kbit/s
	FormatWAV  Format = "wav"  // 16-bit little-endian PCM
	FormatAIFF Format = "aiff" // 16-bit big-endian PCM
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMP3, FormatWAV, FormatAIFF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (expected mp3, wav or aiff)", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// ClipRequest describes one unit of work for the pipeline. Start and
// End are only meaningful when the matching Has flag is set.
type ClipRequest struct {
	URL                string
	Start              float64
	End                float64
	HasStart           bool
	HasEnd             bool
	Format             Format
	Output             string // directory or file path
	CookiesFromBrowser string
}

// HasWindow reports whether the user asked for a time-bounded clip
// rather than the whole media.
func (r ClipRequest) HasWindow() bool { return r.HasStart || r.HasEnd }

// Window is a resolved [Start, End) clip range in seconds.
type Window struct {
	Start float64
	End   float64
}

// Duration returns the window length in seconds.
func (w Window) Duration() float64 { return w.End - w.Start }

// ResolveWindow applies the defaulting rules: a missing start is 0 and
// a missing end is the media duration, which must then be known.
func (r ClipRequest) ResolveWindow(mediaDuration float64) (Window, error) {
	w := Window{End: mediaDuration}
	if r.HasStart {
		w.Start = r.Start
	}
	if r.HasEnd {
		w.End = r.End
	} else if mediaDuration <= 0 {
		return Window{}, ErrMissingDuration
	}
	if w.Duration() <= 0 {
		return Window{}, fmt.Errorf("%w: start=%.3f end=%.3f", ErrInvalidWindow, w.Start, w.End)
	}
	return w, nil
}

// MediaInfo is the metadata produced by one fetch. Read-only after the
// adapter returns it.
type MediaInfo struct {
	ID              string
	Title           string
	DurationSeconds float64
	LocalPath       string
}

// ParseURLList splits a bracketed, comma-separated URL list such as
// "[https://a, https://b]". The brackets are optional; blank entries
// are dropped.
func ParseURLList(input string) ([]string, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	var urls []string
	for _, part := range strings.Split(s, ",") {
		if u := strings.TrimSpace(part); u != "" {
			urls = append(urls, u)
		}
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("no URLs found in list %q", input)
	}
	return urls, nil
}
