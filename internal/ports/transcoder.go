package ports

import (
	"context"

	"github.com/devbush/clipcast/internal/domain"
)

// TranscodeJob describes one decode/encode pass.
type TranscodeJob struct {
	Input  string
	Output string
	Format domain.Format

	// StartSec/DurationSec bound the segment when HasWindow is set;
	// otherwise the whole input is transcoded.
	StartSec    float64
	DurationSec float64
	HasWindow   bool
}

// Transcoder re-encodes a (possibly time-bounded) slice of a media
// file to a target audio format. Any video stream is stripped and an
// existing output file is overwritten without prompting.
type Transcoder interface {
	Transcode(ctx context.Context, job TranscodeJob) error

	// IsAvailable checks whether the underlying tool can be located.
	IsAvailable() bool

	// BinaryPath returns the resolved tool path, empty when missing.
	BinaryPath() string
}
