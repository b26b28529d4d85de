package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/devbush/clipcast/internal/config"
	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/logging"
	"github.com/devbush/clipcast/internal/ports"
)

// Transcoder implements ports.Transcoder by shelling out to ffmpeg.
type Transcoder struct {
	binPath  string
	override string
}

// NewTranscoder creates an ffmpeg backed transcoder. override, when
// set, names the binary explicitly (from config) and skips discovery.
func NewTranscoder(override string) *Transcoder {
	return &Transcoder{override: override}
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

func (t *Transcoder) findBinary() string {
	if t.override != "" {
		if _, err := os.Stat(t.override); err == nil {
			return t.override
		}
		return ""
	}

	bundled := filepath.Join(config.BinDir(), binaryName())
	if _, err := os.Stat(bundled); err == nil {
		return bundled
	}

	if path, err := exec.LookPath(binaryName()); err == nil {
		return path
	}

	return ""
}

func (t *Transcoder) BinaryPath() string {
	if t.binPath != "" {
		return t.binPath
	}
	t.binPath = t.findBinary()
	return t.binPath
}

func (t *Transcoder) IsAvailable() bool {
	return t.BinaryPath() != ""
}

// codecArgs maps a target format to its codec and encode parameters.
func codecArgs(format domain.Format) ([]string, error) {
	switch format {
	case domain.FormatMP3:
		return []string{"-acodec", "libmp3lame", "-b:a", "192k"}, nil
	case domain.FormatWAV:
		return []string{"-acodec", "pcm_s16le", "-ac", "2", "-ar", "44100"}, nil
	case domain.FormatAIFF:
		return []string{"-acodec", "pcm_s16be", "-ac", "2", "-ar", "44100"}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// buildArgs assembles the full ffmpeg argument list for a job. The
// seek/duration flags precede -i for fast input-side seeking; -vn
// strips any video stream and -y overwrites without prompting.
func buildArgs(job ports.TranscodeJob) ([]string, error) {
	codec, err := codecArgs(job.Format)
	if err != nil {
		return nil, err
	}

	args := []string{"-loglevel", "error", "-y"}
	if job.HasWindow {
		args = append(args,
			"-ss", formatSeconds(job.StartSec),
			"-t", formatSeconds(job.DurationSec),
		)
	}
	args = append(args, "-i", job.Input, "-vn")
	args = append(args, codec...)
	args = append(args, job.Output)
	return args, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Transcode runs one decode/encode pass. A missing binary yields
// ErrToolMissing; a non-zero exit yields a TranscodeError carrying the
// subprocess exit status.
func (t *Transcoder) Transcode(ctx context.Context, job ports.TranscodeJob) error {
	binPath := t.BinaryPath()
	if binPath == "" {
		return domain.ErrToolMissing
	}

	args, err := buildArgs(job)
	if err != nil {
		return err
	}

	logging.L().Debug("running ffmpeg",
		zap.String("input", job.Input),
		zap.String("output", job.Output),
		zap.String("format", string(job.Format)))

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, binPath, args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return &domain.TranscodeError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return fmt.Errorf("ffmpeg failed to start: %w", err)
	}
	return nil
}

var _ ports.Transcoder = (*Transcoder)(nil)
