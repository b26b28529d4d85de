package application

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/logging"
	"github.com/devbush/clipcast/internal/output"
	"github.com/devbush/clipcast/internal/ports"
)

// Step identifies a pipeline stage, reported through OnStep so the CLI
// can render progress without the service knowing about terminals.
type Step int

const (
	StepFetching Step = iota
	StepResolvingWindow
	StepResolvingPath
	StepTranscoding
	StepDone
)

// ClipService runs the fetch, window, path, transcode pipeline for one
// request at a time. Strictly sequential; no step overlaps another for
// the same request.
type ClipService struct {
	fetcher    ports.MediaFetcher
	transcoder ports.Transcoder

	// OnStep, when set, is called as each stage begins (and with
	// StepDone on success).
	OnStep func(Step)
}

// NewClipService creates the pipeline service.
func NewClipService(fetcher ports.MediaFetcher, transcoder ports.Transcoder) *ClipService {
	return &ClipService{fetcher: fetcher, transcoder: transcoder}
}

func (s *ClipService) step(st Step) {
	if s.OnStep != nil {
		s.OnStep(st)
	}
}

// Process executes the pipeline for req and returns the resolved
// output path. Scratch files live in a per-request temp directory that
// is removed before returning, success or failure.
func (s *ClipService) Process(ctx context.Context, req domain.ClipRequest) (string, error) {
	scratchDir := filepath.Join(os.TempDir(), "clipcast-"+uuid.NewString())
	defer os.RemoveAll(scratchDir)

	// Fetching
	s.step(StepFetching)
	info, err := s.fetcher.Fetch(ctx, req.URL, ports.FetchOptions{
		CookiesFromBrowser: req.CookiesFromBrowser,
		ScratchDir:         scratchDir,
	})
	if err != nil {
		return "", err
	}

	logging.L().Info("fetched media",
		zap.String("id", info.ID),
		zap.String("title", info.Title),
		zap.Float64("duration", info.DurationSeconds))

	// ResolvingWindow
	s.step(StepResolvingWindow)
	win, err := req.ResolveWindow(info.DurationSeconds)
	if err != nil {
		return "", err
	}

	// ResolvingPath
	s.step(StepResolvingPath)
	outPath, err := s.resolvePath(req, info, win)
	if err != nil {
		return "", err
	}

	// Transcoding
	s.step(StepTranscoding)
	err = s.transcoder.Transcode(ctx, ports.TranscodeJob{
		Input:       info.LocalPath,
		Output:      outPath,
		Format:      req.Format,
		StartSec:    win.Start,
		DurationSec: win.Duration(),
		HasWindow:   true,
	})
	if err != nil {
		return "", err
	}

	s.step(StepDone)
	return outPath, nil
}

// resolvePath picks the naming scheme: the id_start-end form when the
// user asked for a time-bounded clip, the sanitized title otherwise.
func (s *ClipService) resolvePath(req domain.ClipRequest, info *domain.MediaInfo, win domain.Window) (string, error) {
	if req.HasWindow() {
		return output.ResolveRange(req.Output, info.ID, win, req.Format)
	}

	name := info.Title
	if name == "" {
		name = info.ID
	}
	return output.Resolve(req.Output, name, req.Format)
}
