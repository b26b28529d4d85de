package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/devbush/clipcast/internal/application"
	"github.com/devbush/clipcast/internal/config"
	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/ports"
)

func testApp() *App {
	return &App{Config: config.DefaultConfig()}
}

func resetFlags() {
	urlFlag, listFlag, fileFlag = "", "", ""
	startFlag, endFlag = "", ""
	formatFlag, outputFlag, browserFlag = "", "", ""
}

func TestBuildRequests_Defaults(t *testing.T) {
	resetFlags()

	reqs, err := buildRequests(testApp(), []string{"https://v.example/1"})
	if err != nil {
		t.Fatalf("buildRequests() error = %v", err)
	}

	req := reqs[0]
	if req.Format != domain.FormatMP3 {
		t.Errorf("Format = %v, want mp3", req.Format)
	}
	if req.CookiesFromBrowser != "chrome" {
		t.Errorf("CookiesFromBrowser = %q, want chrome", req.CookiesFromBrowser)
	}
	if req.HasStart || req.HasEnd {
		t.Error("window flags should be unset without --start/--end")
	}
	if req.Output == "" {
		t.Error("Output should default to the downloads directory")
	}
}

func TestBuildRequests_Window(t *testing.T) {
	resetFlags()
	startFlag, endFlag = "1:30", "2:45"

	reqs, err := buildRequests(testApp(), []string{"https://v.example/1"})
	if err != nil {
		t.Fatalf("buildRequests() error = %v", err)
	}

	req := reqs[0]
	if req.Start != 90 || req.End != 165 {
		t.Errorf("window = [%v, %v), want [90, 165)", req.Start, req.End)
	}
	if !req.HasStart || !req.HasEnd {
		t.Error("window flags should be set")
	}
}

func TestBuildRequests_BadTime(t *testing.T) {
	resetFlags()
	startFlag = "1:2:3:4"

	_, err := buildRequests(testApp(), []string{"https://v.example/1"})
	if !errors.Is(err, domain.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestBuildRequests_EndBeforeStart(t *testing.T) {
	resetFlags()
	startFlag, endFlag = "2:00", "1:00"

	_, err := buildRequests(testApp(), []string{"https://v.example/1"})
	if !errors.Is(err, domain.ErrInvalidWindow) {
		t.Errorf("error = %v, want ErrInvalidWindow", err)
	}
}

func TestBatchInvocation(t *testing.T) {
	tests := []struct {
		name string
		list string
		file string
		want bool
	}{
		{"url only", "", "", false},
		{"single-entry list", "[https://v.example/1]", "", true},
		{"multi-entry list", "[https://v.example/1, https://v.example/2]", "", true},
		{"url file", "", "urls.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := batchInvocation(tt.list, tt.file); got != tt.want {
				t.Errorf("batchInvocation(%q, %q) = %v, want %v", tt.list, tt.file, got, tt.want)
			}
		})
	}
}

// failingFetcher rejects every URL, standing in for an unreachable
// source.
type failingFetcher struct{}

func (f *failingFetcher) Fetch(_ context.Context, url string, _ ports.FetchOptions) (*domain.MediaInfo, error) {
	return nil, &domain.FetchError{URL: url, Reason: errors.New("network is down")}
}

func (f *failingFetcher) IsAvailable() bool  { return true }
func (f *failingFetcher) BinaryPath() string { return "/stub/yt-dlp" }

type noopTranscoder struct{}

func (t *noopTranscoder) Transcode(context.Context, ports.TranscodeJob) error { return nil }
func (t *noopTranscoder) IsAvailable() bool                                   { return true }
func (t *noopTranscoder) BinaryPath() string                                  { return "/stub/ffmpeg" }

// A one-entry batch that fails must still return nil so the process
// exits 0 after the summary, unlike single-item mode where the failure
// is fatal.
func TestRunBatch_SingleEntryFailureIsNotFatal(t *testing.T) {
	resetFlags()
	quietFlag = true
	defer func() { quietFlag = false }()

	clips := application.NewClipService(&failingFetcher{}, &noopTranscoder{})
	app := &App{
		Config: config.DefaultConfig(),
		Clips:  clips,
		Batch:  application.NewBatchRunner(clips),
	}

	reqs := []domain.ClipRequest{{
		URL:    "https://v.example/1",
		End:    30,
		HasEnd: true,
		Format: domain.FormatMP3,
		Output: t.TempDir(),
	}}

	if err := runBatch(context.Background(), app, reqs); err != nil {
		t.Fatalf("runBatch() error = %v, want nil (failures belong in the summary)", err)
	}
}

func TestBuildRequests_PerURL(t *testing.T) {
	resetFlags()
	endFlag = "30"

	urls := []string{"https://v.example/1", "https://v.example/2"}
	reqs, err := buildRequests(testApp(), urls)
	if err != nil {
		t.Fatalf("buildRequests() error = %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want 2", len(reqs))
	}
	for i, req := range reqs {
		if req.URL != urls[i] {
			t.Errorf("reqs[%d].URL = %q, want %q", i, req.URL, urls[i])
		}
	}
}
