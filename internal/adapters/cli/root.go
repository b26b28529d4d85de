package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devbush/clipcast/internal/adapters/cli/tui"
	"github.com/devbush/clipcast/internal/application"
	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/logging"
)

var (
	urlFlag     string
	listFlag    string
	fileFlag    string
	startFlag   string
	endFlag     string
	formatFlag  string
	outputFlag  string
	browserFlag string
	quietFlag   bool
)

// pipelineSteps mirrors the stages of the single-item pipeline.
var pipelineSteps = []string{
	"Fetching media",
	"Resolving clip window",
	"Resolving output path",
	"Transcoding",
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clipcast",
		Short: "Clip a segment from an online video and convert it to audio",
		Long: `clipcast fetches a remote video or podcast audio resource, cuts out a
time-bounded segment, and transcodes it to mp3, wav or aiff.

Examples:
  clipcast -u https://example.com/watch?v=abc -s 1:30 -e 2:45 -f mp3
  clipcast -l "[https://example.com/a, https://example.com/b]" -s 10 -e 40 -o ~/clips`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(quietFlag)
		},
		RunE: runClip,
	}

	rootCmd.Flags().StringVarP(&urlFlag, "url", "u", "", "Single source URL")
	rootCmd.Flags().StringVarP(&listFlag, "list", "l", "", "Bracketed, comma-separated list of URLs for batch mode")
	rootCmd.Flags().StringVar(&fileFlag, "file", "", "File with URLs, one per line")
	rootCmd.Flags().StringVarP(&startFlag, "start", "s", "", "Clip start time (HH:MM:SS, MM:SS or SS)")
	rootCmd.Flags().StringVarP(&endFlag, "end", "e", "", "Clip end time (HH:MM:SS, MM:SS or SS)")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output audio format: mp3, wav, aiff (default mp3)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination directory or file path (default: downloads folder)")
	rootCmd.Flags().StringVar(&browserFlag, "cookies-from-browser", "", "Browser whose session cookies authorize the fetch (default chrome)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	rootCmd.AddCommand(NewPodcastCmd())
	rootCmd.AddCommand(NewDepsCmd())

	return rootCmd
}

// buildRequests validates the shared flags and expands them into one
// ClipRequest per URL. All validation failures here are fatal
// configuration errors.
func buildRequests(app *App, urls []string) ([]domain.ClipRequest, error) {
	format, err := resolveFormat(app)
	if err != nil {
		return nil, err
	}

	base := domain.ClipRequest{
		Format:             format,
		Output:             outputFlag,
		CookiesFromBrowser: browserFlag,
	}
	if base.Output == "" {
		base.Output = app.Config.OutputDir()
	}
	if base.CookiesFromBrowser == "" {
		base.CookiesFromBrowser = app.Config.Defaults.Browser
	}

	if startFlag != "" {
		base.Start, err = domain.ParseTime(startFlag)
		if err != nil {
			return nil, err
		}
		base.HasStart = true
	}
	if endFlag != "" {
		base.End, err = domain.ParseTime(endFlag)
		if err != nil {
			return nil, err
		}
		base.HasEnd = true
	}
	if base.HasStart && base.HasEnd && base.End <= base.Start {
		return nil, fmt.Errorf("%w: start=%s end=%s", domain.ErrInvalidWindow, startFlag, endFlag)
	}

	reqs := make([]domain.ClipRequest, 0, len(urls))
	for _, u := range urls {
		req := base
		req.URL = u
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func resolveFormat(app *App) (domain.Format, error) {
	name := formatFlag
	if name == "" {
		name = app.Config.Defaults.Format
	}
	if name == "" {
		name = "mp3"
	}
	return domain.ParseFormat(name)
}

func runClip(cmd *cobra.Command, args []string) error {
	urls, err := CollectURLs(urlFlag, listFlag, fileFlag)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return errors.New("no source URL given (use --url or --list)")
	}

	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	reqs, err := buildRequests(app, urls)
	if err != nil {
		return err
	}

	// No item can succeed without the transcode tool; fail before any
	// network work.
	if !app.Transcoder.IsAvailable() {
		return domain.ErrToolMissing
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Batch semantics follow the invocation, not the URL count: a
	// --list or --file run with a single entry still gets the
	// summary-and-exit-0 treatment.
	if batchInvocation(listFlag, fileFlag) {
		return runBatch(ctx, app, reqs)
	}
	return runSingle(ctx, app, reqs[0])
}

// batchInvocation reports whether the flags asked for batch mode.
// --url alone is single-item; --list and --file are batch even when
// they name one URL, so per-item failures are summarized rather than
// fatal.
func batchInvocation(list, file string) bool {
	return list != "" || file != ""
}

// runSingle processes one request; any error is fatal and surfaced
// with a non-zero process exit.
func runSingle(ctx context.Context, app *App, req domain.ClipRequest) error {
	display := tui.NewStepDisplay(pipelineSteps, quietFlag)

	app.Clips.OnStep = func(step application.Step) {
		switch step {
		case application.StepDone:
			display.CompleteAll()
		default:
			display.Start(int(step))
		}
	}
	defer func() { app.Clips.OnStep = nil }()

	outPath, err := app.Clips.Process(ctx, req)
	if err != nil {
		display.Fail(err.Error())
		return err
	}

	display.Done(outPath)
	return nil
}

// runBatch processes every request sequentially and prints a summary.
// Per-item failures are reported, not fatal: partial success still
// exits 0.
func runBatch(ctx context.Context, app *App, reqs []domain.ClipRequest) error {
	progress := tui.NewBatchProgress(len(reqs), quietFlag)

	app.Batch.Run(ctx, reqs, func(item application.ItemResult) {
		errMsg := ""
		if item.Err != nil {
			errMsg = item.Err.Error()
		}
		progress.AddResult(item.URL, item.Err == nil, errMsg, item.Duration)
	})

	progress.Summary()
	return nil
}

// Execute runs the CLI. A transcode failure in single-item mode
// propagates the external tool's exit status.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		var tErr *domain.TranscodeError
		if errors.As(err, &tErr) && tErr.ExitCode > 0 {
			os.Exit(tErr.ExitCode)
		}
		os.Exit(1)
	}
}
