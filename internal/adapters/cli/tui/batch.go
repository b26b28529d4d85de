package tui

import (
	"fmt"
	"strings"
	"time"
)

// renderProgressBar creates a text progress bar like [=====>    ].
func renderProgressBar(current, total, width int) string {
	if total <= 0 || current <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	if current >= total {
		return "[" + strings.Repeat("=", width) + "]"
	}

	filled := current * width / total
	if filled >= width {
		filled = width - 1
	}
	return "[" + strings.Repeat("=", filled) + ">" + strings.Repeat(" ", width-filled-1) + "]"
}

type batchLine struct {
	url      string
	success  bool
	errMsg   string
	duration time.Duration
}

// BatchProgress renders per-item outcomes while a batch runs and the
// final summary afterwards. Items arrive strictly in order from the
// sequential runner.
type BatchProgress struct {
	total     int
	lines     []batchLine
	quiet     bool
	lastLines int
}

// NewBatchProgress creates a progress display for total items.
func NewBatchProgress(total int, quiet bool) *BatchProgress {
	if total < 0 {
		total = 0
	}
	return &BatchProgress{total: total, quiet: quiet}
}

// AddResult records one finished item and refreshes the display.
func (bp *BatchProgress) AddResult(url string, success bool, errMsg string, duration time.Duration) {
	bp.lines = append(bp.lines, batchLine{
		url:      url,
		success:  success,
		errMsg:   errMsg,
		duration: duration,
	})
	bp.render()
}

func (bp *BatchProgress) render() {
	if bp.quiet {
		return
	}

	// Progress line plus the most recent results
	shown := len(bp.lines)
	if shown > 10 {
		shown = 10
	}
	if bp.lastLines > 0 {
		fmt.Printf("\033[%dA", bp.lastLines)
		fmt.Print("\033[J")
	}

	completed := len(bp.lines)
	percent := 0
	if bp.total > 0 {
		percent = completed * 100 / bp.total
	}
	fmt.Printf("Processing %d/%d URLs %s %d%%\n",
		completed, bp.total, renderProgressBar(completed, bp.total, 20), percent)

	for _, line := range bp.lines[len(bp.lines)-shown:] {
		if line.success {
			fmt.Printf("✓ %s (%.1fs)\n", line.url, line.duration.Seconds())
		} else {
			fmt.Printf("✗ %s: %s\n", line.url, line.errMsg)
		}
	}

	bp.lastLines = 1 + shown
}

// Summary prints the final counts and each failed item's URL and error
// message. This is the terminal observable output of a batch run.
func (bp *BatchProgress) Summary() {
	succeeded := 0
	var failures []batchLine
	for _, line := range bp.lines {
		if line.success {
			succeeded++
		} else {
			failures = append(failures, line)
		}
	}

	fmt.Println()
	fmt.Printf("Batch complete: %d succeeded, %d failed (of %d)\n", succeeded, len(failures), bp.total)

	if len(failures) > 0 {
		fmt.Println("\nFailures:")
		for _, f := range failures {
			fmt.Printf("  ✗ %s: %s\n", f.url, f.errMsg)
		}
	}
}
