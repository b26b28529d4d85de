package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDepsCmd creates the deps subcommand
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Show external tool status (yt-dlp, ffmpeg)",
		RunE:  runDepsStatus,
	}
	return cmd
}

func runDepsStatus(cmd *cobra.Command, args []string) error {
	app, err := GetApp()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Dependency Status:")
	fmt.Println()

	if app.Fetcher.IsAvailable() {
		fmt.Printf("  yt-dlp:  found (%s)\n", app.Fetcher.BinaryPath())
	} else {
		fmt.Println("  yt-dlp:  not found (install it or set paths.yt_dlp in config)")
	}

	if app.Transcoder.IsAvailable() {
		fmt.Printf("  ffmpeg:  found (%s)\n", app.Transcoder.BinaryPath())
	} else {
		fmt.Println("  ffmpeg:  not found (install it or set paths.ffmpeg in config)")
	}
	fmt.Println()

	return nil
}
