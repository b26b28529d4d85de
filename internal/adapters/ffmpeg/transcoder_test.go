package ffmpeg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbush/clipcast/internal/domain"
	"github.com/devbush/clipcast/internal/ports"
)

func TestBuildArgs_MP3(t *testing.T) {
	args, err := buildArgs(ports.TranscodeJob{
		Input:       "/tmp/in.webm",
		Output:      "/out/clip.mp3",
		Format:      domain.FormatMP3,
		StartSec:    30,
		DurationSec: 60,
		HasWindow:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-loglevel", "error",
		"-y",
		"-ss", "30",
		"-t", "60",
		"-i", "/tmp/in.webm",
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", "192k",
		"/out/clip.mp3",
	}, args)
}

func TestBuildArgs_WAV(t *testing.T) {
	args, err := buildArgs(ports.TranscodeJob{
		Input:       "/tmp/in.m4a",
		Output:      "/out/clip.wav",
		Format:      domain.FormatWAV,
		StartSec:    0,
		DurationSec: 10.5,
		HasWindow:   true,
	})
	require.NoError(t, err)

	// 2-channel 44100 Hz 16-bit little-endian PCM, always
	assert.Contains(t, args, "pcm_s16le")
	i := indexOf(args, "-ac")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "2", args[i+1])
	i = indexOf(args, "-ar")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, "44100", args[i+1])
	assert.Contains(t, args, "10.5")
}

func TestBuildArgs_AIFF(t *testing.T) {
	args, err := buildArgs(ports.TranscodeJob{
		Input:     "/tmp/in.m4a",
		Output:    "/out/clip.aiff",
		Format:    domain.FormatAIFF,
		HasWindow: false,
	})
	require.NoError(t, err)

	assert.Contains(t, args, "pcm_s16be")
	assert.NotContains(t, args, "-ss")
	assert.NotContains(t, args, "-t")
}

func TestBuildArgs_AlwaysStripsVideoAndOverwrites(t *testing.T) {
	for _, format := range []domain.Format{domain.FormatMP3, domain.FormatWAV, domain.FormatAIFF} {
		args, err := buildArgs(ports.TranscodeJob{Input: "in", Output: "out", Format: format})
		require.NoError(t, err)
		assert.Contains(t, args, "-vn")
		assert.Contains(t, args, "-y")
	}
}

func TestBuildArgs_UnknownFormat(t *testing.T) {
	_, err := buildArgs(ports.TranscodeJob{Input: "in", Output: "out", Format: domain.Format("ogg")})
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestTranscoder_MissingBinary(t *testing.T) {
	tr := NewTranscoder("/nonexistent/ffmpeg")
	err := tr.Transcode(context.Background(), ports.TranscodeJob{Input: "in", Output: "out", Format: domain.FormatMP3})
	assert.ErrorIs(t, err, domain.ErrToolMissing)
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
