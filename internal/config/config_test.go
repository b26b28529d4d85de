package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Format != "mp3" {
		t.Errorf("Default format = %s, want mp3", cfg.Defaults.Format)
	}
	if cfg.Defaults.Browser != "chrome" {
		t.Errorf("Default browser = %s, want chrome", cfg.Defaults.Browser)
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Format = "wav"
	cfg.Paths.FFmpeg = "/opt/ffmpeg/bin/ffmpeg"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Defaults.Format != "wav" {
		t.Errorf("Loaded format = %s, want wav", loaded.Defaults.Format)
	}
	if loaded.Paths.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Loaded ffmpeg path = %s, want /opt/ffmpeg/bin/ffmpeg", loaded.Paths.FFmpeg)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Defaults.Format != "mp3" {
		t.Errorf("Missing file should yield defaults, got format %s", cfg.Defaults.Format)
	}
}

func TestAppDir(t *testing.T) {
	dir := AppDir()
	if dir == "" {
		t.Error("AppDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".clipcast")
	if dir != expected {
		t.Errorf("AppDir() = %s, want %s", dir, expected)
	}
}

func TestOutputDir_Override(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.OutputDir = "/tmp/clips"

	if got := cfg.OutputDir(); got != "/tmp/clips" {
		t.Errorf("OutputDir() = %s, want /tmp/clips", got)
	}
}

func TestDownloadsDir_NotEmpty(t *testing.T) {
	if DownloadsDir() == "" {
		t.Error("DownloadsDir() returned empty string")
	}
}
