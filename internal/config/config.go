package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Paths    PathsConfig    `yaml:"paths"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Format    string `yaml:"format"`
	Browser   string `yaml:"browser"`
	OutputDir string `yaml:"output_dir"`
}

// PathsConfig holds custom binary path overrides
type PathsConfig struct {
	YtDlp  string `yaml:"yt_dlp"`
	FFmpeg string `yaml:"ffmpeg"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Format:    "mp3",
			Browser:   "chrome",
			OutputDir: "",
		},
	}
}

// AppDir returns the application directory (~/.clipcast)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clipcast"
	}
	return filepath.Join(home, ".clipcast")
}

// BinDir returns the directory checked for bundled yt-dlp/ffmpeg binaries
func BinDir() string {
	return filepath.Join(AppDir(), "bin")
}

// ConfigPath returns the config file path. CLIPCAST_CONFIG overrides
// the default location (settable via the environment or a .env file).
func ConfigPath() string {
	if path := os.Getenv("CLIPCAST_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	for _, dir := range []string{AppDir(), BinDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DownloadsDir returns the default output location: the user's
// downloads directory. On Linux systems with a localized home layout
// the standard name may not exist; fall back to the Chinese-locale
// directory when it does.
func DownloadsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	downloads := filepath.Join(home, "Downloads")
	if runtime.GOOS == "linux" {
		if _, err := os.Stat(downloads); os.IsNotExist(err) {
			localized := filepath.Join(home, "下载")
			if _, err := os.Stat(localized); err == nil {
				return localized
			}
		}
	}
	return downloads
}

// OutputDir resolves the effective default output directory, honoring
// a configured override before falling back to the downloads folder.
func (c *Config) OutputDir() string {
	if c.Defaults.OutputDir != "" {
		return c.Defaults.OutputDir
	}
	return DownloadsDir()
}
