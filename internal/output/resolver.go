package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devbush/clipcast/internal/domain"
)

// Resolve derives the final audio file path from a user-supplied
// location. If userPath is an existing directory or has no file
// extension it is treated as a directory and a filename of the form
// "<sanitized-name>.<ext>" is appended; otherwise the path is reused
// with its extension forced to match the target format. The parent
// directory is created before returning. The result is absolute.
func Resolve(userPath, displayName string, format domain.Format) (string, error) {
	abs, err := expand(userPath)
	if err != nil {
		return "", err
	}

	if isDir(abs) || filepath.Ext(abs) == "" {
		name := domain.SanitizeTitle(displayName)
		if name == "" {
			name = "audio"
		}
		abs = filepath.Join(abs, name+"."+format.Ext())
	} else {
		abs = strings.TrimSuffix(abs, filepath.Ext(abs)) + "." + format.Ext()
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return abs, nil
}

// ResolveRange is the time-range naming variant, producing
// "<sanitized-id>_<start>-<end>.<ext>" with integer-truncated second
// tags when userPath is a directory.
func ResolveRange(userPath, mediaID string, win domain.Window, format domain.Format) (string, error) {
	name := fmt.Sprintf("%s_%d-%d", domain.SanitizeID(mediaID), int(win.Start), int(win.End))
	return Resolve(userPath, name, format)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// expand resolves ~ and makes the path absolute.
func expand(path string) (string, error) {
	if path == "" {
		path = "."
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
