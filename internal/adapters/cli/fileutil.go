package cli

import (
	"io"
	"os"
)

// moveFile renames src to dst, falling back to copy+remove when the
// paths are on different filesystems (scratch dirs usually live on
// tmpfs).
func moveFile(src, dst string) error {
	if src == dst {
		return nil
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = io.Copy(destFile, sourceFile)
	if closeErr := destFile.Close(); err == nil {
		err = closeErr
	}
	return err
}
