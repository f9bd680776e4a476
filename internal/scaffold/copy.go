package scaffold

import (
	"os"
	"path/filepath"
)

// CopyTree recursively copies the directory at src to dest, preserving
// structure, file contents, and modes. It creates dest and every
// subdirectory it encounters. No content transformation happens here;
// substitution is a later pass. Any read or write failure aborts the
// whole copy, possibly leaving a partial tree behind.
func CopyTree(src, dest string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dest, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(srcPath, destPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, destPath); err != nil {
				return err
			}
		}
		// Symlinks and other special files are skipped.
	}

	return nil
}

// copyFile copies a single file from src to dest, preserving permissions.
func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dest, data, srcInfo.Mode())
}
