package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petor-dev/petor/internal/branding"
)

// Directory name constants for the petor home layout.
const (
	TemplatesDir = "templates"
	CacheDir     = "cache"
	ClonesDir    = "clones"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// Root returns the petor home directory. It checks the PETOR_HOME
// environment variable first, then falls back to ~/.petor.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// TemplatesRoot returns the default local template catalog directory
// (~/.petor/templates). Catalog resolution layers env and config overrides
// on top of this default.
func TemplatesRoot() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, TemplatesDir), nil
}

// CloneCacheRoot returns the scratch directory for remote template clones
// (~/.petor/cache/clones). It checks the PETOR_CACHE environment variable
// first so tests and CI can sandbox clone state.
func CloneCacheRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("CACHE")); v != "" {
		return filepath.Join(v, ClonesDir), nil
	}
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CacheDir, ClonesDir), nil
}

// EnsureLayout creates the home directory skeleton (templates/ and
// cache/clones/) if it does not exist yet.
func EnsureLayout() error {
	templates, err := TemplatesRoot()
	if err != nil {
		return err
	}
	clones, err := CloneCacheRoot()
	if err != nil {
		return err
	}
	for _, dir := range []string{templates, clones} {
		if err := os.MkdirAll(dir, DirPermNormal); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
