// Package catalog locates template sources: named entries in the local
// catalog directory and remote git repositories cloned into the scratch
// area under ~/.petor/cache/clones.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petor-dev/petor/internal/branding"
	"github.com/petor-dev/petor/internal/config"
	"github.com/petor-dev/petor/internal/manifest"
	"github.com/petor-dev/petor/internal/userdata"
)

// ErrNotFound reports a template name absent from the local catalog.
var ErrNotFound = errors.New("template not found")

// Template is a resolved template source on disk.
type Template struct {
	Name string
	Dir  string // absolute path to the template root
}

// ManifestPath returns the path to the template's petor.toml.
func (t *Template) ManifestPath() string {
	return filepath.Join(t.Dir, manifest.FileName)
}

// Root returns the local catalog directory, checking (in order):
// 1. PETOR_TEMPLATES env var
// 2. config key "templates_dir"
// 3. ~/.petor/templates
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("TEMPLATES")); v != "" {
		return v, nil
	}
	if v := config.Get("templates_dir"); v != "" {
		return v, nil
	}
	return userdata.TemplatesRoot()
}

// List returns the catalog's templates sorted by name. A directory counts
// as a template when it carries a petor.toml at its root. A missing
// catalog directory yields an empty list, not an error.
func List() ([]*Template, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog %s: %w", root, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
			continue
		}
		templates = append(templates, &Template{Name: entry.Name(), Dir: dir})
	}
	return templates, nil
}

// Resolve returns the named template from the local catalog.
func Resolve(name string) (*Template, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(root, name)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("template %q: %w", name, ErrNotFound)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
		return nil, fmt.Errorf("template %q has no %s: %w", name, manifest.FileName, ErrNotFound)
	}

	return &Template{Name: name, Dir: dir}, nil
}
