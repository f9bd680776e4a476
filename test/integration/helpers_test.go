//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petor-dev/petor/internal/userdata"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PETOR_HOME — contains templates/ and config.yaml
	CacheDir   string // PETOR_CACHE — clone cache for remote templates
	WorkDir    string // parent directory for generated projects
	CatalogDir string // PETOR_HOME/templates
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so every petor operation is sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:  t.TempDir(),
		CacheDir: t.TempDir(),
		WorkDir:  t.TempDir(),
	}
	env.CatalogDir = filepath.Join(env.HomeDir, userdata.TemplatesDir)

	t.Setenv("PETOR_HOME", env.HomeDir)
	t.Setenv("PETOR_CACHE", env.CacheDir)
	// A stray PETOR_TEMPLATES would escape the sandbox.
	t.Setenv("PETOR_TEMPLATES", env.CatalogDir)

	if err := userdata.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	return env
}

// setupCatalog populates the sandboxed catalog with synthetic templates.
func setupCatalog(t *testing.T, env *testEnv) {
	t.Helper()

	// A full-featured template: metadata, nested config, token-bearing tree.
	webService := filepath.Join(env.CatalogDir, "web-service")
	writeFile(t, filepath.Join(webService, "petor.toml"), `[template]
description = "HTTP service starter"
version = "1.2.0"

[petor.project]
name = "Web Service"
slug = "web_service"

[petor.server]
host = "0.0.0.0"
port = 8080
`)
	subtree := filepath.Join(webService, "{{ petor.project.slug }}")
	writeFile(t, filepath.Join(subtree, "README.md"), "# {{ petor.project.name }}\n\nListens on {{ petor.server.host }}:{{ petor.server.port }}.\n")
	writeFile(t, filepath.Join(subtree, "cmd", "main.go"), "package main // {{ petor.project.slug }}\n")
	writeFile(t, filepath.Join(subtree, "config.toml"), "host = \"{{ petor.server.host }}\"\nport = {{ petor.server.port }}\n")

	// A minimal template with no extra configuration.
	docs := filepath.Join(env.CatalogDir, "docs-site")
	writeFile(t, filepath.Join(docs, "petor.toml"), `[petor.project]
name = "Docs"
slug = "docs"
`)
	writeFile(t, filepath.Join(docs, "{{ petor.project.slug }}", "index.md"), "# {{ petor.project.name }}\n")

	// A directory without a manifest is not a template.
	writeFile(t, filepath.Join(env.CatalogDir, "scratch", "notes.txt"), "not a template\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
