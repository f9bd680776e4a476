package catalog

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/petor-dev/petor/internal/logging"
	"github.com/petor-dev/petor/internal/userdata"
)

// CloneRemote shallow-clones a git repository into the scratch area and
// returns it as a template source. An existing scratch clone for the same
// basename is removed first so every run starts from a clean checkout; the
// .git directory is stripped afterwards since it is not template content.
func CloneRemote(url string) (*Template, error) {
	if err := ensureGit(); err != nil {
		return nil, err
	}

	cache, err := userdata.CloneCacheRoot()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cache, userdata.DirPermNormal); err != nil {
		return nil, fmt.Errorf("creating clone cache %s: %w", cache, err)
	}

	name := strings.TrimSuffix(filepath.Base(url), ".git")
	target := filepath.Join(cache, name)
	if err := os.RemoveAll(target); err != nil {
		return nil, fmt.Errorf("clearing scratch clone %s: %w", target, err)
	}

	logger := logging.GetLogger("catalog")
	logger.Debug().Str("url", url).Str("target", target).Msg("cloning template repository")

	cmd := exec.Command("git", "clone", "--depth=1", url, target)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w\n%s", url, err, strings.TrimSpace(string(output)))
	}

	if err := os.RemoveAll(filepath.Join(target, ".git")); err != nil {
		return nil, fmt.Errorf("stripping .git from clone: %w", err)
	}

	return &Template{Name: name, Dir: target}, nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
