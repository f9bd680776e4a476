package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/petor-dev/petor/internal/catalog"
	"github.com/petor-dev/petor/internal/logging"
	"github.com/petor-dev/petor/internal/manifest"
)

// ProjectSubtree is the directory at every template root holding the
// project content. It is literally named after the slug token, so the
// template tree itself shows where the generated project name lands.
const ProjectSubtree = "{{ petor.project.slug }}"

// Options configures a materialization run.
type Options struct {
	Version   string    // CLI build version, checked against [template] requires
	ParentDir string    // directory the destination is created under; default "."
	In        io.Reader // prompt replies
	Out       io.Writer // prompts and warnings
}

// Result holds the outcome of a materialization or generation.
type Result struct {
	Destination string
	Files       []string // relative paths under Destination, sorted
}

// Materialize runs the full pipeline against a resolved template: parse
// and validate petor.toml, collect values interactively, guard the
// destination, replicate the project subtree, flatten the configuration,
// and substitute tokens across the copied tree.
func Materialize(tpl *catalog.Template, opts Options) (*Result, error) {
	logger := logging.GetLogger("scaffold")

	data, err := os.ReadFile(tpl.ManifestPath())
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", tpl.Name, ErrManifestMissing)
	}

	validation, err := manifest.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", tpl.ManifestPath(), err)
	}
	if !validation.Valid {
		return nil, fmt.Errorf("invalid manifest %s:\n%s", tpl.ManifestPath(), formatIssues(validation.Issues))
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return nil, err
	}
	if err := manifest.CheckRequires(doc.Meta.Requires, opts.Version); err != nil {
		return nil, err
	}

	prompter := manifest.NewPrompter(opts.In, opts.Out)
	if err := manifest.Collect(doc.Schema, manifest.RootNamespace, prompter); err != nil {
		return nil, err
	}

	slug, err := doc.ProjectSlug()
	if err != nil {
		return nil, err
	}

	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	dest := filepath.Join(parent, slug)
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("%s: %w", dest, ErrDestinationExists)
	}

	src, err := projectSubtree(tpl)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("template", tpl.Name).Str("dest", dest).Msg("replicating project subtree")
	if err := CopyTree(src, dest); err != nil {
		return nil, fmt.Errorf("replicating template: %w", err)
	}

	repl := manifest.Flatten(doc.Schema, manifest.RootNamespace)
	files, err := SubstituteTree(dest, repl)
	if err != nil {
		return nil, fmt.Errorf("substituting tokens: %w", err)
	}

	return &Result{Destination: dest, Files: files}, nil
}

// Generate copies the template's project subtree verbatim into dest: no
// collection, no substitution, tokens left intact.
func Generate(tpl *catalog.Template, dest string) (*Result, error) {
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("%s: %w", dest, ErrDestinationExists)
	}

	src, err := projectSubtree(tpl)
	if err != nil {
		return nil, err
	}

	if err := CopyTree(src, dest); err != nil {
		return nil, fmt.Errorf("replicating template: %w", err)
	}

	files, err := listFiles(dest)
	if err != nil {
		return nil, err
	}
	return &Result{Destination: dest, Files: files}, nil
}

// projectSubtree returns the template's project content directory.
func projectSubtree(tpl *catalog.Template) (string, error) {
	src := filepath.Join(tpl.Dir, ProjectSubtree)
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("template %q: %w", tpl.Name, ErrProjectTreeMissing)
	}
	return src, nil
}

// listFiles returns the regular files under root, relative and sorted.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// formatIssues renders validation issues one per line for diagnostics.
func formatIssues(issues []manifest.ValidationIssue) string {
	lines := make([]string, 0, len(issues))
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		lines = append(lines, "  "+msg)
	}
	return strings.Join(lines, "\n")
}
