package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/petor-dev/petor/internal/manifest"
)

// rewriter applies a ReplacementMap to file content. Each key matches the
// literal token {{ key }} with insignificant whitespace inside the braces;
// dots in the key match literally.
type rewriter struct {
	rules []rule
}

type rule struct {
	pattern *regexp.Regexp
	value   string
}

// newRewriter compiles one pattern per replacement key, in sorted key
// order so repeated runs rewrite identically.
func newRewriter(repl manifest.ReplacementMap) *rewriter {
	keys := make([]string, 0, len(repl))
	for k := range repl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	r := &rewriter{rules: make([]rule, 0, len(keys))}
	for _, k := range keys {
		pattern := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(k) + `\s*\}\}`)
		r.rules = append(r.rules, rule{pattern: pattern, value: repl[k]})
	}
	return r
}

// apply substitutes every occurrence of every token in content.
func (r *rewriter) apply(content string) string {
	for _, rule := range r.rules {
		content = rule.pattern.ReplaceAllLiteralString(content, rule.value)
	}
	return content
}

// SubstituteTree rewrites every regular file under root in place,
// replacing all replacement tokens. It returns the visited file paths
// relative to root, sorted. Files containing no tokens are left untouched.
func SubstituteTree(root string, repl manifest.ReplacementMap) ([]string, error) {
	rw := newRewriter(repl)

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

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rewritten := rw.apply(string(data))
		if rewritten == string(data) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(rewritten), info.Mode()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
