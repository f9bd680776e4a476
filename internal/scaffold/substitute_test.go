package scaffold

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/petor-dev/petor/internal/manifest"
)

func TestRewriterReplacesTokens(t *testing.T) {
	rw := newRewriter(manifest.ReplacementMap{
		"petor.project.name": "Foo",
		"petor.project.slug": "foo",
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Hello {{ petor.project.name }}!", "Hello Foo!"},
		{"no whitespace", "{{petor.project.slug}}", "foo"},
		{"extra whitespace", "{{   petor.project.slug   }}", "foo"},
		{"repeated", "{{ petor.project.slug }}/{{ petor.project.slug }}", "foo/foo"},
		{"multiple keys", "{{ petor.project.name }} ({{ petor.project.slug }})", "Foo (foo)"},
		{"no match untouched", "plain text {{ other.key }}", "plain text {{ other.key }}"},
		{"partial braces untouched", "{ petor.project.name }", "{ petor.project.name }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rw.apply(tt.in); got != tt.want {
				t.Errorf("apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriterValueIsLiteral(t *testing.T) {
	// Replacement values containing regexp metacharacters or token-like
	// text must land verbatim, with no re-expansion.
	rw := newRewriter(manifest.ReplacementMap{
		"petor.project.name": "a$1{{ petor.project.name }}b",
	})
	if got := rw.apply("{{ petor.project.name }}"); got != "a$1{{ petor.project.name }}b" {
		t.Errorf("apply = %q", got)
	}
}

func TestSubstituteTreeRewritesFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "# {{ petor.project.name }}\n")
	writeFile(t, filepath.Join(root, "src", "main.go"), "// {{ petor.project.slug }}\npackage main\n")
	writeFile(t, filepath.Join(root, "static.txt"), "nothing here\n")

	files, err := SubstituteTree(root, manifest.ReplacementMap{
		"petor.project.name": "My App",
		"petor.project.slug": "my_app",
	})
	if err != nil {
		t.Fatalf("SubstituteTree: %v", err)
	}

	if got := readFile(t, filepath.Join(root, "README.md")); got != "# My App\n" {
		t.Errorf("README.md = %q", got)
	}
	if got := readFile(t, filepath.Join(root, "src", "main.go")); got != "// my_app\npackage main\n" {
		t.Errorf("main.go = %q", got)
	}
	if got := readFile(t, filepath.Join(root, "static.txt")); got != "nothing here\n" {
		t.Errorf("static.txt = %q", got)
	}

	want := []string{"README.md", filepath.FromSlash("src/main.go"), "static.txt"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("files = %v, want %v", files, want)
	}
}

func TestSubstituteTreeIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "{{ petor.project.slug }}\n")
	repl := manifest.ReplacementMap{"petor.project.slug": "demo"}

	if _, err := sub2(root, repl); err != nil {
		t.Fatalf("SubstituteTree: %v", err)
	}
	if got := readFile(t, filepath.Join(root, "a.txt")); got != "demo\n" {
		t.Errorf("after second pass = %q", got)
	}
}

// sub2 runs the substitution pass twice.
func sub2(root string, repl manifest.ReplacementMap) ([]string, error) {
	if _, err := SubstituteTree(root, repl); err != nil {
		return nil, err
	}
	return SubstituteTree(root, repl)
}

func TestSubstituteTreePreservesMode(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "run.sh")
	writeFile(t, script, "echo {{ petor.project.slug }}\n")
	if err := os.Chmod(script, 0o755); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if _, err := SubstituteTree(root, manifest.ReplacementMap{"petor.project.slug": "demo"}); err != nil {
		t.Fatalf("SubstituteTree: %v", err)
	}
	info, err := os.Stat(script)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}
