package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the manifest file expected at every template root.
	FileName = "petor.toml"

	// RootNamespace is the fixed root key of the configuration schema and
	// the prefix of every replacement key.
	RootNamespace = "petor"

	// MetaTable is the optional metadata table; it describes the template
	// itself and is excluded from the configuration schema.
	MetaTable = "template"
)

// TemplateMeta mirrors the optional [template] table of petor.toml.
type TemplateMeta struct {
	Description string `toml:"description"`
	Version     string `toml:"version"`
	Requires    string `toml:"requires"`
}

// Document is a parsed petor.toml: the configuration schema tree rooted at
// the petor table, plus template metadata.
type Document struct {
	Schema *Node
	Meta   TemplateMeta
}

// Parse decodes petor.toml bytes into a Document. The petor table must be
// present; the template table is optional.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	rootVal, ok := raw[RootNamespace]
	if !ok {
		return nil, fmt.Errorf("manifest missing required %q table", RootNamespace)
	}
	rootTable, ok := rootVal.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("manifest %q key must be a table", RootNamespace)
	}

	doc := &Document{Schema: nodeFrom(rootTable)}

	var meta struct {
		Template TemplateMeta `toml:"template"`
	}
	if err := toml.Unmarshal(data, &meta); err == nil {
		doc.Meta = meta.Template
	}

	return doc, nil
}

// ParseFile reads and parses a petor.toml file.
func ParseFile(path string) (*Document, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ProjectSlug returns the resolved petor.project.slug value.
func (d *Document) ProjectSlug() (string, error) {
	slug, ok := d.Schema.Lookup("project", "slug")
	if !ok || slug.Kind != KindString || slug.Str == "" {
		return "", fmt.Errorf("manifest has no usable %s.project.slug value", RootNamespace)
	}
	return slug.Str, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
