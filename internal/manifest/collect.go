package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// slugKey names the leaf that is derived instead of prompted.
const slugKey = "slug"

// FieldTypeError reports a schema leaf that is neither a scalar nor a
// table, identified by its full dotted path. It aborts collection.
type FieldTypeError struct {
	Path  string
	Value any
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("unsupported configuration value at %s (%T): only strings, numbers, and tables are allowed", e.Path, e.Value)
}

// Prompter asks the user for values over an injected reader/writer pair.
// Tests script it with a strings.Reader; the CLI hands it stdin/stderr.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter returns a Prompter reading replies from r and writing
// prompts and warnings to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), out: w}
}

// Ask prints the label and reads one trimmed reply line. A closed input
// stream yields an empty reply, which callers treat as keep-the-default.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading reply: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Warnf reports a recoverable problem to the prompt writer.
func (p *Prompter) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "warning: "+format+"\n", args...)
}

// Collect walks the schema tree depth-first and resolves every scalar leaf
// in place, prompting with the default value inline. An empty reply keeps
// the default. Leaves named "slug" are never prompted: they are derived
// from the already-collected sibling "name". Prompting is strictly
// sequential; a later derivation may read an earlier answer.
func Collect(node *Node, path string, p *Prompter) error {
	if node.Kind != KindTable {
		return &FieldTypeError{Path: path, Value: node.Raw}
	}
	for _, key := range node.Keys {
		child := node.Children[key]
		childPath := path + "." + key

		if child.Kind == KindTable {
			if err := Collect(child, childPath, p); err != nil {
				return err
			}
			continue
		}
		if child.Kind == KindInvalid {
			return &FieldTypeError{Path: childPath, Value: child.Raw}
		}

		// "name" sorts before "slug", so the sibling name is already
		// collected when the slug is derived.
		if key == slugKey {
			if name, ok := node.Children["name"]; ok && name.Kind == KindString {
				child.Kind = KindString
				child.Str = Slugify(name.Str)
			}
			continue
		}

		reply, err := p.Ask(fmt.Sprintf("%s [%s]", childPath, child.scalarString()))
		if err != nil {
			return err
		}
		if reply == "" {
			continue
		}
		applyReply(child, childPath, reply, p)
	}
	return nil
}

// applyReply stores a non-empty reply into a scalar leaf. Numeric leaves
// parse the reply; on failure the default stays and a warning is emitted.
func applyReply(child *Node, path, reply string, p *Prompter) {
	switch child.Kind {
	case KindString:
		child.Str = reply
	case KindInt, KindFloat:
		if i, err := strconv.ParseInt(reply, 10, 64); err == nil {
			child.Kind = KindInt
			child.Int = i
			return
		}
		if f, err := strconv.ParseFloat(reply, 64); err == nil {
			child.Kind = KindFloat
			child.Float = f
			return
		}
		p.Warnf("invalid number %q for %s, keeping %s", reply, path, child.scalarString())
	}
}
