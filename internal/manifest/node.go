package manifest

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind discriminates the variants of a configuration Node.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindTable
	KindInvalid
)

// Node is one value in a template configuration tree: a string or numeric
// scalar, a table of named children, or Invalid for anything else the TOML
// source can express (booleans, arrays, datetimes). Dispatching on Kind at
// every recursion site keeps the traversal exhaustive.
type Node struct {
	Kind     Kind
	Str      string
	Int      int64
	Float    float64
	Keys     []string // child visit order for tables, sorted for determinism
	Children map[string]*Node
	Raw      any // original decoded value, kept for Invalid diagnostics
}

// nodeFrom converts a value decoded from TOML into a Node. Table keys are
// sorted so traversal, prompting, and flattening are deterministic.
func nodeFrom(v any) *Node {
	switch val := v.(type) {
	case string:
		return &Node{Kind: KindString, Str: val}
	case int64:
		return &Node{Kind: KindInt, Int: val}
	case int:
		return &Node{Kind: KindInt, Int: int64(val)}
	case float64:
		return &Node{Kind: KindFloat, Float: val}
	case map[string]any:
		n := &Node{
			Kind:     KindTable,
			Keys:     make([]string, 0, len(val)),
			Children: make(map[string]*Node, len(val)),
		}
		for k := range val {
			n.Keys = append(n.Keys, k)
		}
		sort.Strings(n.Keys)
		for _, k := range n.Keys {
			n.Children[k] = nodeFrom(val[k])
		}
		return n
	default:
		return &Node{Kind: KindInvalid, Raw: v}
	}
}

// Lookup walks the given key path through nested tables. The second return
// is false if any segment is missing or crosses a non-table node.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n
	for _, key := range path {
		if cur.Kind != KindTable {
			return nil, false
		}
		child, ok := cur.Children[key]
		if !ok {
			return nil, false
		}
		cur = child
	}
	return cur, true
}

// scalarString renders a scalar node in its replacement form: strings
// verbatim, numbers in standard decimal notation.
func (n *Node) scalarString() string {
	switch n.Kind {
	case KindString:
		return n.Str
	case KindInt:
		return strconv.FormatInt(n.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	default:
		return fmt.Sprint(n.Raw)
	}
}
