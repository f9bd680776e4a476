package manifest

// ReplacementMap maps dotted key paths (e.g. "petor.project.name") to their
// final scalar values rendered as strings. It is built once per run from a
// fully collected schema and read-only afterwards.
type ReplacementMap map[string]string

// Flatten renders every scalar leaf under node into a ReplacementMap keyed
// by its dotted path from prefix. Keys cannot collide: table keys are
// unique per level and paths are prefix-disjoint. The function is pure and
// deterministic.
func Flatten(node *Node, prefix string) ReplacementMap {
	out := make(ReplacementMap)
	flattenInto(node, prefix, out)
	return out
}

func flattenInto(node *Node, prefix string, out ReplacementMap) {
	if node.Kind != KindTable {
		// Any non-table value renders in its string form, Invalid nodes
		// included; Collect rejects those before a materialization run
		// ever flattens.
		out[prefix] = node.scalarString()
		return
	}
	for _, key := range node.Keys {
		flattenInto(node.Children[key], prefix+"."+key, out)
	}
}
