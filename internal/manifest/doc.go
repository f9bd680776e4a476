// Package manifest models the template configuration document (petor.toml):
// the nested Node tree parsed from it, interactive collection of values,
// flattening into the dotted-key replacement map, slug derivation, and
// schema validation. The materializer in internal/scaffold drives these
// pieces in order; this package holds all the data transformation logic.
package manifest
