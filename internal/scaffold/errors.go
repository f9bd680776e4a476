package scaffold

import "errors"

var (
	// ErrDestinationExists reports a destination directory that already
	// exists; materialization never overwrites.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrManifestMissing reports a template without a petor.toml.
	ErrManifestMissing = errors.New("template manifest not found")

	// ErrProjectTreeMissing reports a template without the project
	// subtree directory.
	ErrProjectTreeMissing = errors.New("template project subtree not found")
)
