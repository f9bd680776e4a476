// Package scaffold materializes projects from templates. It replicates a
// template's project subtree into a fresh destination, collects the
// configuration interactively via internal/manifest, and rewrites every
// copied file by substituting {{ dotted.key }} tokens. It also backs the
// non-interactive generate mode, which copies a template verbatim.
package scaffold
