package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/petor-dev/petor/internal/catalog"
	"github.com/petor-dev/petor/internal/manifest"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates in the local catalog",
	Long:  `List the templates available under the local catalog directory.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a catalog template for display.
type listEntry struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	templates, err := catalog.List()
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	if len(templates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates in the catalog yet.")
		return nil
	}

	entries := make([]listEntry, 0, len(templates))
	for _, tpl := range templates {
		entry := listEntry{Name: tpl.Name}

		// Metadata is best effort; a broken manifest still lists by name.
		doc, err := manifest.ParseFile(tpl.ManifestPath())
		if err == nil {
			entry.Version = doc.Meta.Version
			entry.Description = doc.Meta.Description
		}
		entries = append(entries, entry)
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		description := e.Description
		if description == "" {
			description = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, version, description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
