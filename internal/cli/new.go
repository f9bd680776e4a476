package cli

import (
	"fmt"

	"github.com/petor-dev/petor/internal/catalog"
	"github.com/petor-dev/petor/internal/scaffold"
	"github.com/petor-dev/petor/internal/userdata"
	"github.com/spf13/cobra"
)

var newRepo string

func init() {
	newCmd.Flags().StringVar(&newRepo, "repo", "", "Clone the template from a git repository URL")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [template]",
	Short: "Create a new project from a template",
	Long: `Create a new project directory from a template.

The template comes from the local catalog by name, or from a remote git
repository with --repo. Configuration is collected interactively from the
template's petor.toml, and the project lands in ./<slug>.

Examples:
  petor new web-service
  petor new --repo https://github.com/acme/starter-api.git`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && newRepo != "" {
		return fmt.Errorf("pass a template name or --repo, not both")
	}
	if len(args) == 0 && newRepo == "" {
		return fmt.Errorf("template name or --repo is required")
	}

	if err := userdata.EnsureLayout(); err != nil {
		return fmt.Errorf("preparing user data directories: %w", err)
	}

	var (
		tpl *catalog.Template
		err error
	)
	if newRepo != "" {
		tpl, err = catalog.CloneRemote(newRepo)
	} else {
		tpl, err = catalog.Resolve(args[0])
	}
	if err != nil {
		return err
	}

	result, err := scaffold.Materialize(tpl, scaffold.Options{
		Version: buildVersion,
		In:      cmd.InOrStdin(),
		Out:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project at %s/\n", result.Destination)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	return nil
}
