package cli

import (
	"fmt"

	"github.com/petor-dev/petor/internal/catalog"
	"github.com/petor-dev/petor/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <template> [dest]",
	Short: "Copy a template verbatim, tokens intact",
	Long: `Copy a catalog template's project tree without collecting configuration
or substituting tokens. Useful as a starting point for authoring a new
template or inspecting one.

Example:
  petor generate web-service ./my-template`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tpl, err := catalog.Resolve(args[0])
	if err != nil {
		return err
	}

	dest := tpl.Name
	if len(args) == 2 {
		dest = args[1]
	}

	result, err := scaffold.Generate(tpl, dest)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s at %s/\n", tpl.Name, result.Destination)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	return nil
}
