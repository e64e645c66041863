package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Fuabioo/mcpd/internal/registry"
	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the prompts the server exposes",
	Long: `Lists the prompt catalog the MCP server advertises to clients.

Outputs a table by default, or JSON with the --json flag.`,
	Args: cobra.NoArgs,
	RunE: runPrompts,
}

func runPrompts(cmd *cobra.Command, args []string) error {
	reg, err := buildCatalog()
	if err != nil {
		return err
	}

	descriptors := reg.Prompts()

	if flagJSON {
		return outputJSON(map[string]interface{}{"prompts": descriptors})
	}

	if len(descriptors) == 0 {
		if !flagQuiet {
			fmt.Println("No prompts registered")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tARGUMENTS\tDESCRIPTION")

	for _, d := range descriptors {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, formatArguments(d.Arguments), d.Description)
	}

	w.Flush()
	return nil
}

// formatArguments renders prompt arguments, marking required ones with an
// asterisk.
func formatArguments(args []registry.PromptArgument) string {
	if len(args) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(args))
	for _, a := range args {
		part := a.Name
		if a.Required {
			part += "*"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
