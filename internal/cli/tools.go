package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Fuabioo/mcpd/internal/registry"
	"github.com/Fuabioo/mcpd/internal/tools"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server exposes",
	Long: `Lists the tool catalog the MCP server advertises to clients.

Outputs a table by default, or JSON with the --json flag.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	reg, err := buildCatalog()
	if err != nil {
		return err
	}

	descriptors := reg.Tools()

	if flagJSON {
		return outputJSON(map[string]interface{}{"tools": descriptors})
	}

	if len(descriptors) == 0 {
		if !flagQuiet {
			fmt.Println("No tools registered")
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tARGUMENTS\tDESCRIPTION")

	for _, d := range descriptors {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, formatFields(d.InputSchema.Fields()), d.Description)
	}

	w.Flush()
	return nil
}

// buildCatalog assembles the same registry the server uses, without
// touching the transport.
func buildCatalog() (*registry.Registry, error) {
	reg := registry.New()
	if err := tools.Register(reg); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}

// formatFields renders a schema's fields as "name:type" pairs, marking
// required fields with an asterisk.
func formatFields(fields []registry.Field) string {
	if len(fields) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		part := fmt.Sprintf("%s:%s", f.Name, f.Type)
		if f.Required {
			part += "*"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
