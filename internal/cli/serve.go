package cli

import (
	"fmt"
	"os"

	"github.com/Fuabioo/mcpd/internal/errors"
	"github.com/Fuabioo/mcpd/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server on stdio",
	Long: `Starts the Model Context Protocol (MCP) server on stdio.

This command is used by MCP clients (Claude Desktop, etc.) to communicate
with mcpd. It should not be run directly by users.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout is the wire; serving to a terminal would print raw frames at
	// a human and read frames from a keyboard.
	if isTerminal(os.Stdout) {
		err := errors.StartupFailed(fmt.Errorf("stdout is a terminal; mcpd serve expects an MCP client on stdio"))
		printFatalEnvelope(-1, err)
		return err
	}
	if isTerminal(os.Stdin) && !flagQuiet {
		fmt.Fprintln(os.Stderr, "mcpd serve reads newline-delimited JSON-RPC from stdin; expecting an MCP client, not a terminal")
	}

	srv, err := mcp.NewServer()
	if err != nil {
		printFatalEnvelope(-1, err)
		return err
	}

	if err := srv.Serve(cmd.Context()); err != nil {
		printFatalEnvelope(-2, err)
		return err
	}
	return nil
}
