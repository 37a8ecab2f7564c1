package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SamirAliWebDev/Todo/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI
assistants. The server manages an in-memory task list for the lifetime of
the session and communicates via stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appConfig.MCP.Enabled {
			return fmt.Errorf("MCP server is disabled in the config")
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Starting MCP server (stdio). Press Ctrl+C to stop.")

		server := mcp.NewServer(taskStore, nil)
		if err := server.Start(context.Background()); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
