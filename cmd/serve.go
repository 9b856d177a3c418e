package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/kanboardtools/kanboard-mcp/internal/config"
	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants like Claude
Code and Cursor can work with your Kanboard instance.

The server runs over stdin/stdout and provides tools for projects, tasks,
boards, columns, categories, comments, users, links, subtasks, tags and file
attachments, plus diagnostics (testConnection, getServerInfo, getConfigInfo).

Example usage with Claude Code:
  kanboard-mcp serve

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context) error {
	// stdout must stay pure JSON-RPC for the stdio transport; every
	// diagnostic line goes to stderr.
	fmt.Fprintln(os.Stderr, "Kanboard MCP server starting...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if verbose {
		cfg.Debug = true
	}

	client, err := kanboard.New(cfg)
	if err != nil {
		return fmt.Errorf("create Kanboard client: %w", err)
	}

	// Probe the endpoint once so a misconfigured token shows up in the logs
	// immediately. The server still starts on failure: the agent gets the
	// same error through the envelope of whichever tool it calls first.
	if status := client.TestConnection(ctx); status.Connected {
		fmt.Fprintf(os.Stderr, "✓ Connected to %s as %s\n", cfg.URL, status.Username)
	} else {
		fmt.Fprintf(os.Stderr, "⚠ Kanboard not reachable: %s\n", status.Error)
	}

	impl := &mcp.Implementation{
		Name:    "kanboard-mcp",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	registerProjectTools(server, client)
	registerTaskTools(server, client)
	registerBoardTools(server, client)
	registerCommentTools(server, client)
	registerUserTools(server, client)
	registerLinkTools(server, client)
	registerSubtaskTools(server, client)
	registerTagTools(server, client)
	registerFileTools(server, client)
	registerDiagnosticTools(server, client)

	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
