package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables diagnostic output on stderr.
	verbose bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kanboard-mcp",
	Short: "MCP server exposing the Kanboard API to AI tools",
	Long: `kanboard-mcp bridges a Kanboard instance to AI assistants through the
Model Context Protocol (MCP). It exposes projects, tasks, comments, users,
links, subtasks, tags and file attachments as MCP tools, each forwarding to
the Kanboard JSON-RPC API through one authenticated, retrying client.

Configuration comes from environment variables (KANBOARD_URL and
KANBOARD_API_TOKEN are required), an optional .env file, or a config file.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.kanboard-mcp.yaml or $HOME/.kanboard-mcp.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
