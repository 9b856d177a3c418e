package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kanboard-mcp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kanboard-mcp %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
