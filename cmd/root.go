// root.go defines the root command and CLI execution entry point.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ga-tools/analytics-mcp/internal/audit"
)

var rootCmd = &cobra.Command{
	Use:   "analytics-mcp",
	Short: "MCP server for the Google Analytics Data and Admin APIs",
	Long: `An MCP (Model Context Protocol) server exposing Google Analytics reporting
and administration tools to LLM clients.

Runs over stdio for local single-user use (authenticating with application
default credentials) or over HTTP for multi-user deployments where each
request carries its own OAuth bearer token.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command and handles process lifecycle.
// Opens the audit log, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := audit.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer audit.Close()

	if err := rootCmd.Execute(); err != nil {
		audit.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
