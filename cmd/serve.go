// serve.go implements the "analytics-mcp serve" command.
//
// Unlike version, serve blocks indefinitely handling MCP requests. Stdio is
// the default transport; --http (or MCP_SERVER_MODE=http, the contract the
// original container deployments used) switches to the HTTP front door.

package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ga-tools/analytics-mcp/internal/config"
	"github.com/ga-tools/analytics-mcp/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var (
		httpMode bool
		addr     string
		allowADC bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server over stdio for local LLM integration, or over HTTP
for multi-user deployments.

Stdio mode authenticates with application default credentials. HTTP mode
requires an 'Authorization: Bearer <token>' header on every request unless
--allow-default-credentials is set; listen address comes from --addr, the
PORT/HOST environment variables, or ~/.analytics-mcp/config.yaml.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !httpMode && !strings.EqualFold(os.Getenv("MCP_SERVER_MODE"), "http") {
				return mcp.Serve()
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return mcp.ServeHTTP(ctx, mcp.HTTPOptions{
				Addr:                    addr,
				AllowDefaultCredentials: allowADC || cfg.Auth.AllowDefaultCredentials,
			})
		},
	}

	cmd.Flags().BoolVar(&httpMode, "http", false, "serve over HTTP instead of stdio")
	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address (default from config or PORT/HOST)")
	cmd.Flags().BoolVar(&allowADC, "allow-default-credentials", false,
		"let HTTP requests without a bearer token fall back to application default credentials")

	return cmd
}
