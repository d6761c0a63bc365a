// Package mcp implements the Model Context Protocol server, exposing Google
// Analytics reporting and administration tools to LLM clients. The catalog
// is static: every tool is registered once at startup.
package mcp

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ga-tools/analytics-mcp/internal/version"
)

const serverName = "analytics-mcp"

const instructions = `Tools for querying Google Analytics properties via the
Data API and Admin API. Start with get_account_summaries to discover which
properties are accessible, then run_report to query a property. Field names
in arguments and results use snake_case as declared in the API protos.`

// NewServer builds the MCP server with the full tool catalog registered.
func NewServer() *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version.Short(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	registerTools(s)
	return s
}

// Serve starts the MCP server over stdio for local single-user use.
// Credentials come from the environment's application default credentials;
// no per-request tokens exist on this transport.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	slog.Info("starting MCP server on stdio", "version", version.Short())
	return server.ServeStdio(NewServer())
}

func registerTools(s *server.MCPServer) {
	// Reporting (Data API)
	s.AddTool(
		mcp.NewTool("run_report",
			mcp.WithDescription(runReportDescription),
			mcp.WithString("property_id", mcp.Required(),
				mcp.Description("Google Analytics property ID: a number or a string of the form 'properties/' followed by a number")),
			mcp.WithArray("date_ranges", mcp.Required(),
				mcp.Description("Date ranges to include in the report, each with start_date and end_date"),
				mcp.Items(map[string]any{"type": "object"})),
			mcp.WithArray("dimensions", mcp.Required(),
				mcp.Description("Dimension names to include in the report"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithArray("metrics", mcp.Required(),
				mcp.Description("Metric names to include in the report"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithObject("dimension_filter",
				mcp.Description("Data API FilterExpression applied to dimensions. Don't use this for metrics; use metric_filter instead")),
			mcp.WithObject("metric_filter",
				mcp.Description("Data API FilterExpression applied to metrics. Don't use this for dimensions; use dimension_filter instead")),
			mcp.WithArray("order_bys",
				mcp.Description("Data API OrderBy objects applied to the dimensions and metrics"),
				mcp.Items(map[string]any{"type": "object"})),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of rows to return per response (positive integer <= 250000)")),
			mcp.WithNumber("offset",
				mcp.Description("Row count of the start row; the first row is row 0")),
			mcp.WithString("currency_code",
				mcp.Description("ISO4217 currency code (e.g. 'USD', 'JPY') for currency values; empty uses the property's default currency")),
			mcp.WithBoolean("return_property_quota",
				mcp.Description("Whether to include property quota in the response")),
		),
		runReport,
	)

	s.AddTool(
		mcp.NewTool("run_realtime_report",
			mcp.WithDescription(runRealtimeReportDescription),
			mcp.WithString("property_id", mcp.Required(),
				mcp.Description("Google Analytics property ID: a number or a string of the form 'properties/' followed by a number")),
			mcp.WithArray("dimensions", mcp.Required(),
				mcp.Description("Dimension names to include in the report"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithArray("metrics", mcp.Required(),
				mcp.Description("Metric names to include in the report"),
				mcp.Items(map[string]any{"type": "string"})),
			mcp.WithObject("dimension_filter",
				mcp.Description("Data API FilterExpression applied to dimensions")),
			mcp.WithObject("metric_filter",
				mcp.Description("Data API FilterExpression applied to metrics")),
			mcp.WithArray("minute_ranges",
				mcp.Description("Minute ranges of event data to read, e.g. {\"start_minutes_ago\": 29, \"end_minutes_ago\": 0}"),
				mcp.Items(map[string]any{"type": "object"})),
			mcp.WithArray("order_bys",
				mcp.Description("Data API OrderBy objects applied to the dimensions and metrics"),
				mcp.Items(map[string]any{"type": "object"})),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of rows to return per response")),
			mcp.WithBoolean("return_property_quota",
				mcp.Description("Whether to include realtime property quota in the response")),
		),
		runRealtimeReport,
	)

	// Administration (Admin API)
	s.AddTool(
		mcp.NewTool("get_account_summaries",
			mcp.WithDescription("Retrieves summaries of all Google Analytics accounts and properties accessible by the caller"),
		),
		getAccountSummaries,
	)

	s.AddTool(
		mcp.NewTool("get_property_details",
			mcp.WithDescription("Returns details about a Google Analytics property"),
			mcp.WithString("property_id", mcp.Required(),
				mcp.Description("Google Analytics property ID: a number or a string of the form 'properties/' followed by a number")),
		),
		getPropertyDetails,
	)

	s.AddTool(
		mcp.NewTool("list_google_ads_links",
			mcp.WithDescription("Returns the Google Ads links for a Google Analytics property"),
			mcp.WithString("property_id", mcp.Required(),
				mcp.Description("Google Analytics property ID: a number or a string of the form 'properties/' followed by a number")),
		),
		listGoogleAdsLinks,
	)

	s.AddTool(
		mcp.NewTool("get_custom_dimensions_and_metrics",
			mcp.WithDescription("Retrieves the custom dimensions and custom metrics defined for a Google Analytics property"),
			mcp.WithString("property_id", mcp.Required(),
				mcp.Description("Google Analytics property ID: a number or a string of the form 'properties/' followed by a number")),
		),
		getCustomDimensionsAndMetrics,
	)
}
