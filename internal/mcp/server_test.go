package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpc drives the server through its JSON-RPC entry point, the same path both
// transports use.
func rpc(t *testing.T, s *server.MCPServer, body string) string {
	t.Helper()
	resp := s.HandleMessage(context.Background(), json.RawMessage(body))
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(out)
}

func TestNewServer_ToolCatalog(t *testing.T) {
	s := NewServer()

	rpc(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	out := rpc(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	for _, tool := range []string{
		"run_report",
		"run_realtime_report",
		"get_account_summaries",
		"get_property_details",
		"list_google_ads_links",
		"get_custom_dimensions_and_metrics",
	} {
		assert.Contains(t, out, `"`+tool+`"`, "catalog should register %s", tool)
	}
}

func TestNewServer_UnknownTool(t *testing.T) {
	s := NewServer()

	rpc(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	out := rpc(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"no_such_tool","arguments":{}}}`)

	assert.Contains(t, out, "error")
	assert.NotContains(t, out, `"result"`)
}

func TestNewServer_InvalidPropertyReportedToCaller(t *testing.T) {
	s := NewServer()

	rpc(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`)
	out := rpc(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"run_report","arguments":{"property_id":"properties/abc","dimensions":["city"],"metrics":["activeUsers"],"date_ranges":[{"start_date":"2024-01-01","end_date":"2024-01-31"}]}}}`)

	// Tool-level error result, not a protocol failure.
	assert.Contains(t, out, "invalid property ID")
}
