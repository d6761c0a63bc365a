// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive for optional parameters: an LLM omitting an
// optional argument or sending it in an unexpected shape gets the default
// rather than a cryptic type error. Required, contract-bearing arguments
// (property_id, pass-through filter payloads) are validated strictly by the
// request builders instead.

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// arguments returns the raw argument mapping of a tool call. A missing or
// non-mapping argument payload yields an empty map so lookups are safe.
func arguments(req mcp.CallToolRequest) map[string]any {
	if args, ok := req.Params.Arguments.(map[string]any); ok {
		return args
	}
	return map[string]any{}
}

// getString extracts a string argument, returning def when absent or not a
// string.
func getString(args map[string]any, name, def string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return def
}

// getBool extracts a boolean argument. JSON booleans decode as Go bool, so a
// type assertion suffices.
func getBool(args map[string]any, name string, def bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt64 extracts an integer argument. JSON numbers decode as float64, so
// the assertion goes through float64 first.
func getInt64(args map[string]any, name string, def int64) int64 {
	if v, ok := args[name].(float64); ok {
		return int64(v)
	}
	return def
}

// getStrings extracts a string-array argument. Non-string elements are
// skipped. Returns nil when the argument is absent.
func getStrings(args map[string]any, name string) []string {
	arr, ok := args[name].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// getList extracts an array argument with elements of any shape, for
// pass-through payloads decoded structurally by the request builders.
func getList(args map[string]any, name string) []any {
	arr, _ := args[name].([]any)
	return arr
}

// getMap extracts an object argument, for pass-through payloads. Returns nil
// when absent or empty.
func getMap(args map[string]any, name string) map[string]any {
	m, ok := args[name].(map[string]any)
	if !ok || len(m) == 0 {
		return nil
	}
	return m
}

// textResult wraps pre-rendered JSON text in an MCP tool result, converting
// a rendering failure into a tool error the LLM can act on.
func textResult(text string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
