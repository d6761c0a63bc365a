// tools_admin.go implements the Admin API tools: account discovery and
// property metadata. List responses are paginated through to completion
// before rendering, so the LLM always sees the full result set.

package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"cloud.google.com/go/analytics/admin/apiv1alpha/adminpb"
	"github.com/mark3labs/mcp-go/mcp"
	"google.golang.org/api/iterator"

	"github.com/ga-tools/analytics-mcp/internal/audit"
	"github.com/ga-tools/analytics-mcp/internal/ga"
)

// getAccountSummaries handles get_account_summaries tool calls.
func getAccountSummaries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	l := audit.Event("mcp:get_account_summaries", "list")

	client, err := ga.NewAdminClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	var summaries []*adminpb.AccountSummary
	it := client.ListAccountSummaries(ctx, &adminpb.ListAccountSummariesRequest{})
	for {
		summary, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			l.Write(err)
			return mcp.NewToolResultError(upstreamError(err)), nil
		}
		summaries = append(summaries, summary)
	}

	l.Detail("count", len(summaries)).Write(nil)
	return textResult(ga.ProtoSliceJSON(summaries))
}

// getPropertyDetails handles get_property_details tool calls.
func getPropertyDetails(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	property, err := ga.PropertyResourceName(arguments(req)["property_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l := audit.Event("mcp:get_property_details", "get").Property(property)

	client, err := ga.NewAdminClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	details, err := client.GetProperty(ctx, &adminpb.GetPropertyRequest{Name: property})
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(upstreamError(err)), nil
	}

	l.Write(nil)
	return textResult(ga.ProtoJSON(details))
}

// listGoogleAdsLinks handles list_google_ads_links tool calls.
func listGoogleAdsLinks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	property, err := ga.PropertyResourceName(arguments(req)["property_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l := audit.Event("mcp:list_google_ads_links", "list").Property(property)

	client, err := ga.NewAdminClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	var links []*adminpb.GoogleAdsLink
	it := client.ListGoogleAdsLinks(ctx, &adminpb.ListGoogleAdsLinksRequest{Parent: property})
	for {
		link, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			l.Write(err)
			return mcp.NewToolResultError(upstreamError(err)), nil
		}
		links = append(links, link)
	}

	l.Detail("count", len(links)).Write(nil)
	return textResult(ga.ProtoSliceJSON(links))
}

// getCustomDimensionsAndMetrics handles get_custom_dimensions_and_metrics
// tool calls, combining the custom dimension and custom metric listings
// into one result.
func getCustomDimensionsAndMetrics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	property, err := ga.PropertyResourceName(arguments(req)["property_id"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l := audit.Event("mcp:get_custom_dimensions_and_metrics", "list").Property(property)

	client, err := ga.NewAdminClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	var dimensions []*adminpb.CustomDimension
	dit := client.ListCustomDimensions(ctx, &adminpb.ListCustomDimensionsRequest{Parent: property})
	for {
		dim, err := dit.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			l.Write(err)
			return mcp.NewToolResultError(upstreamError(err)), nil
		}
		dimensions = append(dimensions, dim)
	}

	var metrics []*adminpb.CustomMetric
	mit := client.ListCustomMetrics(ctx, &adminpb.ListCustomMetricsRequest{Parent: property})
	for {
		metric, err := mit.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			l.Write(err)
			return mcp.NewToolResultError(upstreamError(err)), nil
		}
		metrics = append(metrics, metric)
	}

	dimJSON, err := ga.ProtoSliceJSON(dimensions)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	metricJSON, err := ga.ProtoSliceJSON(metrics)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	combined, err := json.MarshalIndent(map[string]json.RawMessage{
		"custom_dimensions": json.RawMessage(dimJSON),
		"custom_metrics":    json.RawMessage(metricJSON),
	}, "", "  ")

	l.Detail("dimensions", len(dimensions)).Detail("metrics", len(metrics)).Write(err)
	return textResult(string(combined), err)
}
