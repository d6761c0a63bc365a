// tools_reporting.go implements the Data API reporting tools.
//
// Each handler assembles the outbound request from the tool arguments,
// builds a Data API client with the current call's credentials, runs the
// request, and returns the response as JSON with proto field names
// preserved. Argument validation is limited to the property identifier and
// structural decoding of pass-through payloads; whether a dimension, metric
// or filter field reference is valid for the property is the Data API's
// call, and its errors are surfaced verbatim.

package mcp

import (
	"context"

	"cloud.google.com/go/analytics/data/apiv1beta/datapb"
	"github.com/mark3labs/mcp-go/mcp"
	"google.golang.org/grpc/status"

	"github.com/ga-tools/analytics-mcp/internal/audit"
	"github.com/ga-tools/analytics-mcp/internal/ga"
)

// upstreamError renders an Analytics API failure for the tool caller,
// keeping the upstream status and message intact.
func upstreamError(err error) string {
	if s, ok := status.FromError(err); ok {
		return s.Code().String() + ": " + s.Message()
	}
	return err.Error()
}

// runReport handles run_report tool calls.
func runReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	request, err := buildRunReportRequest(arguments(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l := audit.Event("mcp:run_report", "report").
		Property(request.GetProperty()).
		Detail("dimensions", len(request.GetDimensions())).
		Detail("metrics", len(request.GetMetrics()))

	client, err := ga.NewDataClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	resp, err := client.RunReport(ctx, request)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(upstreamError(err)), nil
	}

	l.Detail("row_count", resp.GetRowCount()).Write(nil)
	return textResult(ga.ProtoJSON(resp))
}

// runRealtimeReport handles run_realtime_report tool calls.
func runRealtimeReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	request, err := buildRunRealtimeReportRequest(arguments(req))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	l := audit.Event("mcp:run_realtime_report", "report").Property(request.GetProperty())

	client, err := ga.NewDataClient(ctx)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	resp, err := client.RunRealtimeReport(ctx, request)
	if err != nil {
		l.Write(err)
		return mcp.NewToolResultError(upstreamError(err)), nil
	}

	l.Detail("row_count", resp.GetRowCount()).Write(nil)
	return textResult(ga.ProtoJSON(resp))
}

// buildRunReportRequest assembles a RunReportRequest from tool arguments.
// Optional fields are applied only when present and non-default.
func buildRunReportRequest(args map[string]any) (*datapb.RunReportRequest, error) {
	property, err := ga.PropertyResourceName(args["property_id"])
	if err != nil {
		return nil, err
	}

	request := &datapb.RunReportRequest{
		Property:            property,
		ReturnPropertyQuota: getBool(args, "return_property_quota", false),
	}

	for _, name := range getStrings(args, "dimensions") {
		request.Dimensions = append(request.Dimensions, &datapb.Dimension{Name: name})
	}
	for _, name := range getStrings(args, "metrics") {
		request.Metrics = append(request.Metrics, &datapb.Metric{Name: name})
	}

	for _, dr := range getList(args, "date_ranges") {
		out := &datapb.DateRange{}
		if err := ga.DecodeMessage(dr, out); err != nil {
			return nil, err
		}
		request.DateRanges = append(request.DateRanges, out)
	}

	if m := getMap(args, "dimension_filter"); m != nil {
		out := &datapb.FilterExpression{}
		if err := ga.DecodeMessage(m, out); err != nil {
			return nil, err
		}
		request.DimensionFilter = out
	}
	if m := getMap(args, "metric_filter"); m != nil {
		out := &datapb.FilterExpression{}
		if err := ga.DecodeMessage(m, out); err != nil {
			return nil, err
		}
		request.MetricFilter = out
	}

	for _, ob := range getList(args, "order_bys") {
		out := &datapb.OrderBy{}
		if err := ga.DecodeMessage(ob, out); err != nil {
			return nil, err
		}
		request.OrderBys = append(request.OrderBys, out)
	}

	if limit := getInt64(args, "limit", 0); limit != 0 {
		request.Limit = limit
	}
	if offset := getInt64(args, "offset", 0); offset != 0 {
		request.Offset = offset
	}
	if currency := getString(args, "currency_code", ""); currency != "" {
		request.CurrencyCode = currency
	}

	return request, nil
}

// buildRunRealtimeReportRequest assembles a RunRealtimeReportRequest from
// tool arguments.
func buildRunRealtimeReportRequest(args map[string]any) (*datapb.RunRealtimeReportRequest, error) {
	property, err := ga.PropertyResourceName(args["property_id"])
	if err != nil {
		return nil, err
	}

	request := &datapb.RunRealtimeReportRequest{
		Property:            property,
		ReturnPropertyQuota: getBool(args, "return_property_quota", false),
	}

	for _, name := range getStrings(args, "dimensions") {
		request.Dimensions = append(request.Dimensions, &datapb.Dimension{Name: name})
	}
	for _, name := range getStrings(args, "metrics") {
		request.Metrics = append(request.Metrics, &datapb.Metric{Name: name})
	}

	if m := getMap(args, "dimension_filter"); m != nil {
		out := &datapb.FilterExpression{}
		if err := ga.DecodeMessage(m, out); err != nil {
			return nil, err
		}
		request.DimensionFilter = out
	}
	if m := getMap(args, "metric_filter"); m != nil {
		out := &datapb.FilterExpression{}
		if err := ga.DecodeMessage(m, out); err != nil {
			return nil, err
		}
		request.MetricFilter = out
	}

	for _, mr := range getList(args, "minute_ranges") {
		out := &datapb.MinuteRange{}
		if err := ga.DecodeMessage(mr, out); err != nil {
			return nil, err
		}
		request.MinuteRanges = append(request.MinuteRanges, out)
	}

	for _, ob := range getList(args, "order_bys") {
		out := &datapb.OrderBy{}
		if err := ga.DecodeMessage(ob, out); err != nil {
			return nil, err
		}
		request.OrderBys = append(request.OrderBys, out)
	}

	if limit := getInt64(args, "limit", 0); limit != 0 {
		request.Limit = limit
	}

	return request, nil
}
