// hints.go holds the argument-format hints embedded in the run_report tool
// descriptions. LLMs assemble filter expressions and order-bys from these
// examples; the Data API itself validates the field references.

package mcp

const runReportDescription = `Runs a Google Analytics Data API report.

Note that the Data API reference docs use camelCase field names, but field
names passed to this tool should be in snake_case as declared in the
protocol buffer definitions.

## Hints for arguments

### Hints for ` + "`dimensions`" + ` and ` + "`metrics`" + `

Use standard dimensions and metrics from the Data API schema
(https://developers.google.com/analytics/devguides/reporting/data/v1/api-schema),
which are available to every property, or custom definitions for the
property. Use the get_custom_dimensions_and_metrics tool to retrieve the
custom dimensions and metrics for a property.

### Hints for ` + "`date_ranges`" + `

Each date range is an object with start_date and end_date in ISO format
(YYYY-MM-DD) or the relative forms "today", "yesterday", and "NdaysAgo"
(e.g. "7daysAgo"). An optional name labels the range in the response.

Example: last 30 days plus the previous 30 days:

  [
    {"start_date": "30daysAgo", "end_date": "today", "name": "last_30_days"},
    {"start_date": "60daysAgo", "end_date": "31daysAgo", "name": "previous_30_days"}
  ]

### Hints for ` + "`dimension_filter`" + ` and ` + "`metric_filter`" + `

Filters are Data API FilterExpression objects. The field_name in a
dimension_filter must be a dimension; the field_name in a metric_filter must
be a metric.

Example: dimensions where city is "Tokyo":

  {"filter": {"field_name": "city", "string_filter": {"value": "Tokyo"}}}

Example: combine conditions with and_group / or_group:

  {
    "and_group": {
      "expressions": [
        {"filter": {"field_name": "city", "string_filter": {"value": "Tokyo"}}},
        {"filter": {"field_name": "platform", "in_list_filter": {"values": ["web", "iOS"]}}}
      ]
    }
  }

Example: numeric comparison on a metric:

  {"filter": {"field_name": "activeUsers", "numeric_filter": {"operation": "GREATER_THAN", "value": {"int64_value": "100"}}}}

### Hints for ` + "`order_bys`" + `

Each entry sorts by a dimension or metric, ascending by default.

Example: descending by the activeUsers metric, then ascending by city:

  [
    {"metric": {"metric_name": "activeUsers"}, "desc": true},
    {"dimension": {"dimension_name": "city"}}
  ]
`

const runRealtimeReportDescription = `Runs a Google Analytics Data API realtime report, covering event data from
the last 30 minutes (up to 60 minutes for properties with Google Analytics
360). Accepts only realtime dimensions and metrics
(https://developers.google.com/analytics/devguides/reporting/data/v1/realtime-api-schema).
Field names use snake_case as declared in the protocol buffer definitions.

minute_ranges entries take start_minutes_ago and end_minutes_ago counted
back from now, e.g. {"start_minutes_ago": 29, "end_minutes_ago": 0} for the
last half hour.`
