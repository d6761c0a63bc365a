// clients.go constructs Analytics API clients for a single tool call.
//
// Clients are built fresh per call because the credentials differ per call:
// the resolver in internal/auth binds either the caller's bearer token or
// application default credentials to the client at construction time.
// Callers own the returned client and must Close it.

package ga

import (
	"context"

	admin "cloud.google.com/go/analytics/admin/apiv1alpha"
	data "cloud.google.com/go/analytics/data/apiv1beta"

	"github.com/ga-tools/analytics-mcp/internal/auth"
)

// NewDataClient returns an Analytics Data API client authenticated for the
// current call.
func NewDataClient(ctx context.Context) (*data.BetaAnalyticsDataClient, error) {
	opts, err := auth.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}
	return data.NewBetaAnalyticsDataClient(ctx, opts...)
}

// NewAdminClient returns an Analytics Admin API client authenticated for the
// current call.
func NewAdminClient(ctx context.Context) (*admin.AnalyticsAdminClient, error) {
	opts, err := auth.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}
	return admin.NewAnalyticsAdminClient(ctx, opts...)
}
