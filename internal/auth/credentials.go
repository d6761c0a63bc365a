// Package auth resolves Google API credentials for each tool call.
//
// Two sources, in order: a per-request bearer token carried on the call's
// context (multi-user HTTP mode), or Application Default Credentials from
// the hosting environment (single-user stdio mode). Both are scoped to the
// read-only Analytics scope; the server never requests write access.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/ga-tools/analytics-mcp/internal/version"
)

// ReadOnlyScope is the OAuth scope requested for the Analytics Data and
// Admin APIs. The server only ever reads report and account data.
const ReadOnlyScope = "https://www.googleapis.com/auth/analytics.readonly"

// ErrNoCredentials is returned when a call carries no bearer token and no
// application default credentials can be discovered. Callers surface this
// to the tool invoker; it is never retried.
var ErrNoCredentials = errors.New("no credentials available: supply a bearer token or configure application default credentials")

// findDefault discovers application default credentials.
// Tests replace this to exercise the fallback paths without a GCP environment.
var findDefault = google.FindDefaultCredentials

// ClientOptions resolves credentials for the current call and returns the
// client options every outbound Analytics API client is built with.
//
// A bearer token on the context wins; otherwise application default
// credentials are discovered fresh. Discovery failure wraps ErrNoCredentials.
func ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	opts := []option.ClientOption{
		option.WithUserAgent(version.UserAgent()),
		option.WithScopes(ReadOnlyScope),
	}

	if token, ok := Token(ctx); ok {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		})
		return append(opts, option.WithTokenSource(src)), nil
	}

	creds, err := findDefault(ctx, ReadOnlyScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	return append(opts, option.WithCredentials(creds)), nil
}
