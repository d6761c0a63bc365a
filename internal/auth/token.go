// token.go carries the per-request bearer token through the call.
//
// The token rides on the context.Context of the inbound tool call rather
// than living in a mutable slot. Each logical call gets its own derived
// context, so concurrent calls cannot observe each other's tokens, the
// token stays attached to the call across network round-trips, and it is
// discarded with the request context on every exit path - success, error
// or cancellation. The HTTP transport is the sole writer; stdio mode never
// sets a token and always resolves default credentials.

package auth

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the caller's bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token returns the bearer token for the current call, if one was set.
func Token(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
