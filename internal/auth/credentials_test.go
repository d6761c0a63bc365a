package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2/google"
)

// stubADC replaces the default-credential lookup for the test's duration.
func stubADC(t *testing.T, fn func(ctx context.Context, scopes ...string) (*google.Credentials, error)) {
	t.Helper()
	orig := findDefault
	findDefault = fn
	t.Cleanup(func() { findDefault = orig })
}

func TestClientOptions_BearerToken(t *testing.T) {
	// A per-call token must never trigger default-credential discovery.
	stubADC(t, func(context.Context, ...string) (*google.Credentials, error) {
		t.Fatal("default credentials resolved despite per-call token")
		return nil, nil
	})

	ctx := WithToken(context.Background(), "ya29.user-token")
	opts, err := ClientOptions(ctx)
	require.NoError(t, err)
	assert.Len(t, opts, 3) // user agent, scope, token source
}

func TestClientOptions_DefaultCredentials(t *testing.T) {
	var gotScopes []string
	stubADC(t, func(_ context.Context, scopes ...string) (*google.Credentials, error) {
		gotScopes = scopes
		return &google.Credentials{}, nil
	})

	opts, err := ClientOptions(context.Background())
	require.NoError(t, err)
	assert.Len(t, opts, 3)
	assert.Equal(t, []string{ReadOnlyScope}, gotScopes)
}

func TestClientOptions_NoCredentials(t *testing.T) {
	stubADC(t, func(context.Context, ...string) (*google.Credentials, error) {
		return nil, errors.New("could not find default credentials")
	})

	_, err := ClientOptions(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

// A token left over from a prior call's context must not taint a fresh call.
func TestClientOptions_FreshCallFallsBack(t *testing.T) {
	called := false
	stubADC(t, func(context.Context, ...string) (*google.Credentials, error) {
		called = true
		return &google.Credentials{}, nil
	})

	// First call uses a token.
	_, err := ClientOptions(WithToken(context.Background(), "tokA"))
	require.NoError(t, err)
	assert.False(t, called)

	// Second call has no token and must fall back to defaults.
	_, err = ClientOptions(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}
