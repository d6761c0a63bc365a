package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		_, ok := Token(context.Background())
		assert.False(t, ok)
	})

	t.Run("set and read", func(t *testing.T) {
		ctx := WithToken(context.Background(), "ya29.secret")
		token, ok := Token(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ya29.secret", token)
	})

	t.Run("empty token reads as unset", func(t *testing.T) {
		ctx := WithToken(context.Background(), "")
		_, ok := Token(ctx)
		assert.False(t, ok)
	})

	t.Run("does not leak to parent", func(t *testing.T) {
		parent := context.Background()
		_ = WithToken(parent, "tokA")
		_, ok := Token(parent)
		assert.False(t, ok)
	})
}

// TestToken_ConcurrentIsolation exercises the core isolation invariant: two
// overlapping calls each set their own token, interleave across simulated
// suspension points, and must only ever observe their own value.
func TestToken_ConcurrentIsolation(t *testing.T) {
	const calls = 64
	const reads = 100

	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := fmt.Sprintf("tok-%d", i)
			ctx := WithToken(context.Background(), want)

			<-start
			for r := 0; r < reads; r++ {
				got, ok := Token(ctx)
				if !ok || got != want {
					t.Errorf("call %d observed token %q, want %q", i, got, want)
					return
				}
			}
		}(i)
	}

	close(start)
	wg.Wait()
}

// A completed call must not influence a later call that sets no token.
func TestToken_NoCarryOverBetweenCalls(t *testing.T) {
	first := WithToken(context.Background(), "tokA")
	token, ok := Token(first)
	assert.True(t, ok)
	assert.Equal(t, "tokA", token)

	// A fresh call context starts clean.
	second := context.Background()
	_, ok = Token(second)
	assert.False(t, ok)
}
