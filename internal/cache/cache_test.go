package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache("test-region", time.Minute, time.Minute, zap.NewNop())

	assert.Equal(t, "test-region", c.Name())

	_, found := c.Get(ctx, "missing")
	assert.False(t, found)

	c.Set(ctx, "key", []byte(`{"a":1}`), time.Minute)
	body, found := c.Get(ctx, "key")
	require.True(t, found)
	assert.Equal(t, []byte(`{"a":1}`), body)

	// Last write wins.
	c.Set(ctx, "key", []byte(`{"a":2}`), time.Minute)
	body, found = c.Get(ctx, "key")
	require.True(t, found)
	assert.Equal(t, []byte(`{"a":2}`), body)

	// Independent keys stay independent.
	_, found = c.Get(ctx, "other")
	assert.False(t, found)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache("test-region", time.Minute, time.Minute, zap.NewNop())

	c.Set(ctx, "key", []byte("value"), 10*time.Millisecond)
	_, found := c.Get(ctx, "key")
	assert.True(t, found)

	time.Sleep(30 * time.Millisecond)
	_, found = c.Get(ctx, "key")
	assert.False(t, found)
}

func TestRequestKey(t *testing.T) {
	t.Run("parameter order does not matter", func(t *testing.T) {
		a := url.Values{}
		a.Set("limit", "10")
		a.Set("chainId", "1")

		b := url.Values{}
		b.Set("chainId", "1")
		b.Set("limit", "10")

		assert.Equal(t, RequestKey(a), RequestKey(b))
		assert.Equal(t, "chainId=1&limit=10", RequestKey(a))
	})

	t.Run("different values differ", func(t *testing.T) {
		a := url.Values{"chainId": {"1"}}
		b := url.Values{"chainId": {"4"}}
		assert.NotEqual(t, RequestKey(a), RequestKey(b))
	})

	t.Run("repeated keys are sorted", func(t *testing.T) {
		a := url.Values{"ordering": {"name", "-relevance"}}
		b := url.Values{"ordering": {"-relevance", "name"}}
		assert.Equal(t, RequestKey(a), RequestKey(b))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Equal(t, "", RequestKey(url.Values{}))
	})

	t.Run("values are escaped", func(t *testing.T) {
		a := url.Values{"q": {"a b&c"}}
		assert.Equal(t, "q=a+b%26c", RequestKey(a))
	})
}
