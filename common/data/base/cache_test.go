package base

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU(t *testing.T) {
	c, err := NewLRU(2, time.Hour)
	require.NoError(t, err)

	_, err = c.Get("missing")
	assert.True(t, errors.Is(err, ErrCacheMiss))

	require.NoError(t, c.Set("a", "1"))
	require.NoError(t, c.Set("b", "2"))
	v, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// "b" is the least recently used now
	require.NoError(t, c.Set("c", "3"))
	_, err = c.Get("b")
	assert.Error(t, err)

	_, err = c.Get("c")
	assert.NoError(t, err)
}

func TestLRU_DefaultSize(t *testing.T) {
	c, err := NewLRU(0, 0)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Set(fmt.Sprintf("k%d", i), "v"))
	}
	for i := 0; i < 10; i++ {
		_, err := c.Get(fmt.Sprintf("k%d", i))
		assert.NoError(t, err)
	}
}

func TestLRU_Expires(t *testing.T) {
	c, err := NewLRU(10, 20*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, c.Set("a", "1"))
	assert.Eventually(t, func() bool {
		_, err := c.Get("a")
		return errors.Is(err, ErrCacheMiss)
	}, time.Second, 10*time.Millisecond)
}

func TestExpirationSeconds(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want int32
	}{
		{0, int32(DefaultCacheTTL / time.Second)},
		{-time.Minute, int32(DefaultCacheTTL / time.Second)},
		{time.Millisecond, 1},
		{90 * time.Second, 90},
		{365 * 24 * time.Hour, int32(MaxCacheTTL / time.Second)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, expirationSeconds(tt.ttl), tt.ttl.String())
	}
}
