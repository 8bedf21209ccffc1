package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock steps time manually for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestContext(clock *fakeClock) *SharedContext {
	return NewSharedContext(func(o *SharedContextOptions) {
		o.Now = clock.Now
	})
}

func TestSharedContext_UpdateAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	ctx := newTestContext(clock)

	ctx.Update("location", "London")
	v, ok := ctx.Get("location")
	require.True(t, ok)
	assert.Equal(t, "London", v)
}

func TestSharedContext_MissingKey(t *testing.T) {
	ctx := NewSharedContext()
	_, ok := ctx.Get("location")
	assert.False(t, ok)
}

func TestSharedContext_RetrievableBeforeExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	ctx := newTestContext(clock)

	ctx.Update("location", "Paris")
	clock.Advance(29 * time.Minute)

	v, ok := ctx.Get("location")
	require.True(t, ok)
	assert.Equal(t, "Paris", v)
}

func TestSharedContext_ExpiredReadClearsWholeStore(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	ctx := newTestContext(clock)

	ctx.Update("location", "Paris")
	ctx.Update("units", "metric")
	clock.Advance(31 * time.Minute)

	_, ok := ctx.Get("location")
	assert.False(t, ok)

	// The stale read evicted every entry, not just the requested key.
	assert.Equal(t, 0, ctx.Len())
	_, ok = ctx.Get("units")
	assert.False(t, ok)
}

func TestSharedContext_UpdateResetsWholeStoreClock(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	ctx := newTestContext(clock)

	ctx.Update("location", "Paris")
	clock.Advance(20 * time.Minute)
	// Writing any key refreshes the clock for every entry.
	ctx.Update("units", "metric")
	clock.Advance(20 * time.Minute)

	v, ok := ctx.Get("location")
	require.True(t, ok)
	assert.Equal(t, "Paris", v)
}

func TestSharedContext_Clear(t *testing.T) {
	ctx := NewSharedContext()
	ctx.Update("location", "Tokyo")
	ctx.Clear()

	_, ok := ctx.Get("location")
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.Len())
}

func TestSharedContext_ExpiryCheckedLazily(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	ctx := newTestContext(clock)

	ctx.Update("location", "Oslo")
	// Time passes with no reads; nothing is evicted until the next Get.
	clock.Advance(2 * time.Hour)
	assert.Equal(t, 1, ctx.Len())

	_, ok := ctx.Get("location")
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.Len())
}
