package core

import (
	"sync"
	"time"
)

// DefaultContextExpiry is how long the shared context survives without a write.
const DefaultContextExpiry = 30 * time.Minute

// SharedContext is a key/value store for ambient conversation slots (the
// active location, for example) with a coarse, store-wide expiry: once the
// time since the last write exceeds the expiry window, the next read clears
// every entry, not just the stale one. Expiry is checked lazily at read time;
// there is no background timer.
//
// One SharedContext is owned by exactly one orchestrator instance and serves
// one conversation at a time. The mutex only guards against accidental
// cross-goroutine use; it is not a sharing contract.
type SharedContext struct {
	mu        sync.Mutex
	values    map[string]string
	expiry    time.Duration
	lastWrite time.Time
	now       func() time.Time
}

// SharedContextOptions configures a SharedContext instance.
type SharedContextOptions struct {
	// Expiry is the store-wide staleness window. Zero means DefaultContextExpiry.
	Expiry time.Duration
	// Now overrides the clock. Tests use this to step time deterministically.
	Now func() time.Time
}

// NewSharedContext constructs an empty shared context with the default
// 30-minute expiry window.
func NewSharedContext(optFns ...func(o *SharedContextOptions)) *SharedContext {
	opts := SharedContextOptions{
		Expiry: DefaultContextExpiry,
		Now:    time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Expiry <= 0 {
		opts.Expiry = DefaultContextExpiry
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SharedContext{
		values: map[string]string{},
		expiry: opts.Expiry,
		now:    opts.Now,
	}
}

// Update stores a value and resets the expiry clock for the whole store.
func (c *SharedContext) Update(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	c.lastWrite = c.now()
}

// Get returns the stored value for key. If the store as a whole has expired,
// every entry is cleared first and the read reports absent.
func (c *SharedContext) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.values) == 0 {
		return "", false
	}
	if c.now().Sub(c.lastWrite) > c.expiry {
		c.values = map[string]string{}
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

// Clear empties the store unconditionally.
func (c *SharedContext) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = map[string]string{}
}

// Len reports the number of live entries without triggering expiry.
func (c *SharedContext) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}
