package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	n int
}

func newCounterStore() *InMemoryStore[*counter] {
	return NewInMemoryStore(func() (*counter, error) {
		return &counter{}, nil
	})
}

func TestInMemoryStore_EmptyIDAllocatesFreshSession(t *testing.T) {
	store := newCounterStore()

	a, err := store.Get("")
	require.NoError(t, err)
	b, err := store.Get("")
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())
}

func TestInMemoryStore_SameIDReturnsSameSession(t *testing.T) {
	store := newCounterStore()

	a, err := store.Get("alpha")
	require.NoError(t, err)
	b, err := store.Get("alpha")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, store.Len())
}

func TestInMemoryStore_FactoryErrorPropagates(t *testing.T) {
	store := NewInMemoryStore(func() (*counter, error) {
		return nil, fmt.Errorf("boom")
	})
	_, err := store.Get("")
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := newCounterStore()
	e, err := store.Get("alpha")
	require.NoError(t, err)

	assert.True(t, store.Delete(e.ID))
	assert.False(t, store.Delete(e.ID))
	assert.Equal(t, 0, store.Len())
}

func TestEntry_DoSerializesAccess(t *testing.T) {
	store := newCounterStore()
	e, err := store.Get("alpha")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Do(func(c *counter) { c.n++ })
		}()
	}
	wg.Wait()

	e.Do(func(c *counter) {
		assert.Equal(t, 50, c.n)
	})
}
