package pure_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/fp_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

// mapStore is a minimal custom Store.
type mapStore struct {
	mu      sync.Mutex
	entries map[string]any
	stores  int
}

var _ pure.Store = (*mapStore)(nil)

func (m *mapStore) Load(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *mapStore) Store(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores++
	m.entries[key] = value
}

func (m *mapStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[string]any{}
}

func (m *mapStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func TestWithStore(t *testing.T) {
	store := &mapStore{entries: map[string]any{}}
	length, table := pure.Memoize1(func(s string) int {
		return len(s)
	}, pure.WithStore(store), pure.WithMaxEntries(1))

	length("a")
	length("bb")
	length("a")

	assert.Equal(t, 2, store.stores)
	assert.Equal(t, 2, table.Len())
	assert.Contains(t, store.entries, `[string="a"]`)

	table.Clear()
	assert.Equal(t, 0, store.Len())
}

func TestShardedStore_ManyKeys(t *testing.T) {
	count := 0
	square, table := pure.Memoize1(func(i int) int {
		count++
		return i * i
	}, pure.WithShards(4))

	for i := 0; i < 100; i++ {
		assert.Equal(t, i*i, square(i))
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, i*i, square(i))
	}
	assert.Equal(t, 100, count)
	assert.Equal(t, 100, table.Len())
}

func TestShardedStore_BoundedAcrossShards(t *testing.T) {
	fn, table := pure.Memoize1(func(i int) int { return i },
		pure.WithMaxEntries(8), pure.WithShards(4))

	for i := 0; i < 1000; i++ {
		fn(i)
	}
	// two generations of ceil(8/4) entries per shard
	assert.LessOrEqual(t, table.Len(), 16)
	assert.Greater(t, table.Len(), 0)
}
