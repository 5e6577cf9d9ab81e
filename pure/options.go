package pure

import "go.uber.org/zap"

// DefaultShards is the number of lock shards of the built-in store.
const DefaultShards = 16

type memoConfig struct {
	maxEntries int
	shards     int
	store      Store
	logger     *zap.Logger
}

// MemoOption configures a memoized function.
type MemoOption func(*memoConfig)

// WithMaxEntries bounds the built-in store. Each shard keeps two
// generations of at most ceil(n/shards) entries; when the current one is
// full the older one is dropped. n <= 0 means unbounded, the default.
func WithMaxEntries(n int) MemoOption {
	return func(c *memoConfig) {
		c.maxEntries = n
	}
}

// WithShards sets the shard count of the built-in store.
func WithShards(n int) MemoOption {
	return func(c *memoConfig) {
		if n > 0 {
			c.shards = n
		}
	}
}

// WithStore replaces the built-in store. WithMaxEntries and WithShards are
// ignored when a store is given.
func WithStore(store Store) MemoOption {
	return func(c *memoConfig) {
		c.store = store
	}
}

func WithLogger(logger *zap.Logger) MemoOption {
	return func(c *memoConfig) {
		c.logger = logger
	}
}

func newMemoConfig(opts []MemoOption) memoConfig {
	c := memoConfig{shards: DefaultShards}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
