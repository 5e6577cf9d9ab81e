package pure

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Store holds memoized results by encoded argument key.
// Implementations must be safe for concurrent use and may evict on their own.
type Store interface {
	Load(key string) (value any, ok bool)
	Store(key string, value any)
	Clear()
	Len() int
}

var _ Store = (*shardedStore)(nil)

// shardedStore spreads keys over mutex-guarded shards by xxhash.
type shardedStore struct {
	shards []*shard
	logger *zap.Logger
}

func newShardedStore(numShards, maxEntries int, logger *zap.Logger) *shardedStore {
	if numShards <= 0 {
		panic("number of shards should be greater than 0")
	}
	perShard := 0
	if maxEntries > 0 {
		perShard = (maxEntries + numShards - 1) / numShards
	}
	shards := make([]*shard, numShards)
	for i := range shards {
		shards[i] = newShard(perShard)
	}
	return &shardedStore{shards: shards, logger: logger}
}

func (s *shardedStore) shardOf(key string) *shard {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *shardedStore) Load(key string) (any, bool) {
	return s.shardOf(key).load(key)
}

func (s *shardedStore) Store(key string, value any) {
	if dropped := s.shardOf(key).store(key, value); dropped > 0 {
		s.logger.Debug("memo generation rotated", zap.Int("dropped", dropped))
	}
}

func (s *shardedStore) Clear() {
	for _, sh := range s.shards {
		sh.clear()
	}
}

func (s *shardedStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		n += sh.len()
	}
	return n
}

// shard keeps two generations of entries. Lookups consult both; inserts go
// to the head, which flips once it holds maxEntries, dropping the older one.
type shard struct {
	mu          sync.RWMutex
	generations [2]map[string]any
	head        int
	maxEntries  int
}

func newShard(maxEntries int) *shard {
	return &shard{
		generations: [2]map[string]any{{}, {}},
		maxEntries:  maxEntries,
	}
}

func (s *shard) load(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.generations[s.head][key]; ok {
		return v, true
	}
	v, ok := s.generations[1-s.head][key]
	return v, ok
}

// store returns the number of entries dropped by a rotation.
func (s *shard) store(key string, value any) (dropped int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head := s.generations[s.head]
	if _, exists := head[key]; !exists && s.maxEntries > 0 && len(head) >= s.maxEntries {
		s.head = 1 - s.head
		dropped = len(s.generations[s.head])
		s.generations[s.head] = make(map[string]any, s.maxEntries)
	}
	s.generations[s.head][key] = value
	return dropped
}

func (s *shard) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generations = [2]map[string]any{{}, {}}
	s.head = 0
}

func (s *shard) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	head, old := s.generations[s.head], s.generations[1-s.head]
	n := len(head)
	for k := range old {
		if _, shadowed := head[k]; !shadowed {
			n++
		}
	}
	return n
}
