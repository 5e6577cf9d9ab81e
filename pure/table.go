package pure

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/fp_ive_go/internal/encode"
	"github.com/on-the-ground/fp_ive_go/internal/logging"
	"github.com/on-the-ground/fp_ive_go/internal/typed"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrUnencodableArgument is the panic value when an argument has no
// canonical encoding (functions, channels, cyclic values).
var ErrUnencodableArgument = errors.New("memoized function called with an unencodable argument")

// Table is the result cache owned by one memoized function.
// Tables are never shared: memoizing the same function twice yields two
// independent tables.
type Table struct {
	id      uuid.UUID
	created time.Time
	store   Store
	group   singleflight.Group
	logger  *zap.Logger
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// Stats is a snapshot of a Table's counters.
type Stats struct {
	ID       uuid.UUID
	Hits     uint64
	Misses   uint64
	Entries  int
	Lifetime timespan.TimeSpan
}

func newTable(opts []MemoOption) *Table {
	c := newMemoConfig(opts)
	logger := logging.OrNop(c.logger)
	store := c.store
	if store == nil {
		store = newShardedStore(c.shards, c.maxEntries, logger)
	}
	id := uuid.New()
	return &Table{
		id:      id,
		created: time.Now(),
		store:   store,
		logger:  logger.With(zap.Stringer("table", id)),
	}
}

func (t *Table) ID() uuid.UUID {
	return t.id
}

// Len returns the number of cached results.
func (t *Table) Len() int {
	return t.store.Len()
}

// Clear drops every cached result. Subsequent calls recompute.
func (t *Table) Clear() {
	entries := t.store.Len()
	t.store.Clear()
	t.logger.Debug("memo table cleared", zap.Int("entries", entries))
}

func (t *Table) Stats() Stats {
	return Stats{
		ID:       t.id,
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Entries:  t.store.Len(),
		Lifetime: timespan.BetweenTimes(t.created, time.Now()),
	}
}

// lookup returns the cached result for args, computing and storing it on a
// miss. Concurrent misses on the same key share a single computation.
func lookup[O any](t *Table, compute func() O, args ...any) O {
	key, err := encode.Keys(args...)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrUnencodableArgument, err))
	}

	if v, ok := t.store.Load(key); ok {
		t.hits.Add(1)
		return typed.MustAs[O](v)
	}

	executed := false
	v, _, shared := t.group.Do(key, func() (any, error) {
		executed = true
		if v, ok := t.store.Load(key); ok {
			t.hits.Add(1)
			return v, nil
		}
		t.misses.Add(1)
		v := compute()
		t.store.Store(key, v)
		t.logger.Debug("memo miss", zap.String("key", key))
		return v, nil
	})
	if shared && !executed {
		// waited on another caller's computation
		t.hits.Add(1)
	}
	return typed.MustAs[O](v)
}
