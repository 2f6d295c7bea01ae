package memo

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stats is a snapshot of a memoized function's cache.
type Stats struct {
	Entries  int64 // committed results
	Hits     int64 // calls answered from the cache
	Shared   int64 // calls that waited for a computation already in flight
	Misses   int64 // calls that ran the underlying function
	Failures int64 // misses that ended in an error or panic and were not cached

	// Lifetime spans from the creation of the memoized function to the snapshot.
	Lifetime timespan.TimeSpan
}

// meter identifies a memoized function and counts what its cache does.
type meter struct {
	id      string
	created time.Time
	logger  *zap.Logger

	entries  atomic.Int64
	hits     atomic.Int64
	shared   atomic.Int64
	misses   atomic.Int64
	failures atomic.Int64
}

func newMeter(cfg Config, numShards int) *meter {
	m := &meter{
		id:      uuid.New().String(),
		created: time.Now(),
	}
	m.logger = cfg.Logger.With(zap.String("memo_id", m.id))
	if cfg.Name != "" {
		m.logger = m.logger.With(zap.String("memo_name", cfg.Name))
	}
	m.debug("created memoized function", zap.Int("shards", numShards))
	return m
}

// ID returns the unique identifier attached to every log line of this function.
func (m *meter) ID() string { return m.id }

// Len returns the number of committed entries.
func (m *meter) Len() int { return int(m.entries.Load()) }

func (m *meter) Stats() Stats {
	return Stats{
		Entries:  m.entries.Load(),
		Hits:     m.hits.Load(),
		Shared:   m.shared.Load(),
		Misses:   m.misses.Load(),
		Failures: m.failures.Load(),
		Lifetime: timespan.BetweenTimes(m.created, time.Now()),
	}
}

func (m *meter) memoized() {}

// debug writes through Check so that nothing is encoded unless debug is enabled.
func (m *meter) debug(msg string, fields ...zapcore.Field) {
	if ce := m.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}
