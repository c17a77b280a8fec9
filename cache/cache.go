// cache/cache.go
package cache

import (
	"encoding/json"
	"time"
)

// Store is a key/value cache for serialized payloads with per-entry TTLs.
// Implementations are best-effort: a Get that cannot produce a valid entry
// reports a miss, and a Put that cannot persist is a silent no-op. Callers
// must always have a correct (if slower) path that bypasses the cache.
type Store interface {
	// Get returns the payload stored under key if it exists, is well-formed,
	// and has not expired. Expired or corrupt entries are purged on read.
	Get(key string) ([]byte, bool)

	// Put stores payload under key with the given TTL, replacing any
	// previous entry atomically.
	Put(key string, payload []byte, ttl time.Duration)

	// Invalidate removes the entry for key if present. Idempotent.
	Invalidate(key string)
}

// entryEnvelope is the metadata wrapper persisted around every payload.
// An entry is valid iff now < StoredAt + TTL. The TTL is persisted in
// nanoseconds so sub-second TTLs keep their full precision.
type entryEnvelope struct {
	StoredAt time.Time       `json:"stored_at"`
	TTL      time.Duration   `json:"ttl_ns"`
	Payload  json.RawMessage `json:"payload"`
}

func (e *entryEnvelope) expired(now time.Time) bool {
	return !now.Before(e.StoredAt.Add(e.TTL))
}
