// cache/db_store.go
package cache

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

// DBStore implements Store on top of a MySQL key/value table. REPLACE INTO
// is the atomic full-entry replace; expired and corrupt rows are deleted at
// read time, same as the file backend. Like every Store, it is best-effort:
// database errors are logged and reported as misses or dropped writes.
type DBStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewDBStore wraps an initialized connection pool. The launch_cache table
// must already exist (database.EnsureCacheSchema).
func NewDBStore(db *sql.DB) *DBStore {
	return &DBStore{db: db, now: time.Now}
}

func (s *DBStore) Get(key string) ([]byte, bool) {
	var storedAt time.Time
	var ttlNS int64
	var payload []byte

	err := s.db.QueryRow(
		"SELECT stored_at, ttl_ns, payload FROM launch_cache WHERE cache_key = ?",
		key,
	).Scan(&storedAt, &ttlNS, &payload)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("Cache: failed to read entry for key %q: %v", key, err)
		return nil, false
	}

	envelope := entryEnvelope{StoredAt: storedAt, TTL: time.Duration(ttlNS)}
	if envelope.expired(s.now()) {
		s.delete(key)
		return nil, false
	}
	if !json.Valid(payload) {
		log.Printf("Cache: corrupt entry for key %q, removing", key)
		s.delete(key)
		return nil, false
	}

	return payload, true
}

func (s *DBStore) Put(key string, payload []byte, ttl time.Duration) {
	if !json.Valid(payload) {
		log.Printf("Cache: refusing to store non-JSON payload for key %q", key)
		return
	}
	_, err := s.db.Exec(
		"REPLACE INTO launch_cache (cache_key, stored_at, ttl_ns, payload) VALUES (?, ?, ?, ?)",
		key, s.now(), int64(ttl), payload,
	)
	if err != nil {
		log.Printf("Cache: failed to write entry for key %q: %v", key, err)
	}
}

func (s *DBStore) Invalidate(key string) {
	s.delete(key)
}

func (s *DBStore) delete(key string) {
	if _, err := s.db.Exec("DELETE FROM launch_cache WHERE cache_key = ?", key); err != nil {
		log.Printf("Cache: failed to remove entry for key %q: %v", key, err)
	}
}
