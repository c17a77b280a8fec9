// cache/file_store.go
package cache

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore caches entries as one JSON file per key under a cache directory.
// Writes go to a temp file first and are renamed into place, so concurrent
// readers see either the old entry or the new one, never a partial write.
// There is no background sweeper: every Get that encounters an expired or
// corrupt file deletes it immediately, so disk usage stays bounded by the
// set of keys actually read.
type FileStore struct {
	dir string

	// now is swappable so expiry can be tested without sleeping.
	now func() time.Time
}

// NewFileStore creates the cache directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

// safeKey maps a cache key to a filename, replacing characters that are
// meaningful on the filesystem.
func safeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", ":", "_", "\\", "_")
	return replacer.Replace(key)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, safeKey(key)+".json")
}

// Get returns the payload for key if a valid, unexpired entry exists.
// Expired and corrupt entries are treated identically: the file is removed
// (best effort) and the call reports a miss.
func (s *FileStore) Get(key string) ([]byte, bool) {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Cache: failed to read entry for key %q: %v", key, err)
			s.remove(path, key)
		}
		return nil, false
	}

	var envelope entryEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		log.Printf("Cache: corrupt entry for key %q, removing: %v", key, err)
		s.remove(path, key)
		return nil, false
	}

	if envelope.expired(s.now()) {
		s.remove(path, key)
		return nil, false
	}

	return envelope.Payload, true
}

// Put writes payload under key. Failures are logged and swallowed; caching
// is best-effort and callers must not depend on a successful write.
func (s *FileStore) Put(key string, payload []byte, ttl time.Duration) {
	if !json.Valid(payload) {
		log.Printf("Cache: refusing to store non-JSON payload for key %q", key)
		return
	}

	envelope := entryEnvelope{
		StoredAt: s.now(),
		TTL:      ttl,
		Payload:  payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		log.Printf("Cache: failed to marshal entry for key %q: %v", key, err)
		return
	}

	// Write to a temp file in the same directory, then rename into place.
	// Rename on the same filesystem is the atomic full-entry replace.
	tmp, err := os.CreateTemp(s.dir, safeKey(key)+".tmp-*")
	if err != nil {
		log.Printf("Cache: failed to create temp file for key %q: %v", key, err)
		return
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		log.Printf("Cache: failed to write entry for key %q: %v", key, err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		log.Printf("Cache: failed to close temp file for key %q: %v", key, err)
		return
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		log.Printf("Cache: failed to publish entry for key %q: %v", key, err)
	}
}

// Invalidate removes the entry for key if present.
func (s *FileStore) Invalidate(key string) {
	s.remove(s.path(key), key)
}

func (s *FileStore) remove(path, key string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Cache: failed to remove entry for key %q: %v", key, err)
	}
}
