// cache/noop_store.go
package cache

import "time"

// NoopStore is the Store used when caching is disabled: every Get misses and
// every Put is discarded, so callers always take the fresh-fetch path.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (*NoopStore) Get(string) ([]byte, bool)         { return nil, false }
func (*NoopStore) Put(string, []byte, time.Duration) {}
func (*NoopStore) Invalidate(string)                 {}
