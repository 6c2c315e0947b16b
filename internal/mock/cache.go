package mock

import (
	"context"
	"time"
)

// Cache implements port.Cache for tests. Entries, when set, serves reads
// per key; otherwise GetOut is returned for every key.
type Cache struct {
	GetOut  []byte
	GetErr  error
	Entries map[string][]byte

	// captured inputs
	Key     string
	SetData []byte
	TTL     time.Duration

	GetCalled bool
	SetCalled bool
}

func (m *Cache) GetMetadataBundle(ctx context.Context, key string) ([]byte, error) {
	m.GetCalled = true
	m.Key = key
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Entries != nil {
		return m.Entries[key], nil
	}
	return m.GetOut, nil
}

func (m *Cache) SetMetadataBundle(ctx context.Context, key string, data []byte, ttl time.Duration) {
	m.SetCalled = true
	m.Key = key
	m.SetData = data
	m.TTL = ttl
}
