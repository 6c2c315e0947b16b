package cache

import (
	"context"
	"time"

	"github.com/vidseo/publish-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetMetadataBundle(ctx context.Context, key string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) SetMetadataBundle(ctx context.Context, key string, data []byte, ttl time.Duration) {
}
