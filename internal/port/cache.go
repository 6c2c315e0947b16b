package port

import (
	"context"
	"time"
)

// Cache memoises synthesized metadata bundles keyed by an input digest.
type Cache interface {
	GetMetadataBundle(ctx context.Context, key string) ([]byte, error)
	SetMetadataBundle(ctx context.Context, key string, data []byte, ttl time.Duration)
}
