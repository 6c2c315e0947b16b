package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vidseo/publish-ms-go/internal/logger"
	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

const bundleTTL = 24 * time.Hour

type cachedGenerator struct {
	inner port.MetadataGenerator
	cache port.Cache
}

// NewCachedGenerator memoises bundles in the cache keyed by a digest of the
// inputs. The synthesizer is deterministic, so a hit is always equivalent to
// regenerating.
func NewCachedGenerator(inner port.MetadataGenerator, cache port.Cache) port.MetadataGenerator {
	return &cachedGenerator{inner: inner, cache: cache}
}

func (g *cachedGenerator) Generate(ctx context.Context, in port.GenerateMetadataInput) (model.MetadataBundle, error) {
	key := cacheKey(in)

	if data, err := g.cache.GetMetadataBundle(ctx, key); err != nil {
		logger.Warnf(ctx, "metadata cache read failed: %v", err)
	} else if data != nil {
		var bundle model.MetadataBundle
		if err := json.Unmarshal(data, &bundle); err == nil {
			return bundle, nil
		}
		logger.Warnf(ctx, "discarding corrupt metadata cache entry %q", key)
	}

	bundle, err := g.inner.Generate(ctx, in)
	if err != nil {
		return model.MetadataBundle{}, err
	}

	if data, err := json.Marshal(bundle); err == nil {
		g.cache.SetMetadataBundle(ctx, key, data, bundleTTL)
	}

	return bundle, nil
}

// cacheKey digests the marshalled input so distinct submissions can never
// share an entry, whatever characters the free-text fields contain.
func cacheKey(in port.GenerateMetadataInput) string {
	if in.PublishAt != nil {
		at := in.PublishAt.UTC()
		in.PublishAt = &at
	}
	data, _ := json.Marshal(in)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("metadata:%x", sum)
}
