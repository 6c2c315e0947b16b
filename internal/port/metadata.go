package port

import (
	"context"
	"time"

	"github.com/vidseo/publish-ms-go/internal/model"
)

// GenerateMetadataInput seeds the SEO synthesizer for one upload.
type GenerateMetadataInput struct {
	TitleSeed    string
	Category     model.Category
	Language     string
	Monetization string
	PublishAt    *time.Time
}

// MetadataGenerator produces the full SEO bundle. Implementations must be
// deterministic for identical inputs and must always return a non-empty
// title and description.
type MetadataGenerator interface {
	Generate(ctx context.Context, in GenerateMetadataInput) (model.MetadataBundle, error)
}
