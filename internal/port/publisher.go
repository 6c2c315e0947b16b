package port

import (
	"context"
	"time"

	"github.com/vidseo/publish-ms-go/internal/model"
)

// PublishInput is everything the remote platform needs to ingest a video.
type PublishInput struct {
	Payload       []byte
	FileName      string
	Category      model.Category
	Language      string
	Monetization  string
	PrivacyStatus string
	PublishAt     *time.Time
	Metadata      model.MetadataBundle
}

// PublishOutput is what the remote platform reports back. Either field may
// be empty when the platform omits it.
type PublishOutput struct {
	ID            string
	PrivacyStatus string
}

// Publisher is the remote publish collaborator. It is treated as an opaque
// capability: one call, no retries.
type Publisher interface {
	Publish(ctx context.Context, in PublishInput) (PublishOutput, error)
}
