package port

import (
	"context"
	"io"

	"github.com/vidseo/publish-ms-go/internal/model"
)

// UploadVideoInput is the validated, normalized submission handed to the
// orchestrator. Exactly one of File/Link is meaningful, selected by
// SourceType; the other is ignored.
type UploadVideoInput struct {
	SourceType   model.SourceType
	File         io.Reader
	FileName     string
	Link         string
	Category     model.Category
	Language     string
	Monetization string
	Schedule     string
}

// VideoUploader runs the whole pipeline: resolve the source, gate on size,
// compute the publish policy, synthesize metadata and publish remotely.
type VideoUploader interface {
	UploadVideo(ctx context.Context, in UploadVideoInput) (model.UploadResult, error)
}
