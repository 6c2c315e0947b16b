package mock

import (
	"context"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

// VideoUploader implements port.VideoUploader for tests.
type VideoUploader struct {
	Out model.UploadResult
	Err error

	// captured input
	In port.UploadVideoInput

	Called bool
}

func (m *VideoUploader) UploadVideo(ctx context.Context, in port.UploadVideoInput) (model.UploadResult, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return model.UploadResult{}, m.Err
	}
	return m.Out, nil
}
