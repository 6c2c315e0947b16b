package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

// resolveSource turns the selected submission source into an in-memory
// payload plus a filename. This is the only pipeline stage that performs
// network I/O for fetching.
func (s *videoUploaderSrv) resolveSource(ctx context.Context, in port.UploadVideoInput) (model.ResolvedVideo, error) {
	switch in.SourceType {
	case model.SourceTypeLink:
		return s.resolveLink(ctx, in.Link)
	default:
		return resolveFile(in.File, in.FileName)
	}
}

func resolveFile(file io.Reader, name string) (model.ResolvedVideo, error) {
	if file == nil {
		return model.ResolvedVideo{}, fmt.Errorf("%w: no file was uploaded", ErrSourceMissing)
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		return model.ResolvedVideo{}, fmt.Errorf("reading uploaded file: %w", err)
	}
	if len(payload) == 0 {
		return model.ResolvedVideo{}, fmt.Errorf("%w: uploaded file is empty", ErrSourceMissing)
	}

	if name == "" {
		name = DefaultFileName
	}
	return model.ResolvedVideo{Payload: payload, FileName: name}, nil
}

func (s *videoUploaderSrv) resolveLink(ctx context.Context, link string) (model.ResolvedVideo, error) {
	if link == "" {
		return model.ResolvedVideo{}, fmt.Errorf("%w: no video link was provided", ErrSourceMissing)
	}

	res, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return model.ResolvedVideo{}, err
	}

	return model.ResolvedVideo{
		Payload:  res.Body,
		FileName: InferFileName(link, res.ContentType),
	}, nil
}
