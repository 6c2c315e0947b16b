package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/vidseo/publish-ms-go/internal/logger"
	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

type videoUploaderSrv struct {
	fetcher   port.SourceFetcher
	generator port.MetadataGenerator
	publisher port.Publisher
}

// NewVideoUploader wires the upload orchestrator. Each collaborator is called
// at most once per request; any failure aborts the remaining steps.
func NewVideoUploader(fetcher port.SourceFetcher, generator port.MetadataGenerator, publisher port.Publisher) port.VideoUploader {
	return &videoUploaderSrv{fetcher: fetcher, generator: generator, publisher: publisher}
}

func (s *videoUploaderSrv) UploadVideo(ctx context.Context, in port.UploadVideoInput) (model.UploadResult, error) {
	video, err := s.resolveSource(ctx, in)
	if err != nil {
		return model.UploadResult{}, err
	}

	if len(video.Payload) > MaxVideoBytes {
		return model.UploadResult{}, fmt.Errorf("%w: got %d bytes, max is %d", ErrSizeLimitExceeded, len(video.Payload), MaxVideoBytes)
	}

	policy := ComputePublishPolicy(in.Schedule)

	bundle, err := s.generator.Generate(ctx, port.GenerateMetadataInput{
		TitleSeed:    titleSeed(video.FileName, in.Link),
		Category:     in.Category,
		Language:     in.Language,
		Monetization: in.Monetization,
		PublishAt:    policy.PublishAt,
	})
	if err != nil {
		return model.UploadResult{}, fmt.Errorf("synthesizing metadata: %w", err)
	}

	logger.Infof(ctx, "publishing %q (%d bytes, %s)...", video.FileName, len(video.Payload), policy.PrivacyStatus)

	out, err := s.publisher.Publish(ctx, port.PublishInput{
		Payload:       video.Payload,
		FileName:      video.FileName,
		Category:      in.Category,
		Language:      in.Language,
		Monetization:  in.Monetization,
		PrivacyStatus: policy.PrivacyStatus,
		PublishAt:     policy.PublishAt,
		Metadata:      bundle,
	})
	if err != nil {
		return model.UploadResult{}, fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	return assembleResult(in, policy, bundle, out), nil
}

func titleSeed(fileName, link string) string {
	if fileName != "" {
		return fileName
	}
	if link != "" {
		return link
	}
	return DefaultTitleSeed
}

// assembleResult prefers what the remote platform reported over what we
// computed locally: once the call succeeds the remote system is
// authoritative.
func assembleResult(in port.UploadVideoInput, policy model.PublishPolicy, bundle model.MetadataBundle, out port.PublishOutput) model.UploadResult {
	status := policy.PrivacyStatus
	if out.PrivacyStatus != "" {
		status = out.PrivacyStatus
	}

	var scheduledAt *string
	if policy.PublishAt != nil {
		v := policy.PublishAt.Format(time.RFC3339)
		scheduledAt = &v
	}

	var videoID *string
	if out.ID != "" {
		videoID = &out.ID
	}

	return model.UploadResult{
		MetadataBundle: bundle,
		ScheduledAt:    scheduledAt,
		Monetization:   in.Monetization,
		Category:       string(in.Category),
		Status:         status,
		VideoID:        videoID,
	}
}
