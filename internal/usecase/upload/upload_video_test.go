package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vidseo/publish-ms-go/internal/mock"
	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

func fileInput(payload []byte, name string) port.UploadVideoInput {
	return port.UploadVideoInput{
		SourceType:   model.SourceTypeFile,
		File:         bytes.NewReader(payload),
		FileName:     name,
		Category:     model.CategoryTech,
		Language:     "English",
		Monetization: "enabled",
	}
}

func TestUploadVideo_Success(t *testing.T) {
	fetcher := &mock.Fetcher{}
	generator := &mock.MetadataGenerator{Out: model.MetadataBundle{
		Title:           "A | Tech",
		Description:     "desc",
		Tags:            []string{"technology"},
		Hashtags:        []string{"#technology"},
		ThumbnailPrompt: "prompt",
		KeywordPhrases:  []string{"a tech"},
	}}
	publisher := &mock.Publisher{Out: port.PublishOutput{ID: "yt-123", PrivacyStatus: "private"}}
	svc := NewVideoUploader(fetcher, generator, publisher)

	in := fileInput([]byte("0123456789"), "a.mp4")
	in.Schedule = "2025-07-01T10:30"

	out, err := svc.UploadVideo(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !publisher.Called {
		t.Fatal("expected the publisher to be called")
	}
	if publisher.In.PrivacyStatus != model.PrivacyPrivate {
		t.Errorf("published privacy = %q; want %q", publisher.In.PrivacyStatus, model.PrivacyPrivate)
	}
	if publisher.In.PublishAt == nil {
		t.Error("expected a publish time to be forwarded")
	}
	if publisher.In.FileName != "a.mp4" {
		t.Errorf("published filename = %q; want %q", publisher.In.FileName, "a.mp4")
	}
	if generator.In.TitleSeed != "a.mp4" {
		t.Errorf("title seed = %q; want %q", generator.In.TitleSeed, "a.mp4")
	}

	// remote report wins over the local policy
	if out.Status != "private" {
		t.Errorf("Status = %q; want %q", out.Status, "private")
	}
	if out.VideoID == nil || *out.VideoID != "yt-123" {
		t.Errorf("VideoID = %v; want yt-123", out.VideoID)
	}
	if out.ScheduledAt == nil {
		t.Fatal("ScheduledAt is nil; want a timestamp")
	}
	want := time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC).Format(time.RFC3339)
	if *out.ScheduledAt != want {
		t.Errorf("ScheduledAt = %q; want %q", *out.ScheduledAt, want)
	}
	if out.Title != "A | Tech" {
		t.Errorf("Title = %q; want %q", out.Title, "A | Tech")
	}
}

func TestUploadVideo_ImmediatePublishDefaults(t *testing.T) {
	generator := &mock.MetadataGenerator{Out: model.MetadataBundle{Title: "t", Description: "d"}}
	// remote reports neither id nor status
	publisher := &mock.Publisher{}
	svc := NewVideoUploader(&mock.Fetcher{}, generator, publisher)

	out, err := svc.UploadVideo(context.Background(), fileInput([]byte("0123456789"), "a.mp4"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Status != model.PrivacyPublic {
		t.Errorf("Status = %q; want the computed %q", out.Status, model.PrivacyPublic)
	}
	if out.ScheduledAt != nil {
		t.Errorf("ScheduledAt = %v; want nil", out.ScheduledAt)
	}
	if out.VideoID != nil {
		t.Errorf("VideoID = %v; want nil", out.VideoID)
	}
	if publisher.In.PublishAt != nil {
		t.Error("no publish time should be forwarded for an immediate publish")
	}
}

func TestUploadVideo_SizeLimit(t *testing.T) {
	generator := &mock.MetadataGenerator{Out: model.MetadataBundle{Title: "t", Description: "d"}}

	t.Run("payload at the limit passes", func(t *testing.T) {
		publisher := &mock.Publisher{}
		svc := NewVideoUploader(&mock.Fetcher{}, generator, publisher)

		_, err := svc.UploadVideo(context.Background(), fileInput(make([]byte, MaxVideoBytes), "big.mp4"))
		if err != nil {
			t.Fatalf("expected no error at the exact limit, got %v", err)
		}
		if !publisher.Called {
			t.Error("expected the publisher to be called")
		}
	})

	t.Run("one byte over fails after resolution", func(t *testing.T) {
		publisher := &mock.Publisher{}
		svc := NewVideoUploader(&mock.Fetcher{}, generator, publisher)

		_, err := svc.UploadVideo(context.Background(), fileInput(make([]byte, MaxVideoBytes+1), "big.mp4"))
		if !errors.Is(err, ErrSizeLimitExceeded) {
			t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
		}
		if publisher.Called {
			t.Error("publisher must not be called for an oversized payload")
		}
	})
}

func TestUploadVideo_FetchFailureShortCircuits(t *testing.T) {
	fetchErr := fmt.Errorf("%w: remote returned 404 Not Found", ErrSourceFetchFailed)
	generator := &mock.MetadataGenerator{}
	publisher := &mock.Publisher{}
	svc := NewVideoUploader(&mock.Fetcher{Err: fetchErr}, generator, publisher)

	in := port.UploadVideoInput{
		SourceType:   model.SourceTypeLink,
		Link:         "https://example.com/gone",
		Category:     model.CategoryVlog,
		Language:     "English",
		Monetization: "disabled",
	}
	_, err := svc.UploadVideo(context.Background(), in)
	if !errors.Is(err, ErrSourceFetchFailed) {
		t.Fatalf("expected ErrSourceFetchFailed, got %v", err)
	}
	if generator.Called {
		t.Error("metadata must not be synthesized after a failed fetch")
	}
	if publisher.Called {
		t.Error("publisher must not be called after a failed fetch")
	}
}

func TestUploadVideo_TitleSeedPreference(t *testing.T) {
	t.Run("link seeds when the filename is inferred from it", func(t *testing.T) {
		fetcher := &mock.Fetcher{Out: port.FetchResult{Body: []byte("x"), ContentType: "video/webm"}}
		generator := &mock.MetadataGenerator{Out: model.MetadataBundle{Title: "t", Description: "d"}}
		svc := NewVideoUploader(fetcher, generator, &mock.Publisher{})

		in := port.UploadVideoInput{
			SourceType:   model.SourceTypeLink,
			Link:         "https://example.com/clip",
			Category:     model.CategoryShorts,
			Language:     "English",
			Monetization: "limited",
		}
		if _, err := svc.UploadVideo(context.Background(), in); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if generator.In.TitleSeed != "clip.webm" {
			t.Errorf("title seed = %q; want the resolved filename %q", generator.In.TitleSeed, "clip.webm")
		}
	})

	t.Run("constant seed when nothing else is available", func(t *testing.T) {
		if got := titleSeed("", ""); got != DefaultTitleSeed {
			t.Errorf("titleSeed = %q; want %q", got, DefaultTitleSeed)
		}
	})
}

func TestUploadVideo_PublishFailure(t *testing.T) {
	generator := &mock.MetadataGenerator{Out: model.MetadataBundle{Title: "t", Description: "d"}}
	publisher := &mock.Publisher{Err: errors.New("quota exceeded")}
	svc := NewVideoUploader(&mock.Fetcher{}, generator, publisher)

	_, err := svc.UploadVideo(context.Background(), fileInput([]byte("x"), "a.mp4"))
	if !errors.Is(err, ErrPublishFailed) {
		t.Fatalf("expected ErrPublishFailed, got %v", err)
	}
}
