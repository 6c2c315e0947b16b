package youtube

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

// YouTube category ids for the categories we publish to.
var categoryIDs = map[model.Category]string{
	model.CategoryTech:     "28", // Science & Technology
	model.CategoryVlog:     "22", // People & Blogs
	model.CategoryShorts:   "24", // Entertainment
	model.CategoryGaming:   "20", // Gaming
	model.CategoryTutorial: "27", // Education
}

// videoInserter wraps the one Data API call we issue. It exists so tests can
// swap the real service for a fake.
type videoInserter interface {
	Insert(ctx context.Context, video *youtube.Video, media io.Reader) (*youtube.Video, error)
}

type dataAPIInserter struct {
	service *youtube.Service
}

func (s *dataAPIInserter) Insert(ctx context.Context, video *youtube.Video, media io.Reader) (*youtube.Video, error) {
	return s.service.Videos.Insert([]string{"snippet", "status"}, video).
		Media(media).
		Context(ctx).
		Do()
}

// Publisher implements port.Publisher on top of the YouTube Data API v3.
type Publisher struct {
	inserter videoInserter
}

// compile-time check: *Publisher must satisfy port.Publisher
var _ port.Publisher = (*Publisher)(nil)

// PublisherOption is a functional option for configuring Publisher.
type PublisherOption func(*Publisher)

// WithInserter sets a custom video inserter (for testing).
func WithInserter(i videoInserter) PublisherOption {
	return func(p *Publisher) {
		p.inserter = i
	}
}

// NewPublisher creates a publisher backed by the real Data API unless an
// inserter override is given.
func NewPublisher(ctx context.Context, credentialsPath string, opts ...PublisherOption) (*Publisher, error) {
	p := &Publisher{}

	for _, opt := range opts {
		opt(p)
	}

	if p.inserter == nil {
		svc, err := newDataAPIService(ctx, credentialsPath)
		if err != nil {
			return nil, err
		}
		p.inserter = svc
	}

	return p, nil
}

func newDataAPIService(ctx context.Context, credentialsPath string) (*dataAPIInserter, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(b, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	client := config.Client(ctx)
	srv, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create youtube service: %w", err)
	}

	return &dataAPIInserter{service: srv}, nil
}

// Publish uploads the payload with its metadata in a single call and returns
// whatever identifier and privacy status the platform reported.
func (p *Publisher) Publish(ctx context.Context, in port.PublishInput) (port.PublishOutput, error) {
	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:                in.Metadata.Title,
			Description:          in.Metadata.Description,
			Tags:                 in.Metadata.Tags,
			CategoryId:           categoryIDs[in.Category],
			DefaultLanguage:      in.Language,
			DefaultAudioLanguage: in.Language,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus: in.PrivacyStatus,
		},
	}
	if in.PublishAt != nil {
		video.Status.PublishAt = in.PublishAt.Format(time.RFC3339)
	}
	if in.Monetization == "kids" {
		video.Status.SelfDeclaredMadeForKids = true
		video.Status.ForceSendFields = append(video.Status.ForceSendFields, "SelfDeclaredMadeForKids")
	}

	uploaded, err := p.inserter.Insert(ctx, video, bytes.NewReader(in.Payload))
	if err != nil {
		return port.PublishOutput{}, fmt.Errorf("inserting video %q: %w", in.FileName, err)
	}

	out := port.PublishOutput{ID: uploaded.Id}
	if uploaded.Status != nil {
		out.PrivacyStatus = uploaded.Status.PrivacyStatus
	}
	return out, nil
}
