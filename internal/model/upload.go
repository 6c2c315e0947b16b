package model

import "time"

type SourceType string

const (
	SourceTypeFile SourceType = "file"
	SourceTypeLink SourceType = "link"
)

type Category string

const (
	CategoryTech     Category = "tech"
	CategoryVlog     Category = "vlog"
	CategoryShorts   Category = "shorts"
	CategoryGaming   Category = "gaming"
	CategoryTutorial Category = "tutorial"
)

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// ResolvedVideo is the fully materialised payload plus its derived filename.
type ResolvedVideo struct {
	Payload  []byte
	FileName string
}

// PublishPolicy is the computed visibility state. PublishAt is set iff the
// video is private with a future publish time.
type PublishPolicy struct {
	PrivacyStatus string
	PublishAt     *time.Time
}

// MetadataBundle is the synthesized SEO package for one upload. The slice
// fields are never nil so callers can join them for display.
type MetadataBundle struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Hashtags        []string `json:"hashtags"`
	ThumbnailPrompt string   `json:"thumbnailPrompt"`
	KeywordPhrases  []string `json:"keywordPhrases"`
}

// UploadResult is the response entity assembled once after a successful
// pipeline run.
type UploadResult struct {
	MetadataBundle
	ScheduledAt  *string `json:"scheduledAt"`
	Monetization string  `json:"monetization"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	VideoID      *string `json:"videoId"`
}
