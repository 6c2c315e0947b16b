package upload

import "errors"

var (
	ErrSourceMissing     = errors.New("upload: required video source is missing")
	ErrSourceFetchFailed = errors.New("upload: remote source fetch failed")
	ErrSizeLimitExceeded = errors.New("upload: video exceeds the size limit")
	ErrPublishFailed     = errors.New("upload: remote publish failed")
)
