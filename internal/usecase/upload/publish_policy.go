package upload

import (
	"time"

	"github.com/vidseo/publish-ms-go/internal/model"
)

// scheduleLayouts are tried in order. The first two cover the ISO-local
// strings that datetime-local form fields produce.
var scheduleLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ComputePublishPolicy is the single source of truth for visibility. A
// parseable schedule means private with a future publish time; anything
// else (absent, empty, garbage) means publish publicly right away.
func ComputePublishPolicy(schedule string) model.PublishPolicy {
	if schedule == "" {
		return model.PublishPolicy{PrivacyStatus: model.PrivacyPublic}
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, schedule); err == nil {
			at := t.UTC()
			return model.PublishPolicy{PrivacyStatus: model.PrivacyPrivate, PublishAt: &at}
		}
	}
	return model.PublishPolicy{PrivacyStatus: model.PrivacyPublic}
}

// ParseableSchedule reports whether ComputePublishPolicy would treat the
// given non-empty string as a valid schedule. The input validator uses it so
// a typo'd schedule is rejected up front instead of silently publishing
// publicly.
func ParseableSchedule(schedule string) bool {
	for _, layout := range scheduleLayouts {
		if _, err := time.Parse(layout, schedule); err == nil {
			return true
		}
	}
	return false
}
