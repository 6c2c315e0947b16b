package metadata

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator()
	at := time.Date(2025, 7, 1, 10, 30, 0, 0, time.UTC)
	in := port.GenerateMetadataInput{
		TitleSeed:    "my-holiday-recap.mp4",
		Category:     model.CategoryVlog,
		Language:     "English",
		Monetization: "enabled",
		PublishAt:    &at,
	}

	first, err := g.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := g.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical bundles")
	}
}

func TestGenerate_BundleShape(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate(context.Background(), port.GenerateMetadataInput{
		TitleSeed:    "epic_boss_fight.mkv",
		Category:     model.CategoryGaming,
		Language:     "English",
		Monetization: "limited",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Title == "" {
		t.Error("Title must never be empty")
	}
	if !strings.Contains(out.Title, "Epic Boss Fight") {
		t.Errorf("Title = %q; want it to contain the humanised seed", out.Title)
	}
	if out.Description == "" {
		t.Error("Description must never be empty")
	}
	if out.Tags == nil || out.Hashtags == nil || out.KeywordPhrases == nil {
		t.Error("slice fields must never be nil")
	}
	if out.ThumbnailPrompt == "" {
		t.Error("ThumbnailPrompt must not be empty")
	}
	for _, h := range out.Hashtags {
		if !strings.HasPrefix(h, "#") {
			t.Errorf("hashtag %q does not start with #", h)
		}
		if strings.Contains(h, " ") {
			t.Errorf("hashtag %q contains a space", h)
		}
	}
}

func TestGenerate_EmptySeedStillTitled(t *testing.T) {
	g := NewGenerator()

	out, err := g.Generate(context.Background(), port.GenerateMetadataInput{
		TitleSeed:    "",
		Category:     model.CategoryTech,
		Language:     "English",
		Monetization: "disabled",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Title == "" || out.Description == "" {
		t.Error("title and description must be non-empty even without a seed")
	}
}

func TestHumanise(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{"my-holiday-recap.mp4", "My Holiday Recap"},
		{"epic_boss_fight.mkv", "Epic Boss Fight"},
		{"https://example.com/clip.webm", "Clip"},
		{"remote-upload.mp4", "Remote Upload"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := humanise(tt.seed); got != tt.want {
			t.Errorf("humanise(%q) = %q; want %q", tt.seed, got, tt.want)
		}
	}
}
