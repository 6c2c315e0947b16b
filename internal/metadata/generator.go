package metadata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vidseo/publish-ms-go/internal/model"
	"github.com/vidseo/publish-ms-go/internal/port"
)

var categoryLabels = map[model.Category]string{
	model.CategoryTech:     "Tech",
	model.CategoryVlog:     "Vlog",
	model.CategoryShorts:   "Shorts",
	model.CategoryGaming:   "Gaming",
	model.CategoryTutorial: "Tutorial",
}

var categoryTags = map[model.Category][]string{
	model.CategoryTech:     {"technology", "innovation", "gadgets", "software"},
	model.CategoryVlog:     {"vlog", "daily life", "lifestyle", "behind the scenes"},
	model.CategoryShorts:   {"shorts", "short video", "viral", "trending"},
	model.CategoryGaming:   {"gaming", "gameplay", "walkthrough", "esports"},
	model.CategoryTutorial: {"tutorial", "how to", "step by step", "guide"},
}

type generator struct{}

// NewGenerator returns the default SEO synthesizer. It is fully
// deterministic: identical inputs always yield the identical bundle.
func NewGenerator() port.MetadataGenerator {
	return &generator{}
}

func (g *generator) Generate(ctx context.Context, in port.GenerateMetadataInput) (model.MetadataBundle, error) {
	label := categoryLabels[in.Category]
	if label == "" {
		label = "Video"
	}

	topic := humanise(in.TitleSeed)
	if topic == "" {
		topic = "Untitled Video"
	}

	title := fmt.Sprintf("%s | %s", topic, label)

	tags := append([]string{}, categoryTags[in.Category]...)
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 2 {
			tags = append(tags, w)
		}
	}

	hashtags := make([]string, 0, len(tags))
	for _, t := range tags {
		hashtags = append(hashtags, "#"+strings.ReplaceAll(t, " ", ""))
	}

	phrases := []string{
		fmt.Sprintf("%s %s", strings.ToLower(topic), strings.ToLower(label)),
		fmt.Sprintf("best %s video", strings.ToLower(label)),
		fmt.Sprintf("%s in %s", strings.ToLower(topic), in.Language),
	}

	var sched string
	if in.PublishAt != nil {
		sched = fmt.Sprintf("\n\nPremieres %s.", in.PublishAt.Format(time.RFC1123))
	}

	desc := fmt.Sprintf(
		"%s — a %s video in %s.\n\nIn this video: %s.\nMonetization: %s.%s\n\n%s",
		topic, strings.ToLower(label), in.Language, topic, in.Monetization, sched,
		strings.Join(hashtags, " "),
	)

	return model.MetadataBundle{
		Title:           title,
		Description:     desc,
		Tags:            tags,
		Hashtags:        hashtags,
		ThumbnailPrompt: fmt.Sprintf("Bold %s thumbnail for %q, high contrast, large readable text, expressive focal subject", strings.ToLower(label), topic),
		KeywordPhrases:  phrases,
	}, nil
}

// humanise turns a filename or URL seed into display text: extension
// stripped, separators spaced out, words title-cased.
func humanise(seed string) string {
	s := seed
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, "."); i > 0 {
		s = s[:i]
	}
	s = strings.NewReplacer("-", " ", "_", " ", "+", " ", "%20", " ").Replace(s)

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
