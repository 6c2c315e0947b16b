package upload

import (
	"net/url"
	"regexp"
	"strings"
)

// Ordered first-match-wins: "matroska" must win over any later entry even
// when several substrings could match a compound content-type.
var contentTypeExtensions = []struct {
	substr string
	ext    string
}{
	{"quicktime", "mov"},
	{"webm", "webm"},
	{"matroska", "mkv"},
	{"avi", "avi"},
}

var extensionRe = regexp.MustCompile(`\.[a-zA-Z0-9]+$`)

// InferFileName derives a filename with a known-good extension from a remote
// URL and the content type the remote declared. It fails soft: an
// unparseable URL yields FallbackRemoteName rather than an error.
func InferFileName(rawURL, contentType string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FallbackRemoteName
	}

	base := ""
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			base = seg
		}
	}
	if base == "" {
		return FallbackRemoteName
	}

	if extensionRe.MatchString(base) {
		return base
	}

	return base + "." + extensionFor(contentType)
}

func extensionFor(contentType string) string {
	ct := strings.ToLower(contentType)
	for _, m := range contentTypeExtensions {
		if strings.Contains(ct, m.substr) {
			return m.ext
		}
	}
	return "mp4"
}
