package upload

import "testing"

func TestInferFileName(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		want        string
	}{
		{
			name:        "path already carries an extension",
			url:         "https://example.com/videos/holiday-recap.MOV",
			contentType: "video/webm",
			want:        "holiday-recap.MOV",
		},
		{
			name:        "extension appended from content type",
			url:         "https://example.com/clip",
			contentType: "video/webm",
			want:        "clip.webm",
		},
		{
			name:        "quicktime maps to mov",
			url:         "https://example.com/raw/export",
			contentType: "video/quicktime",
			want:        "export.mov",
		},
		{
			name:        "matroska maps to mkv",
			url:         "https://example.com/rec",
			contentType: "video/x-matroska",
			want:        "rec.mkv",
		},
		{
			name:        "avi maps to avi",
			url:         "https://example.com/capture",
			contentType: "video/avi",
			want:        "capture.avi",
		},
		{
			name:        "unknown content type defaults to mp4",
			url:         "https://example.com/stream",
			contentType: "application/octet-stream",
			want:        "stream.mp4",
		},
		{
			name:        "trailing slash uses last non-empty segment",
			url:         "https://example.com/media/final/",
			contentType: "video/webm",
			want:        "final.webm",
		},
		{
			name:        "empty path falls back",
			url:         "https://example.com",
			contentType: "video/webm",
			want:        "remote-upload.mp4",
		},
		{
			name:        "unparseable url falls back and never errors",
			url:         "ht tp://%%%not a url",
			contentType: "video/webm",
			want:        "remote-upload.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferFileName(tt.url, tt.contentType); got != tt.want {
				t.Errorf("InferFileName(%q, %q) = %q; want %q", tt.url, tt.contentType, got, tt.want)
			}
		})
	}
}
