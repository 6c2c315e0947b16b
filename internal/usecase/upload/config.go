package upload

// MaxVideoBytes caps the materialised payload. The check runs after
// resolution: the true size of a remote link is unknown until fetched.
const MaxVideoBytes = 512 * 1024 * 1024 // 512 MiB

const (
	// DefaultFileName names file uploads whose part carries no filename.
	DefaultFileName = "upload.mp4"
	// FallbackRemoteName is returned when a remote URL cannot be parsed at
	// all. Filename derivation never aborts the pipeline.
	FallbackRemoteName = "remote-upload.mp4"
	// DefaultTitleSeed feeds the synthesizer when both the resolved
	// filename and the original link are empty.
	DefaultTitleSeed = "untitled-video"
)
