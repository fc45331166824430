package domain

import "context"

// ExtractOptions is the typed option set passed to the extraction engine.
// One struct with named fields instead of a loose option bag; each media
// kind fills in the subset it needs.
type ExtractOptions struct {
	// Format is the engine format selector, e.g. "bestvideo+bestaudio/best".
	Format string

	// OutputTemplate is the engine output filename template, already rooted
	// in the request workspace.
	OutputTemplate string

	// SkipDownload skips the main content download (thumbnail-only mode).
	SkipDownload bool

	// WriteThumbnail persists the preview image alongside (or instead of)
	// the main content.
	WriteThumbnail bool

	// ExtractAudio runs the engine's audio extraction postprocessor.
	ExtractAudio bool

	// AudioFormat is the target audio container when ExtractAudio is set.
	AudioFormat string

	// AudioBitrate is the target bitrate when ExtractAudio is set, e.g. "192".
	AudioBitrate string

	// FlatPlaylist requests shallow collection extraction (metadata only).
	FlatPlaylist bool
}

// Extractor is the boundary to the external media-extraction engine.
// Implementations perform network I/O and, for Download, filesystem writes.
type Extractor interface {
	// ExtractInfo fetches the raw metadata record for a URL without
	// downloading content. The returned map is the engine's native shape;
	// callers normalize it.
	ExtractInfo(ctx context.Context, url string) (map[string]interface{}, error)

	// Download performs a download with the given options and returns the
	// path the engine reports for the produced file. The reported path is
	// advisory; callers verify existence and may re-resolve it.
	Download(ctx context.Context, url string, opts ExtractOptions) (string, error)
}

// RawFetcher streams a direct URL to a local file, bypassing the
// extraction engine. Used for image URLs the engine does not handle.
type RawFetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}
