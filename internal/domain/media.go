package domain

// MediaKind represents the kind of artifact a download request asks for
type MediaKind string

const (
	KindVideo     MediaKind = "video"
	KindAudio     MediaKind = "audio"
	KindThumbnail MediaKind = "thumbnail"
	KindImage     MediaKind = "image"
)

// ValidateKind checks if a media kind is valid
func ValidateKind(kind MediaKind) bool {
	switch kind {
	case KindVideo, KindAudio, KindThumbnail, KindImage:
		return true
	default:
		return false
	}
}

// MediaType tags a normalized metadata record
type MediaType string

const (
	TypeVideo    MediaType = "video"
	TypePlaylist MediaType = "playlist"
	TypeImage    MediaType = "image"
)

// MediaItem is the stable normalized metadata shape served by the info
// endpoint. The extraction engine returns wildly different records per
// source site; everything is flattened into this one schema.
//
// Entries being non-nil is the discriminator for "this is a collection",
// independent of Type.
type MediaItem struct {
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Thumbnail string       `json:"thumbnail,omitempty"`
	Duration  float64      `json:"duration,omitempty"`
	Type      MediaType    `json:"type"`
	Images    []string     `json:"images,omitempty"`
	URL       string       `json:"url,omitempty"` // set on collection children only
	Entries   []*MediaItem `json:"entries"`
}

// IsCollection reports whether the item represents a playlist/album
// container rather than a single media record.
func (m *MediaItem) IsCollection() bool {
	return len(m.Entries) > 0
}

// DownloadRequest describes a single-item download
type DownloadRequest struct {
	URL        string
	Kind       MediaKind
	ProgressID string // optional, best-effort progress correlation
}

// BatchRequest describes a multi-URL download bundled into one response
type BatchRequest struct {
	URLs       []string
	Kind       MediaKind
	ProgressID string
}

// BatchFailure records one dropped item of a best-effort batch
type BatchFailure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// BatchOutcome is the explicit partial-success result of a batch download.
// Succeeded holds workspace paths in request order; Failed holds the
// dropped items with their reasons.
type BatchOutcome struct {
	Succeeded []string
	Failed    []BatchFailure
}
