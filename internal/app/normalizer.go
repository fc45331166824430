package app

import (
	"github.com/yourusername/mediagrab/internal/domain"
)

// Placeholders used when the source record omits a field entirely
const (
	UntitledPlaceholder = "(untitled)"
	UnknownAuthor       = "unknown"
)

// Normalizer maps raw extraction records, which vary in shape across
// source sites, into the stable MediaItem schema. Pure, no I/O.
type Normalizer struct {
	entryLimit int
}

// NewNormalizer creates a normalizer with the given collection preview cap
func NewNormalizer(entryLimit int) *Normalizer {
	if entryLimit <= 0 {
		entryLimit = 10
	}
	return &Normalizer{entryLimit: entryLimit}
}

// Normalize converts a raw engine record into a MediaItem. Missing optional
// fields never cause an error; only the extraction itself can fail, and
// that happens before this is called.
func (n *Normalizer) Normalize(raw map[string]interface{}) *domain.MediaItem {
	item := n.normalizeOne(raw)

	if entries, ok := raw["entries"].([]interface{}); ok && len(entries) > 0 {
		item.Type = domain.TypePlaylist
		limit := len(entries)
		if limit > n.entryLimit {
			limit = n.entryLimit
		}
		item.Entries = make([]*domain.MediaItem, 0, limit)
		for _, e := range entries[:limit] {
			child, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			// One level deep only; nested sub-playlists are not expanded.
			childItem := n.normalizeOne(child)
			childItem.URL = stringField(child, "url")
			if childItem.URL == "" {
				childItem.URL = stringField(child, "webpage_url")
			}
			item.Entries = append(item.Entries, childItem)
		}
	}

	return item
}

// normalizeOne maps a single flat record, ignoring any child entries
func (n *Normalizer) normalizeOne(raw map[string]interface{}) *domain.MediaItem {
	item := &domain.MediaItem{
		Title:     stringField(raw, "title"),
		Author:    resolveAuthor(raw),
		Thumbnail: stringField(raw, "thumbnail"),
		Duration:  numberField(raw, "duration"),
		Type:      domain.TypeVideo,
	}
	if item.Title == "" {
		item.Title = UntitledPlaceholder
	}

	if mt := stringField(raw, "media_type"); mt != "" {
		item.Type = domain.MediaType(mt)
	}
	if item.Type == domain.TypeImage {
		item.Images = galleryURLs(raw)
	}

	return item
}

// resolveAuthor applies the author fallback chain: uploader, then channel,
// then uploader_id, first non-empty wins.
func resolveAuthor(raw map[string]interface{}) string {
	for _, key := range []string{"uploader", "channel", "uploader_id"} {
		if v := stringField(raw, key); v != "" {
			return v
		}
	}
	return UnknownAuthor
}

// galleryURLs extracts the ordered image URL list from the thumbnails
// field. Order is preserved; the engine lists lowest resolution first.
func galleryURLs(raw map[string]interface{}) []string {
	thumbs, ok := raw["thumbnails"].([]interface{})
	if !ok || len(thumbs) == 0 {
		return nil
	}
	urls := make([]string, 0, len(thumbs))
	for _, t := range thumbs {
		entry, ok := t.(map[string]interface{})
		if !ok {
			continue
		}
		if u := stringField(entry, "url"); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// stringField safely extracts a string from a raw record
func stringField(raw map[string]interface{}, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// numberField safely extracts a numeric value from a raw record
func numberField(raw map[string]interface{}, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
