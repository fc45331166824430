package app

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/mediagrab/internal/domain"
)

func TestNormalize_AuthorFallbackChain(t *testing.T) {
	n := NewNormalizer(10)

	tests := []struct {
		name     string
		raw      map[string]interface{}
		expected string
	}{
		{
			name:     "uploader wins",
			raw:      map[string]interface{}{"uploader": "alice", "channel": "chan", "uploader_id": "id1"},
			expected: "alice",
		},
		{
			name:     "channel when uploader absent",
			raw:      map[string]interface{}{"channel": "chan", "uploader_id": "id1"},
			expected: "chan",
		},
		{
			name:     "channel when uploader empty",
			raw:      map[string]interface{}{"uploader": "", "channel": "chan"},
			expected: "chan",
		},
		{
			name:     "uploader_id as last resort",
			raw:      map[string]interface{}{"uploader_id": "id1"},
			expected: "id1",
		},
		{
			name:     "placeholder when all absent",
			raw:      map[string]interface{}{"title": "t"},
			expected: UnknownAuthor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := n.Normalize(tt.raw)
			assert.Equal(t, tt.expected, item.Author)
		})
	}
}

func TestNormalize_MissingFieldsNeverPanic(t *testing.T) {
	n := NewNormalizer(10)

	item := n.Normalize(map[string]interface{}{})

	assert.Equal(t, UntitledPlaceholder, item.Title)
	assert.Equal(t, UnknownAuthor, item.Author)
	assert.Equal(t, domain.TypeVideo, item.Type)
	assert.Empty(t, item.Thumbnail)
	assert.Zero(t, item.Duration)
	assert.Nil(t, item.Entries)
}

func TestNormalize_TypeDetection(t *testing.T) {
	n := NewNormalizer(10)

	video := n.Normalize(map[string]interface{}{"title": "clip"})
	assert.Equal(t, domain.TypeVideo, video.Type)

	image := n.Normalize(map[string]interface{}{
		"media_type": "image",
		"thumbnails": []interface{}{
			map[string]interface{}{"url": "https://cdn.example.com/small.jpg"},
			map[string]interface{}{"url": "https://cdn.example.com/large.jpg"},
		},
	})
	assert.Equal(t, domain.TypeImage, image.Type)
	assert.Equal(t, []string{
		"https://cdn.example.com/small.jpg",
		"https://cdn.example.com/large.jpg",
	}, image.Images)

	playlist := n.Normalize(map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"title": "one"},
		},
	})
	assert.Equal(t, domain.TypePlaylist, playlist.Type)
	assert.True(t, playlist.IsCollection())
}

func TestNormalize_EntryCapPreservesOrder(t *testing.T) {
	n := NewNormalizer(10)

	entries := make([]interface{}, 25)
	for i := range entries {
		entries[i] = map[string]interface{}{
			"title": fmt.Sprintf("entry %d", i),
			"url":   fmt.Sprintf("https://example.com/%d", i),
		}
	}
	item := n.Normalize(map[string]interface{}{"entries": entries})

	assert.Len(t, item.Entries, 10)
	for i, child := range item.Entries {
		assert.Equal(t, fmt.Sprintf("entry %d", i), child.Title)
	}
}

func TestNormalize_ConfigurableCap(t *testing.T) {
	n := NewNormalizer(3)

	entries := make([]interface{}, 5)
	for i := range entries {
		entries[i] = map[string]interface{}{"title": fmt.Sprintf("entry %d", i)}
	}
	item := n.Normalize(map[string]interface{}{"entries": entries})

	assert.Len(t, item.Entries, 3)
}

func TestNormalize_ChildLocatorFallback(t *testing.T) {
	n := NewNormalizer(10)

	item := n.Normalize(map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"title": "direct", "url": "https://example.com/direct"},
			map[string]interface{}{"title": "page", "webpage_url": "https://example.com/page"},
		},
	})

	assert.Equal(t, "https://example.com/direct", item.Entries[0].URL)
	assert.Equal(t, "https://example.com/page", item.Entries[1].URL)
}

func TestNormalize_OneLevelDeep(t *testing.T) {
	n := NewNormalizer(10)

	item := n.Normalize(map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{
				"title": "nested playlist",
				"entries": []interface{}{
					map[string]interface{}{"title": "grandchild"},
				},
			},
		},
	})

	assert.Len(t, item.Entries, 1)
	assert.Nil(t, item.Entries[0].Entries)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer(10)
	raw := map[string]interface{}{
		"title":    "clip",
		"uploader": "alice",
		"duration": 42.0,
		"entries": []interface{}{
			map[string]interface{}{"title": "one", "url": "https://example.com/1"},
		},
	}

	first := n.Normalize(raw)
	second := n.Normalize(raw)

	assert.Equal(t, first, second)
}
