package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKind(t *testing.T) {
	for _, kind := range []MediaKind{KindVideo, KindAudio, KindThumbnail, KindImage} {
		assert.True(t, ValidateKind(kind))
	}
	assert.False(t, ValidateKind("gif"))
	assert.False(t, ValidateKind(""))
}

func TestMediaItem_IsCollection(t *testing.T) {
	single := &MediaItem{Title: "clip", Type: TypeVideo}
	assert.False(t, single.IsCollection())

	// Entries, not Type, is the container discriminator.
	container := &MediaItem{Title: "album", Type: TypeVideo, Entries: []*MediaItem{{Title: "one"}}}
	assert.True(t, container.IsCollection())
}

func TestNewFetchRecord(t *testing.T) {
	record := NewFetchRecord("https://example.com/watch?v=abc", KindVideo)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "https://example.com/watch?v=abc", record.URL)
	assert.Equal(t, KindVideo, record.Kind)
	assert.Equal(t, StatusProcessing, record.Status)
	assert.Nil(t, record.CompletedAt)
}

func TestFetchRecord_MarkCompleted(t *testing.T) {
	record := NewFetchRecord("https://example.com/a", KindAudio)

	record.MarkCompleted("clip.mp3")

	assert.Equal(t, StatusCompleted, record.Status)
	assert.Equal(t, "clip.mp3", record.FileName)
	assert.NotNil(t, record.CompletedAt)
}

func TestFetchRecord_MarkFailed(t *testing.T) {
	record := NewFetchRecord("https://example.com/a", KindVideo)

	record.MarkFailed(errors.New("dead link"))

	assert.Equal(t, StatusFailed, record.Status)
	assert.Equal(t, "dead link", record.ErrorMessage)
}
