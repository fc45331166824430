package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/mediagrab/internal/domain"
)

func TestHTTPFetcher_StreamsToFile(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("image-bytes"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher("test-agent/1.0")
	dest := filepath.Join(t.TempDir(), "pic.jpg")

	require.NoError(t, fetcher.Fetch(context.Background(), server.URL, dest))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
	assert.Equal(t, "test-agent/1.0", gotUserAgent)
}

func TestHTTPFetcher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher("")
	dest := filepath.Join(t.TempDir(), "pic.jpg")

	err := fetcher.Fetch(context.Background(), server.URL, dest)
	assert.ErrorIs(t, err, domain.ErrFetch)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestHTTPFetcher_UnreachableHost(t *testing.T) {
	fetcher := NewHTTPFetcher("")
	dest := filepath.Join(t.TempDir(), "pic.jpg")

	err := fetcher.Fetch(context.Background(), "http://127.0.0.1:1/nope", dest)
	assert.ErrorIs(t, err, domain.ErrFetch)
}
