package infrastructure

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/yourusername/mediagrab/internal/domain"
)

// HTTPFetcher implements domain.RawFetcher with a plain streamed GET.
// Used for direct image URLs the extraction engine is bypassed for.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a new raw fetch client
func NewHTTPFetcher(userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: 2 * time.Minute,
		},
		userAgent: userAgent,
	}
}

// Fetch streams the URL body into dest
func (f *HTTPFetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d for %s", domain.ErrFetch, resp.StatusCode, url)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}
	return nil
}
