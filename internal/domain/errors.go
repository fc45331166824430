package domain

import "errors"

// Error taxonomy for the orchestration boundary. Handlers map these to
// transport status codes with errors.Is; nothing below the HTTP surface
// inspects status codes.
var (
	// ErrInput marks missing or invalid request parameters.
	ErrInput = errors.New("invalid input")

	// ErrExtraction marks a URL the extraction engine could not resolve
	// (dead link, unsupported site, upstream protection).
	ErrExtraction = errors.New("extraction failed")

	// ErrNotFound marks an operation that reported success but left no
	// artifact on disk.
	ErrNotFound = errors.New("file not found")

	// ErrFetch marks a direct fetch that returned a non-success status.
	ErrFetch = errors.New("fetch failed")

	// ErrPackaging marks archive creation failure. Fatal for the request,
	// no partial archive is returned.
	ErrPackaging = errors.New("packaging failed")

	// ErrNoFiles marks a download request that produced zero files.
	ErrNoFiles = errors.New("no files downloaded")
)
