package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/mediagrab/internal/domain"
)

// imageExtensions are the extensions the thumbnail scan recognizes. The
// engine decides the thumbnail format on its own, so the exact extension
// is not predictable in advance.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// DownloadResult is the transient product of a download request: one local
// file (possibly an archive) rooted in a request-scoped workspace. The
// caller must invoke Cleanup once the response has been sent.
type DownloadResult struct {
	FilePath  string
	FileName  string
	workspace string
}

// Cleanup removes the request workspace and everything in it
func (r *DownloadResult) Cleanup() {
	if r.workspace != "" {
		os.RemoveAll(r.workspace)
	}
}

// Orchestrator drives extraction and raw-fetch operations against a
// request-scoped temporary workspace and packages the outcome into a
// single-file or archive response.
//
// All per-URL work runs sequentially with a pacing delay between batch
// items; the upstream sources throttle aggressive clients, so this must
// not be parallelized.
type Orchestrator struct {
	extractor  domain.Extractor
	fetcher    domain.RawFetcher
	normalizer *Normalizer
	history    domain.HistoryRepository
	progress   *ProgressTracker
	download   *domain.DownloadConfig
	audio      *domain.AudioConfig
	logger     *zap.Logger
}

// NewOrchestrator creates a new download orchestrator
func NewOrchestrator(
	extractor domain.Extractor,
	fetcher domain.RawFetcher,
	normalizer *Normalizer,
	history domain.HistoryRepository,
	progress *ProgressTracker,
	download *domain.DownloadConfig,
	audio *domain.AudioConfig,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		extractor:  extractor,
		fetcher:    fetcher,
		normalizer: normalizer,
		history:    history,
		progress:   progress,
		download:   download,
		audio:      audio,
		logger:     logger,
	}
}

// Download performs a single-item download and returns the produced file
func (o *Orchestrator) Download(ctx context.Context, req domain.DownloadRequest) (*DownloadResult, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("%w: no URL provided", domain.ErrInput)
	}
	if !domain.ValidateKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown media kind %q", domain.ErrInput, req.Kind)
	}

	workspace, err := o.newWorkspace()
	if err != nil {
		return nil, err
	}

	record := domain.NewFetchRecord(req.URL, req.Kind)
	o.recordCreate(record)
	o.progress.Update(req.ProgressID, 0, ProgressDownloading)

	filePath, err := o.downloadItem(ctx, workspace, req.URL, req.Kind, "%(title)s.%(ext)s")
	if err != nil {
		os.RemoveAll(workspace)
		record.MarkFailed(err)
		o.recordUpdate(record)
		o.progress.Finish(req.ProgressID, ProgressFailed)
		return nil, err
	}

	record.MarkCompleted(filepath.Base(filePath))
	o.recordUpdate(record)
	o.progress.Finish(req.ProgressID, ProgressCompleted)

	return &DownloadResult{
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		workspace: workspace,
	}, nil
}

// DownloadBatch downloads several URLs into one workspace and bundles the
// results. Item failures are best-effort: the item is dropped into the
// outcome's Failed list and processing continues. Only a zero-success
// batch is an error.
func (o *Orchestrator) DownloadBatch(ctx context.Context, req domain.BatchRequest) (*DownloadResult, *domain.BatchOutcome, error) {
	if len(req.URLs) == 0 {
		return nil, nil, fmt.Errorf("%w: no URLs provided", domain.ErrInput)
	}
	if !domain.ValidateKind(req.Kind) {
		return nil, nil, fmt.Errorf("%w: unknown media kind %q", domain.ErrInput, req.Kind)
	}
	// Thumbnail resolution scans the workspace for the produced image, which
	// does not compose with a shared batch workspace.
	if req.Kind == domain.KindThumbnail {
		return nil, nil, fmt.Errorf("%w: media kind %q not supported for batch", domain.ErrInput, req.Kind)
	}

	workspace, err := o.newWorkspace()
	if err != nil {
		return nil, nil, err
	}

	outcome := &domain.BatchOutcome{}
	for i, itemURL := range req.URLs {
		if i > 0 && o.download.ItemDelay > 0 {
			select {
			case <-time.After(o.download.ItemDelay):
			case <-ctx.Done():
				os.RemoveAll(workspace)
				return nil, nil, ctx.Err()
			}
		}

		template := fmt.Sprintf("item_%d.%%(ext)s", i+1)
		filePath, err := o.batchItem(ctx, workspace, itemURL, req.Kind, template, i+1)
		if err != nil {
			o.logger.Warn("Batch item dropped",
				zap.String("url", itemURL),
				zap.Error(err))
			outcome.Failed = append(outcome.Failed, domain.BatchFailure{
				URL:    itemURL,
				Reason: err.Error(),
			})
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, filePath)

		percent := float64(i+1) / float64(len(req.URLs)) * 100
		o.progress.Update(req.ProgressID, percent, ProgressDownloading)
	}

	result, err := o.concludeBatch(workspace, outcome)
	if err != nil {
		os.RemoveAll(workspace)
		o.progress.Finish(req.ProgressID, ProgressFailed)
		return nil, outcome, err
	}
	o.progress.Finish(req.ProgressID, ProgressCompleted)
	return result, outcome, nil
}

// concludeBatch picks the response shape: nothing, a single file, or an archive
func (o *Orchestrator) concludeBatch(workspace string, outcome *domain.BatchOutcome) (*DownloadResult, error) {
	switch len(outcome.Succeeded) {
	case 0:
		return nil, domain.ErrNoFiles
	case 1:
		return &DownloadResult{
			FilePath:  outcome.Succeeded[0],
			FileName:  filepath.Base(outcome.Succeeded[0]),
			workspace: workspace,
		}, nil
	default:
		archive, err := Pack(workspace, outcome.Succeeded)
		if err != nil {
			return nil, err
		}
		return &DownloadResult{
			FilePath:  archive,
			FileName:  filepath.Base(archive),
			workspace: workspace,
		}, nil
	}
}

// batchItem handles one batch URL. Unlike the single-item path, image URLs
// here are assumed to already be direct image resources and are fetched
// without consulting the extraction engine.
func (o *Orchestrator) batchItem(ctx context.Context, workspace, itemURL string, kind domain.MediaKind, template string, index int) (string, error) {
	if kind == domain.KindImage {
		dest := filepath.Join(workspace, directImageName(itemURL, index))
		if err := o.fetcher.Fetch(ctx, itemURL, dest); err != nil {
			return "", err
		}
		return dest, nil
	}
	return o.downloadItem(ctx, workspace, itemURL, kind, template)
}

// downloadItem dispatches on the requested kind. The four kinds are a
// closed set with distinct file-resolution strategies: predictable
// extension (video), renamed extension (audio), workspace scan
// (thumbnail), fetch-then-name (image).
func (o *Orchestrator) downloadItem(ctx context.Context, workspace, itemURL string, kind domain.MediaKind, template string) (string, error) {
	switch kind {
	case domain.KindVideo:
		return o.downloadVideo(ctx, workspace, itemURL, template)
	case domain.KindAudio:
		return o.downloadAudio(ctx, workspace, itemURL, template)
	case domain.KindThumbnail:
		return o.downloadThumbnail(ctx, workspace, itemURL, template)
	case domain.KindImage:
		return o.downloadImage(ctx, workspace, itemURL)
	default:
		return "", fmt.Errorf("%w: unknown media kind %q", domain.ErrInput, kind)
	}
}

// downloadVideo asks for a single combined audio+video container, falling
// back to the best available format when no combined match exists.
func (o *Orchestrator) downloadVideo(ctx context.Context, workspace, itemURL, template string) (string, error) {
	reported, err := o.extractor.Download(ctx, itemURL, domain.ExtractOptions{
		Format:         "bestvideo+bestaudio/best",
		OutputTemplate: filepath.Join(workspace, template),
	})
	if err != nil {
		return "", err
	}
	return verifyFile(reported)
}

// downloadAudio downloads the best audio-only stream and has the engine
// transcode it to the configured container. The engine reports the
// pre-transcode filename, so the final path is re-derived from the base
// name rather than trusted.
func (o *Orchestrator) downloadAudio(ctx context.Context, workspace, itemURL, template string) (string, error) {
	reported, err := o.extractor.Download(ctx, itemURL, domain.ExtractOptions{
		Format:         "bestaudio",
		OutputTemplate: filepath.Join(workspace, template),
		ExtractAudio:   true,
		AudioFormat:    o.audio.Format,
		AudioBitrate:   o.audio.Bitrate,
	})
	if err != nil {
		return "", err
	}

	transcoded := strings.TrimSuffix(reported, filepath.Ext(reported)) + "." + o.audio.Format
	return verifyFile(transcoded)
}

// downloadThumbnail skips the main content and persists only the preview
// image, then scans the workspace for it.
func (o *Orchestrator) downloadThumbnail(ctx context.Context, workspace, itemURL, template string) (string, error) {
	_, err := o.extractor.Download(ctx, itemURL, domain.ExtractOptions{
		OutputTemplate: filepath.Join(workspace, template),
		SkipDownload:   true,
		WriteThumbnail: true,
	})
	if err != nil {
		return "", err
	}
	return findImageFile(workspace)
}

// downloadImage resolves the item's gallery through the engine metadata,
// picks the highest-resolution entry and fetches it directly.
func (o *Orchestrator) downloadImage(ctx context.Context, workspace, itemURL string) (string, error) {
	raw, err := o.extractor.ExtractInfo(ctx, itemURL)
	if err != nil {
		return "", err
	}

	item := o.normalizer.Normalize(raw)
	if len(item.Images) == 0 {
		return "", fmt.Errorf("%w: no image urls in metadata for %s", domain.ErrNotFound, itemURL)
	}
	// The engine orders gallery entries lowest resolution first.
	imageURL := item.Images[len(item.Images)-1]

	name := stringField(raw, "id")
	if name == "" {
		name = uuid.New().String()
	}
	dest := filepath.Join(workspace, name+urlExtension(imageURL, ".jpg"))
	if err := o.fetcher.Fetch(ctx, imageURL, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// newWorkspace creates the request-scoped temporary directory
func (o *Orchestrator) newWorkspace() (string, error) {
	workspace, err := os.MkdirTemp(o.download.TempDir, "mediagrab-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	return workspace, nil
}

func (o *Orchestrator) recordCreate(record *domain.FetchRecord) {
	if o.history == nil {
		return
	}
	if err := o.history.Create(record); err != nil {
		o.logger.Warn("Failed to record download", zap.Error(err))
	}
}

func (o *Orchestrator) recordUpdate(record *domain.FetchRecord) {
	if o.history == nil {
		return
	}
	if err := o.history.Update(record); err != nil {
		o.logger.Warn("Failed to update download record", zap.Error(err))
	}
}

// verifyFile checks that a declared-successful operation actually left the
// file on disk
func verifyFile(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, filepath.Base(path))
	}
	return path, nil
}

// findImageFile scans a workspace for the first image-like file
func findImageFile(workspace string) (string, error) {
	entries, err := os.ReadDir(workspace)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, imageExt := range imageExtensions {
			if ext == imageExt {
				return filepath.Join(workspace, entry.Name()), nil
			}
		}
	}
	return "", fmt.Errorf("%w: thumbnail not found", domain.ErrNotFound)
}

// directImageName derives a deterministic local filename for a direct
// image URL, falling back to an indexed name when the URL path is opaque
func directImageName(rawURL string, index int) string {
	if u, err := url.Parse(rawURL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "/" && base != "." {
			return base
		}
	}
	return fmt.Sprintf("image_%d.jpg", index)
}

// urlExtension extracts the file extension from a URL path
func urlExtension(rawURL, fallback string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := path.Ext(u.Path); ext != "" {
			return ext
		}
	}
	return fallback
}
