package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/mediagrab/internal/domain"
)

// YTDLPExtractor implements domain.Extractor by driving the yt-dlp binary
type YTDLPExtractor struct {
	config *domain.ExtractorConfig
	logger *zap.Logger
}

// NewYTDLPExtractor creates a new yt-dlp extractor client
func NewYTDLPExtractor(config *domain.ExtractorConfig, logger *zap.Logger) *YTDLPExtractor {
	return &YTDLPExtractor{
		config: config,
		logger: logger,
	}
}

// ExtractInfo fetches the raw metadata record for a URL without downloading
func (e *YTDLPExtractor) ExtractInfo(ctx context.Context, url string) (map[string]interface{}, error) {
	args := e.baseArgs()
	args = append(args, "-J", url)

	out, stderr, err := e.run(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrExtraction, stderrTail(stderr, err))
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("%w: unparseable engine output: %v", domain.ErrExtraction, err)
	}
	return raw, nil
}

// Download performs a download with the given options and returns the path
// the engine reports for the produced file.
func (e *YTDLPExtractor) Download(ctx context.Context, url string, opts domain.ExtractOptions) (string, error) {
	args := e.baseArgs()

	if opts.Format != "" {
		args = append(args, "-f", opts.Format)
	}
	if opts.OutputTemplate != "" {
		args = append(args, "-o", opts.OutputTemplate)
	}
	if opts.SkipDownload {
		args = append(args, "--skip-download")
	}
	if opts.WriteThumbnail {
		args = append(args, "--write-thumbnail")
	}
	if opts.ExtractAudio {
		args = append(args, "--extract-audio")
		if opts.AudioFormat != "" {
			args = append(args, "--audio-format", opts.AudioFormat)
		}
		if opts.AudioBitrate != "" {
			args = append(args, "--audio-quality", opts.AudioBitrate+"K")
		}
	}
	if opts.FlatPlaylist {
		args = append(args, "--flat-playlist")
	}

	// Have the engine print the final resolved filename instead of trusting
	// a template expansion on our side. Postprocessors may still change the
	// extension afterwards; callers handle that per kind.
	args = append(args, "--print", "after_move:filepath", "--no-simulate", url)

	out, stderr, err := e.run(ctx, args)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrExtraction, stderrTail(stderr, err))
	}

	// One path per downloaded file, last line wins for single-item requests.
	// In skip-download mode the engine reports no main file; callers resolve
	// the artifact themselves by scanning the workspace.
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	path := strings.TrimSpace(lines[len(lines)-1])
	if path == "" || path == "NA" {
		if opts.SkipDownload {
			return "", nil
		}
		return "", fmt.Errorf("%w: engine reported no output file", domain.ErrExtraction)
	}
	return path, nil
}

// baseArgs builds the argument prefix shared by every invocation
func (e *YTDLPExtractor) baseArgs() []string {
	args := []string{"--quiet", "--no-warnings"}

	if e.config.UserAgent != "" {
		args = append(args, "--user-agent", e.config.UserAgent)
	}
	if e.config.CookieFile != "" && fileExists(e.config.CookieFile) {
		args = append(args, "--cookies", e.config.CookieFile)
	}
	return args
}

// run executes the engine binary and captures stdout/stderr separately
func (e *YTDLPExtractor) run(ctx context.Context, args []string) ([]byte, []byte, error) {
	e.logger.Debug("Running extraction engine",
		zap.String("cmd", ShellEscapeCommand(e.config.Binary, args...)))

	cmd := exec.CommandContext(ctx, e.config.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// stderrTail returns the last stderr line for error surfacing, falling back
// to the exec error itself
func stderrTail(stderr []byte, err error) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return err.Error()
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
