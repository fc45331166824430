package app

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yourusername/mediagrab/internal/domain"
)

// ArchiveName is the filename of the batch archive inside the workspace
const ArchiveName = "album.zip"

// Pack bundles the given files into one zip archive in the workspace.
// Entries are named by base name only; same-named files from different
// sources collide and are not deduplicated. Any failure is fatal for the
// request, no partial archive is returned.
func Pack(workspace string, files []string) (string, error) {
	archivePath := filepath.Join(workspace, ArchiveName)
	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPackaging, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addEntry(zw, file); err != nil {
			zw.Close()
			os.Remove(archivePath)
			return "", fmt.Errorf("%w: %v", domain.ErrPackaging, err)
		}
	}
	if err := zw.Close(); err != nil {
		os.Remove(archivePath)
		return "", fmt.Errorf("%w: %v", domain.ErrPackaging, err)
	}

	return archivePath, nil
}

func addEntry(zw *zip.Writer, file string) error {
	in, err := os.Open(file)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(filepath.Base(file))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
