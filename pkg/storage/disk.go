package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DiskStore writes uploads to the local public directory, served by the
// API under /public.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the upload directories if they do not exist yet.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	for _, dir := range []string{baseDir, filepath.Join(baseDir, "resume"), filepath.Join(baseDir, "profile")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create %s: %w", dir, err)
		}
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(_ context.Context, folder, filename string, data []byte, _ string) (string, error) {
	// filename is generated server-side; Base strips anything unexpected.
	filename = filepath.Base(filename)
	dst := filepath.Join(s.baseDir, folder, filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", dst, err)
	}
	return "/public/" + folder + "/" + filename, nil
}
