package storage

import "context"

// Store persists uploaded files. The returned path is what profile
// records reference (resumeRef/profileImageRef) and what clients use to
// fetch the file back.
type Store interface {
	// Save writes data under the given folder ("resume" or "profile")
	// and returns the public path of the stored file.
	Save(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}
