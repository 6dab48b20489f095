package storage

import (
	"context"
	"io"
)

// Storage abstracts saving and deleting uploaded assets. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 later.
type Storage interface {
	// Save stores the file under key (a unique path such as
	// "images/<hex>.jpg") and returns its public URL.
	Save(ctx context.Context, key string, data io.Reader) (url string, err error)

	// Delete removes the file for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
