package imagestore

import (
	"context"
	"errors"
	"mime/multipart"
)

// Store persists uploaded image files and returns opaque references the
// catalog hands back to clients. Implementations own the naming scheme; the
// rest of the system treats refs as blobs of text.
type Store interface {
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)
}

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = errors.New("image exceeds the size limit")
