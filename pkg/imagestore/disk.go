package imagestore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore saves images under a local directory and serves them back as
// /uploads/... paths. Filenames are uuid-prefixed so repeated uploads of the
// same file never collide.
type DiskStore struct {
	dir     string
	maxSize int64 // bytes; 0 disables the check
}

// NewDisk creates the upload directory if needed and returns a DiskStore.
func NewDisk(dir string, maxSizeMB int) (*DiskStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		maxSize: int64(maxSizeMB) << 20,
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save copies the uploaded file into the upload directory and returns its
// public reference.
func (s *DiskStore) Save(_ context.Context, file *multipart.FileHeader) (string, error) {
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + "_" + filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return "/uploads/" + name, nil
}
