// Package storage persists uploaded product images on local disk. Files get
// a random name under the configured directory and are served back by the
// HTTP layer under /uploads/.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type UploadStore struct {
	dir string
}

// NewUploadStore creates the uploads directory if necessary.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (s *UploadStore) Dir() string {
	return s.dir
}

// SaveImage writes one multipart file part to disk and returns the public
// path ("/uploads/<name>") to store on the product.
func (s *UploadStore) SaveImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + name, nil
}
