package localdisk

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"storefront-api/internal/catalog/domain/repository"
	apperrors "storefront-api/internal/shared/errors"
	"storefront-api/internal/shared/logger"
)

// MediaStore persists uploaded images as plain files under a single
// directory. It tracks nothing beyond file existence: no versioning, no
// soft delete, no record references.
type MediaStore struct {
	dir string
	log logger.Logger
}

var _ repository.MediaRepository = (*MediaStore)(nil)

// New creates a MediaStore rooted at dir, creating the directory if needed.
func New(dir string, log logger.Logger) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory %s: %w", dir, err)
	}
	return &MediaStore{
		dir: dir,
		log: log.WithComponent("localdisk"),
	}, nil
}

// Dir returns the directory files are stored under.
func (m *MediaStore) Dir() string {
	return m.dir
}

// SaveFile writes the uploaded file under the given generated name.
func (m *MediaStore) SaveFile(ctx context.Context, name string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create stored file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write stored file %s: %w", name, err)
	}
	m.log.WithContext(ctx).Infof("Stored %s as %s", file.Filename, name)
	return nil
}

// RemoveFile deletes a stored file by name.
func (m *MediaStore) RemoveFile(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(m.dir, name))
	if os.IsNotExist(err) {
		return apperrors.ErrImageNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove stored file %s: %w", name, err)
	}
	m.log.WithContext(ctx).Infof("Removed %s", name)
	return nil
}
