package repository

import (
	"context"
	"mime/multipart"
)

// MediaRepository defines the storage contract for uploaded image files.
// It has no knowledge of records; callers coordinate record and media
// lifecycles explicitly.
type MediaRepository interface {
	// SaveFile stores the uploaded file under the given generated name.
	SaveFile(ctx context.Context, name string, file *multipart.FileHeader) error

	// RemoveFile deletes a stored file by name and returns
	// errors.ErrImageNotFound when no such file exists.
	RemoveFile(ctx context.Context, name string) error
}
