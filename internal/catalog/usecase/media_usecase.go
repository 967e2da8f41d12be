package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"storefront-api/internal/catalog/domain/model"
	"storefront-api/internal/catalog/domain/repository"
	apperrors "storefront-api/internal/shared/errors"
	"storefront-api/internal/shared/logger"

	"github.com/google/uuid"
)

// allowedImageTypes is checked against BOTH the file extension and the
// declared content type; a file must pass both to be accepted.
var allowedImageTypes = []string{"jpeg", "jpg", "png", "webp"}

// MediaUsecase validates and stores uploaded images and deletes stored ones.
// It knows nothing about records; the admin UI coordinates the two.
type MediaUsecase interface {
	// UploadImages stores every file and returns one URL path per file, in
	// input order. Any invalid file rejects the whole call.
	UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error)

	// DeleteImage removes the stored file a previously returned URL path
	// points at.
	DeleteImage(ctx context.Context, imagePath string) error
}

type mediaUsecase struct {
	mediaRepo repository.MediaRepository
	maxFiles  int
	maxBytes  int64
	logger    logger.Logger
}

// NewMediaUsecase creates the media usecase with the given per-call file
// count cap and per-file size cap in bytes.
func NewMediaUsecase(mediaRepo repository.MediaRepository, maxFiles int, maxBytes int64, log logger.Logger) MediaUsecase {
	return &mediaUsecase{
		mediaRepo: mediaRepo,
		maxFiles:  maxFiles,
		maxBytes:  maxBytes,
		logger:    log.WithComponent("media-usecase"),
	}
}

func (uc *mediaUsecase) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("No files uploaded")
	}
	if len(files) > uc.maxFiles {
		return nil, apperrors.NewInternalError(fmt.Sprintf("Too many files uploaded (max %d)", uc.maxFiles))
	}

	// Validate everything before storing anything so a bad file never leaves
	// a partial batch on disk.
	for _, file := range files {
		if err := uc.validateFile(file); err != nil {
			uc.logger.Warnf("Rejected upload %s: %v", file.Filename, err)
			return nil, err
		}
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		name := uc.storedName(file.Filename)
		if err := uc.mediaRepo.SaveFile(ctx, name, file); err != nil {
			uc.logger.Errorf("Failed to store %s: %v", file.Filename, err)
			return nil, fmt.Errorf("failed to store uploaded file: %w", err)
		}
		paths = append(paths, model.UploadURLPrefix+name)
	}

	uc.logger.Infof("Stored %d uploaded file(s)", len(paths))
	return paths, nil
}

func (uc *mediaUsecase) DeleteImage(ctx context.Context, imagePath string) error {
	if imagePath == "" {
		return apperrors.NewValidationError("Image path is required")
	}

	// A malformed path resolves to a file that does not exist, not an error.
	name := filepath.Base(strings.TrimPrefix(imagePath, model.UploadURLPrefix))
	if name == "." || name == string(filepath.Separator) {
		return apperrors.ErrImageNotFound
	}

	if err := uc.mediaRepo.RemoveFile(ctx, name); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	uc.logger.Infof("Deleted image %s", name)
	return nil
}

// validateFile enforces the dual type check and the size cap.
func (uc *mediaUsecase) validateFile(file *multipart.FileHeader) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	contentType := strings.ToLower(file.Header.Get("Content-Type"))

	extOK := false
	typeOK := false
	for _, allowed := range allowedImageTypes {
		if ext == allowed {
			extOK = true
		}
		if strings.Contains(contentType, allowed) {
			typeOK = true
		}
	}
	if !extOK || !typeOK {
		return apperrors.NewInternalError("Only image files (jpeg, jpg, png, webp) are allowed!")
	}

	if file.Size > uc.maxBytes {
		return apperrors.NewInternalError(fmt.Sprintf("File %s exceeds the %d byte size limit", file.Filename, uc.maxBytes))
	}
	return nil
}

// storedName generates a collision-resistant file name preserving the
// original extension, e.g. product-1717680000000-1a2b3c4d.png.
func (uc *mediaUsecase) storedName(original string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), suffix, strings.ToLower(filepath.Ext(original)))
}
