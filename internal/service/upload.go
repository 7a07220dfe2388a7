package service

import (
	"context"
	"fmt"
	"mime/multipart"

	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/logger"
	"pandoro-backend/internal/storage"

	"github.com/google/uuid"
)

// imageUploader replaces the images attached to users and groups
type imageUploader struct {
	storage storage.Storage
	maxSize int64
}

// replace stores the uploaded image and removes the one it replaces. invalid is returned
// when the upload is not an acceptable image.
func (u imageUploader) replace(ctx context.Context, folder string, ownerID uuid.UUID, file *multipart.FileHeader, current string, invalid error) (string, error) {
	if u.storage == nil {
		return "", apperrors.ErrStorageNotConfigured
	}
	if file == nil || file.Size == 0 || (u.maxSize > 0 && file.Size > u.maxSize) {
		return "", invalid
	}
	contentType := file.Header.Get("Content-Type")
	if !isImage(contentType) {
		return "", invalid
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	url, err := u.storage.Save(ctx, imageKey(folder, ownerID, file.Filename), src, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	u.discard(ctx, current)
	return url, nil
}

// discard removes a previously stored image; failures are only logged
func (u imageUploader) discard(ctx context.Context, url string) {
	if u.storage == nil || url == "" {
		return
	}
	key, ok := u.storage.KeyFromURL(url)
	if !ok {
		return
	}
	if err := u.storage.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("key", key).Warn("Failed to delete replaced image")
	}
}
