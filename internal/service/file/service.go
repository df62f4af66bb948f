package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/SonyFebri/hris-backend/internal/pkg/storage"
	"github.com/google/uuid"
)

// FileService stores uploaded documents and hands back public URLs.
type FileService interface {
	Upload(ctx context.Context, file io.Reader, dir, filename, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: fileStorage}
}

// Upload stores the file under a random name to avoid collisions and path
// games with user-supplied filenames; only the extension survives.
func (s *fileServiceImpl) Upload(ctx context.Context, file io.Reader, dir, filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	path := fmt.Sprintf("%s/%s%s", dir, uuid.NewString(), ext)

	stored, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to build file URL: %w", err)
	}
	return url, nil
}

func (s *fileServiceImpl) Delete(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
