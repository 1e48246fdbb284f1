package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prostaff/attendance-backend-go/internal/pkg/storage"
)

// FileService stores captured check-in photos. Photos are opaque blobs; no
// decoding or biometric analysis happens here.
type FileService interface {
	// UploadAttendancePhoto stores a submission photo and returns its path
	UploadAttendancePhoto(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, kind string) (string, error)

	// GetFileURL returns the public URL for a stored photo
	GetFileURL(ctx context.Context, path string) (string, error)

	// DeleteFile removes a stored photo
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadAttendancePhoto(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, kind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	newFilename := fmt.Sprintf("%s-%s%s", kind, uuid.New().String(), ext)
	path := filepath.Join("attendance", employeeID, date.Format("2006-01-02"), newFilename)

	storedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance photo: %w", err)
	}

	return storedPath, nil
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string) (string, error) {
	exists, err := s.storage.Exists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("file not found: %s", path)
	}
	return s.storage.GetURL(ctx, path)
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
