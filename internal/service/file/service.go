package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/presensi-app/presensi-backend-go/internal/pkg/storage"
)

type FileService interface {
	// UploadAttendanceProof stores a check-in/check-out proof photo and
	// returns its storage path
	UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkType string) (string, error)

	// DeleteFile removes a previously uploaded file
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

// UploadAttendanceProof stores the proof photo under
// attendance/{date}/{employeeID}-{checkType}-{id}{ext}.
func (s *fileServiceImpl) UploadAttendanceProof(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string, checkType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	dateStr := date.Format("2006-01-02")
	newFilename := fmt.Sprintf("%s-%s-%s%s", employeeID, checkType, uuid.New().String(), ext)
	path := filepath.Join("attendance", dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
