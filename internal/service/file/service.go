package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/pkg/storage"
)

var ErrEmptyExport = errors.New("export has no content")

const (
	KindAttendance = "attendance"
	KindTasks      = "tasks"
)

// StoredFile is where a saved export ended up
type StoredFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type FileService interface {
	// SaveExport stores a generated workbook under <kind>/<name>. An existing
	// file with the same name is kept and the new one gets the export ID appended.
	SaveExport(ctx context.Context, kind string, export report.ExportFile) (StoredFile, error)

	// Generic operations
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(ctx context.Context, key string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// SaveExport implements FileService.
func (s *fileServiceImpl) SaveExport(ctx context.Context, kind string, export report.ExportFile) (StoredFile, error) {
	if len(export.Data) == 0 {
		return StoredFile{}, ErrEmptyExport
	}
	if kind != KindAttendance && kind != KindTasks {
		return StoredFile{}, fmt.Errorf("unknown export kind %q", kind)
	}

	key := path.Join(kind, export.Name)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to check export: %w", err)
	}
	if exists {
		key = path.Join(kind, uniqueName(export))
	}

	uploadedKey, err := s.storage.Upload(ctx, bytes.NewReader(export.Data), key, export.ContentType)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to save export: %w", err)
	}

	url, err := s.storage.GetURL(ctx, uploadedKey)
	if err != nil {
		return StoredFile{}, fmt.Errorf("failed to resolve export URL: %w", err)
	}

	return StoredFile{Key: uploadedKey, URL: url}, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, key string) (string, error) {
	return s.storage.GetURL(ctx, key)
}

// uniqueName inserts the first block of the export ID before the extension.
func uniqueName(export report.ExportFile) string {
	ext := path.Ext(export.Name)
	stem := strings.TrimSuffix(export.Name, ext)
	id, _, _ := strings.Cut(export.ID, "-")
	if id == "" {
		id = "copy"
	}
	return fmt.Sprintf("%s_%s%s", stem, id, ext)
}
