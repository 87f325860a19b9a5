package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// TempFile is an uploaded document written to local storage for the
// duration of one request. Callers must Release it.
type TempFile struct {
	Path string
	Kind DocumentKind
}

func (t *TempFile) Release() {
	if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("path", t.Path).Warn("failed to remove temporary upload")
	}
}

type StorageService interface {
	SaveTemp(file *multipart.FileHeader, kind DocumentKind) (*TempFile, error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveTemp copies the upload to a uuid-named file so concurrent requests
// with identical filenames never share a path.
func (s *storageService) SaveTemp(file *multipart.FileHeader, kind DocumentKind) (*TempFile, error) {
	uniqueFilename := fmt.Sprintf("resume_%s%s", uuid.New().String(), kind.Extension())
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	tmp := &TempFile{Path: filePath, Kind: kind}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		tmp.Release()
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		tmp.Release()
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return tmp, nil
}
