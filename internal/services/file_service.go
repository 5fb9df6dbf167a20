package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"teslo/internal/apperrors"
	"teslo/internal/models"
	"teslo/internal/validation"
	"teslo/pkg/storage"
)

// sniffLen is how many leading bytes are read to detect the content type.
const sniffLen = 3072

// imageTypes maps accepted file extensions to their content type.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// FileService accepts product image uploads and serves them back.
type FileService struct {
	disk   storage.Disk
	logger *zap.Logger
}

// NewFileService creates a new FileService.
func NewFileService(disk storage.Disk, logger *zap.Logger) *FileService {
	return &FileService{disk: disk, logger: logger}
}

// UploadProductImage checks that r holds a jpg, png or gif image and stores it
// under a fresh name. The extension of filename and the sniffed content must agree.
func (s *FileService) UploadProductImage(filename string, r io.Reader) (*models.FileUploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	want, ok := imageTypes[ext]
	if !ok {
		return nil, validation.Invalid("image", "must be a jpg, jpeg, png or gif file")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, validation.Invalid("image", "file is empty")
	}

	if detected := mimetype.Detect(head); !detected.Is(want) {
		s.logger.Warn("Rejected upload with mismatching content",
			zap.String("filename", filename),
			zap.String("detected", detected.String()),
		)
		return nil, validation.Invalid("image", "content is not a "+strings.TrimPrefix(ext, ".")+" image")
	}

	name := uuid.New().String() + ext
	if err := s.disk.Put(name, io.MultiReader(bytes.NewReader(head), r), want); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	s.logger.Info("Product image uploaded", zap.String("reference", name))
	return &models.FileUploadResponse{
		Reference: name,
		SecureURL: s.disk.URL(name),
	}, nil
}

// OpenProductImage returns the stored image and its content type. The caller
// must close the reader.
func (s *FileService) OpenProductImage(name string) (io.ReadCloser, string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, "", fmt.Errorf("image %q %w", name, apperrors.ErrNotFound)
	}
	contentType, ok := imageTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		return nil, "", fmt.Errorf("image %q %w", name, apperrors.ErrNotFound)
	}

	rc, err := s.disk.GetStream(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", fmt.Errorf("image %q %w", name, apperrors.ErrNotFound)
		}
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	return rc, contentType, nil
}
