package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nzoschke/productivity/internal/storage"
)

var ErrStorageDisabled = errors.New("image storage not configured")

// ImageService stores uploaded cover art and vision board images and
// returns a URL the trackers can keep in their image fields.
type ImageService struct {
	storage storage.Storage
}

// NewImageService accepts a nil storage; uploads then fail with ErrStorageDisabled.
func NewImageService(storage storage.Storage) *ImageService {
	return &ImageService{storage: storage}
}

func (s *ImageService) Enabled() bool {
	return s.storage != nil
}

// Upload saves file under images/<kind>/ and returns its URL.
// File validation should be done by the caller.
func (s *ImageService) Upload(kind string, file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.storage == nil {
		return "", ErrStorageDisabled
	}

	kind = strings.ToLower(strings.TrimSpace(kind))
	switch kind {
	case "goals", "vision", "books":
	default:
		return "", invalid("unknown image kind %q", kind)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	storagePath := path.Join("images", kind, uuid.New().String()+ext)

	err := s.storage.Save(storagePath, file)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return s.storage.URL(storagePath), nil
}
