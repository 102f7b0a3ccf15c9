package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edudham/edudham-api/pkg/config"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
	"github.com/edudham/edudham-api/pkg/storage"
)

// UploadedFile describes a stored upload.
type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// MediaService validates and stores image uploads for the editors.
type MediaService struct {
	storage *storage.LocalStorage
	cfg     config.UploadsConfig
	logger  *zap.Logger
}

// NewMediaService creates an instance of MediaService.
func NewMediaService(store *storage.LocalStorage, cfg config.UploadsConfig, logger *zap.Logger) *MediaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaService{storage: store, cfg: cfg, logger: logger}
}

// Upload stores a multipart image and returns its public URL. Only image
// content types are accepted and the size limit from configuration applies.
func (s *MediaService) Upload(header *multipart.FileHeader) (*UploadedFile, error) {
	if header == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no file provided")
	}
	if s.cfg.MaxFileSizeBytes > 0 && header.Size > s.cfg.MaxFileSizeBytes {
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, fmt.Sprintf("file exceeds %d bytes", s.cfg.MaxFileSizeBytes))
	}
	if !s.allowedMIME(header.Header.Get("Content-Type")) {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedMedia, "only image uploads are allowed")
	}

	src, err := header.Open()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload")
	}
	defer src.Close() //nolint:errcheck

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	if _, err := s.storage.SaveStream(filename, io.LimitReader(src, header.Size)); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store upload")
	}

	s.logger.Info("stored upload", zap.String("filename", filename), zap.Int64("size", header.Size))
	return &UploadedFile{
		URL:      path.Join(s.cfg.PublicPath, filename),
		Filename: filename,
	}, nil
}

// Delete removes a previously uploaded file by its stored name.
func (s *MediaService) Delete(filename string) error {
	if filename == "" || strings.Contains(filename, "/") || strings.Contains(filename, "..") {
		return appErrors.Clone(appErrors.ErrValidation, "invalid filename")
	}
	if err := s.storage.Delete(filename); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete upload")
	}
	return nil
}

func (s *MediaService) allowedMIME(contentType string) bool {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if len(s.cfg.AllowedMIMEs) == 0 {
		return strings.HasPrefix(contentType, "image/")
	}
	for _, allowed := range s.cfg.AllowedMIMEs {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if strings.HasSuffix(allowed, "/") {
			if strings.HasPrefix(contentType, allowed) {
				return true
			}
			continue
		}
		if contentType == allowed {
			return true
		}
	}
	return false
}
