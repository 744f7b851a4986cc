// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/cineview/cineview-server/internal/config"
	"github.com/cineview/cineview-server/internal/logger"
	"github.com/cineview/cineview-server/internal/store"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
	"github.com/gabriel-vasile/mimetype"
)

// allowedImageTypes maps accepted MIME types to the extension used for the
// stored file.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// UploadError is returned by [MediaService.Attach] when an upload is
// rejected. It unwraps to one of the ErrUpload* sentinels.
type UploadError struct {
	Reason  error
	MaxSize int64
}

func (e *UploadError) Error() string {
	return e.Reason.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Reason
}

// FieldMessage renders the rejection for the form field it was sent in.
func (e *UploadError) FieldMessage(field string) string {
	label := strings.ReplaceAll(field, "_", " ")

	switch {
	case errors.Is(e.Reason, ErrUploadTooLarge):
		return fmt.Sprintf("The %s field must not be greater than %d kilobytes.", label, e.MaxSize/1024)
	case errors.Is(e.Reason, ErrUploadUnsupported):
		return fmt.Sprintf("The %s field must be a file of type: jpeg, png, jpg.", label)
	default:
		return fmt.Sprintf("The %s field must be an image.", label)
	}
}

// uploadFieldError turns an upload rejection into a validation error on
// field. Other errors are returned unchanged.
func uploadFieldError(field string, err error) error {
	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return validators.FieldError(field, uploadErr.FieldMessage(field))
	}
	return err
}

// mediaService validates image uploads and keeps them in a [store.MediaStorage].
type mediaService struct {
	// storage holds the files.
	storage store.MediaStorage

	// maxSize is the largest accepted upload in bytes.
	maxSize int64

	// publicURL prefixes stored paths in responses, e.g. "/storage/".
	publicURL string

	// defaultPhotoURL is returned by URL for a missing path.
	defaultPhotoURL string

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewMediaService constructs a MediaService over storage configured from
// the file and app settings.
func NewMediaService(storage store.MediaStorage, files config.Files, app config.App, logger *logger.Logger) MediaService {
	return &mediaService{
		storage:         storage,
		maxSize:         files.MaxUploadSize,
		publicURL:       strings.TrimSuffix(files.PublicURL, "/") + "/",
		defaultPhotoURL: app.DefaultProfilePhotoURL,
		uuid:            utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// Attach reads at most maxSize bytes of upload, checks the sniffed content
// type and that the image header decodes, then saves it as
// "<kind>/<uuid>.<ext>".
func (m *mediaService) Attach(ctx context.Context, kind models.MediaKind, upload models.Upload) (string, error) {
	log := logger.FromContext(ctx)

	if upload.Content == nil {
		return "", &UploadError{Reason: ErrUploadNotImage, MaxSize: m.maxSize}
	}
	if upload.Size > m.maxSize {
		return "", &UploadError{Reason: ErrUploadTooLarge, MaxSize: m.maxSize}
	}

	data, err := io.ReadAll(io.LimitReader(upload.Content, m.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > m.maxSize {
		return "", &UploadError{Reason: ErrUploadTooLarge, MaxSize: m.maxSize}
	}
	if len(data) == 0 {
		return "", &UploadError{Reason: ErrUploadNotImage, MaxSize: m.maxSize}
	}

	mtype := mimetype.Detect(data)
	ext, ok := allowedImageTypes[mtype.String()]
	if !ok {
		if strings.HasPrefix(mtype.String(), "image/") {
			return "", &UploadError{Reason: ErrUploadUnsupported, MaxSize: m.maxSize}
		}
		return "", &UploadError{Reason: ErrUploadNotImage, MaxSize: m.maxSize}
	}

	if _, _, err = image.DecodeConfig(bytes.NewReader(data)); err != nil {
		log.Debug().Err(err).Str("mime", mtype.String()).Msg("upload failed to decode")
		return "", &UploadError{Reason: ErrUploadNotImage, MaxSize: m.maxSize}
	}

	path := string(kind) + "/" + m.uuid.Generate() + ext
	if err = m.storage.Save(ctx, path, bytes.NewReader(data)); err != nil {
		log.Err(err).Str("path", path).Msg("failed to store upload")
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return path, nil
}

func (m *mediaService) Remove(ctx context.Context, path *string) error {
	if path == nil || *path == "" {
		return nil
	}

	exists, err := m.storage.Exists(ctx, *path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	return m.storage.Delete(ctx, *path)
}

func (m *mediaService) URL(path *string) string {
	if path == nil || *path == "" {
		return m.defaultPhotoURL
	}
	return m.publicURL + *path
}
