// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/cineview/cineview-server/internal/service"
	"github.com/cineview/cineview-server/internal/utils"
	"github.com/cineview/cineview-server/internal/validators"
	"github.com/cineview/cineview-server/models"
	"github.com/go-chi/chi/v5"
)

const (
	// maxMultipartMemory is how much of a form is kept in memory before
	// parts spill to temporary files.
	maxMultipartMemory = 4 << 20

	// formOverhead is the body allowance for non-file form fields.
	formOverhead = 1 << 20

	// maxJSONBody bounds plain JSON request bodies.
	maxJSONBody = 1 << 20
)

// identity returns the caller resolved by the auth middleware.
func identity(r *http.Request) (models.Identity, error) {
	id, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, service.ErrUnauthenticated
	}
	return id, nil
}

// pathID parses a positive integer URL parameter. Any failure is reported as
// notFound, since no row can have such an id.
func pathID(r *http.Request, key string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

// movieIDParam parses the {movie_id} URL parameter, reporting a malformed
// value as a field error.
func movieIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "movie_id"), 10, 64)
	if err != nil {
		return 0, validators.FieldError("movie_id", "The movie id field must be an integer.")
	}
	return id, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// decodeJSON reads a bounded JSON body into dst. A well-formed body with a
// value of the wrong type for a field is reported as a field error, the same
// way the multipart forms report it.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	}

	err := utils.DecodeJSON(r, dst)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validators.FieldError(typeErr.Field, typeMessage(typeErr))
	}
	return err
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	attr := strings.ReplaceAll(typeErr.Field, "_", " ")
	if typeErr.Type == nil {
		return fmt.Sprintf("The %s field is invalid.", attr)
	}

	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case reflect.String:
		return fmt.Sprintf("The %s field must be a string.", attr)
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

// form reads typed values from a parsed multipart form. Conversion failures
// are collected as field errors and returned by err.
type form struct {
	r     *http.Request
	errs  *validators.ValidationError
	files []multipart.File
}

// parseForm parses a multipart body whose file lives in fileField. A body
// over the size limit is reported as an oversized file.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request, fileField string) (*form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+formOverhead)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadErr := &service.UploadError{Reason: service.ErrUploadTooLarge, MaxSize: h.maxUploadSize}
			return nil, validators.FieldError(fileField, uploadErr.FieldMessage(fileField))
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}

	return &form{r: r, errs: validators.NewValidationError()}, nil
}

// has reports whether key was sent at all.
func (f *form) has(key string) bool {
	_, ok := f.r.MultipartForm.Value[key]
	return ok
}

// str returns the first value sent as key, "" when absent.
func (f *form) str(key string) string {
	values := f.r.MultipartForm.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// optStr returns nil for an absent key.
func (f *form) optStr(key string) *string {
	if !f.has(key) {
		return nil
	}
	v := f.str(key)
	return &v
}

func (f *form) optInt(key string) *int {
	if !f.has(key) {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(f.str(key)))
	if err != nil {
		f.errs.Add(key, fmt.Sprintf("The %s field must be an integer.", strings.ReplaceAll(key, "_", " ")))
		return nil
	}
	return &v
}

func (f *form) optInt64(key string) *int64 {
	v := f.optInt(key)
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

// file opens the uploaded file sent as key, nil when none was sent.
func (f *form) file(key string) (*models.Upload, error) {
	headers := f.r.MultipartForm.File[key]
	if len(headers) == 0 {
		return nil, nil
	}

	file, err := headers[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}
	f.files = append(f.files, file)

	return &models.Upload{
		Filename: headers[0].Filename,
		Size:     headers[0].Size,
		Content:  file,
	}, nil
}

// err returns the collected conversion errors, if any.
func (f *form) err() error {
	if f.errs.Empty() {
		return nil
	}
	return f.errs
}

// close releases opened files and temporary parts.
func (f *form) close() {
	for _, file := range f.files {
		_ = file.Close()
	}
	_ = f.r.MultipartForm.RemoveAll()
}
