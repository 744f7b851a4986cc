// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Upload is a file received from a client as part of a multipart request.
type Upload struct {
	// Filename is the client-side file name. It is informational only and is
	// never used to build storage paths.
	Filename string

	// Size is the size announced by the multipart header.
	Size int64

	// Content streams the uploaded bytes.
	Content io.Reader
}

// MediaKind selects the storage folder of an attachment.
type MediaKind string

const (
	ProfilePhotos MediaKind = "profile_photos"
	ReviewPhotos  MediaKind = "review_photos"
)
