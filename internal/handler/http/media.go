// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"os"
	"strings"
)

const defaultPublicPath = "/storage/"

// publicPath extracts the URL path media files are served under. Absolute
// URLs (a CDN in front of the server) keep only their path component.
func publicPath(publicURL string) string {
	p := publicURL
	if u, err := url.Parse(publicURL); err == nil && u.Host != "" {
		p = u.Path
	}

	p = "/" + strings.Trim(p, "/")
	if p == "/" {
		return defaultPublicPath
	}
	return p + "/"
}

// mediaFiles serves stored uploads read-only. Directory listings are not
// exposed; a directory answers 404 like a missing file.
func (h *Handler) mediaFiles() http.Handler {
	return http.StripPrefix(h.publicPath, http.FileServer(filesOnly{http.Dir(h.mediaDir)}))
}

// filesOnly hides directories from http.FileServer.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if stat.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}

	return file, nil
}
