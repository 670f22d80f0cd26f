// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the compiled front-end from one directory.
type StaticHandler struct {
	dir    string
	assets http.Handler
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		dir:    dir,
		assets: http.StripPrefix("/static/", http.FileServer(http.Dir(dir))),
	}
}

// Favicon handles GET /favicon.ico
func (h *StaticHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "favicon.ico"))
}

// Assets handles GET /static/... by mapping the rest of the path onto
// the asset directory.
func (h *StaticHandler) Assets(w http.ResponseWriter, r *http.Request) {
	h.assets.ServeHTTP(w, r)
}

// Index handles every other GET with the single-page app's entry
// document; the front-end router takes it from there.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
