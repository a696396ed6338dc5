package handler

import (
	"io/fs"
	"net/http"
)

// IndexHandler serves the single-page client.
type IndexHandler struct {
	static fs.FS
}

// NewIndexHandler creates an IndexHandler reading index.html from static.
func NewIndexHandler(static fs.FS) *IndexHandler { return &IndexHandler{static: static} }

// Show serves GET /.
func (h *IndexHandler) Show(w http.ResponseWriter, r *http.Request) {
	content, err := fs.ReadFile(h.static, "index.html")
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(content)
}
