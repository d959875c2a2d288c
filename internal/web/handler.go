package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

const notFoundPage = "<h1>Quiz app not found</h1>"

type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// Index serves the quiz front-end, re-reading index.html on every request.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(filepath.Join(h.dir, "index.html"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			config.WithContext(r.Context()).WithError(err).Error("Failed to read index.html")
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(notFoundPage))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir))))
}
