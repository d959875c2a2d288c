package status

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Get("/", h.Root)
	r.Post("/status", h.Create)
	r.Get("/status", h.List)
}
