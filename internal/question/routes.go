package question

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListQuestions)
	r.Post("/", h.CreateOrSearch)
	r.Delete("/{id:[0-9]+}", h.DeleteQuestion)
	return r
}
