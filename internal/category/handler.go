package category

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/apierror"
	"github.com/saulo-duarte/trivia-api/internal/config"
)

type Handler struct {
	service CategoryService
}

func NewHandler(s CategoryService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoCategories) {
			apierror.Write(w, r, apierror.NotFound(err))
			return
		}
		apierror.Write(w, r, apierror.Internal(err))
		return
	}

	config.JSON(w, http.StatusOK, ListCategoriesResponse{
		Success:         true,
		Categories:      ToMap(categories),
		TotalCategories: len(categories),
	})
}
