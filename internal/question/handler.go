package question

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-api/internal/apierror"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/pagination"
)

type Handler struct {
	service QuestionService
}

func NewHandler(s QuestionService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrNoQuestions),
		errors.Is(err, ErrCategoryNotFound):
		apierror.Write(w, r, apierror.NotFound(err))
	case errors.Is(err, ErrInvalidQuestion),
		errors.Is(err, ErrOperationFailed):
		apierror.Write(w, r, apierror.Unprocessable(err))
	default:
		apierror.Write(w, r, apierror.Internal(err))
	}
}

// IsMalformedJSON reports whether err means the body was not JSON at all,
// as opposed to JSON carrying values of the wrong type.
func IsMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func parseID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListQuestions(r.Context(), pagination.PageFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, ListQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		Categories:      result.Categories,
		CurrentCategory: result.CurrentCategory,
		TotalQuestions:  result.Total,
	})
}

// CreateOrSearch serves POST /api/questions in search mode when the body has a
// searchTerm and in create mode otherwise.
func (h *Handler) CreateOrSearch(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if IsMalformedJSON(err) {
			apierror.Write(w, r, apierror.BadRequest(err))
			return
		}
		log.WithError(err).Warn("Question payload has invalid field types")
		apierror.Write(w, r, apierror.Unprocessable(err))
		return
	}

	if req.IsSearch() {
		h.search(w, r, *req.SearchTerm)
		return
	}

	q, err := h.service.CreateQuestion(r.Context(), req.CreateQuestionDTO)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, CreatedResponse{
		Success: true,
		Created: q.ID,
	})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, term string) {
	result, err := h.service.SearchQuestions(r.Context(), term, pagination.PageFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		CurrentCategory: result.CurrentCategory,
		TotalQuestions:  result.Total,
	})
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		apierror.Write(w, r, apierror.NotFound(err))
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, DeletedResponse{
		Success: true,
		Deleted: id,
	})
}

func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		apierror.Write(w, r, apierror.NotFound(err))
		return
	}

	result, err := h.service.ListByCategory(r.Context(), categoryID, pagination.PageFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		CurrentCategory: result.CurrentCategory,
		TotalQuestions:  result.Total,
	})
}
