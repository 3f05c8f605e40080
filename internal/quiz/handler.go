package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/apierror"
	"github.com/saulo-duarte/trivia-api/internal/config"
	util "github.com/saulo-duarte/trivia-api/internal/utils"
)

var ErrMissingQuizCategory = errors.New("quiz_category is required")

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req NextQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid quiz request body")
		apierror.Write(w, r, apierror.BadRequest(err))
		return
	}
	if req.QuizCategory == nil {
		apierror.Write(w, r, apierror.BadRequest(ErrMissingQuizCategory))
		return
	}

	q, err := h.service.NextQuestion(r.Context(), req.QuizCategory.ID.Int(), util.Ints(req.PreviousQuestions))
	if err != nil {
		apierror.Write(w, r, apierror.Internal(err))
		return
	}

	config.JSON(w, http.StatusOK, NextQuestionResponse{
		Success:  true,
		Question: q,
	})
}
