package quiz

import (
	"github.com/saulo-duarte/trivia-api/internal/question"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(questionRepo question.QuestionRepository) *QuizContainer {
	service := NewService(questionRepo, nil)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
