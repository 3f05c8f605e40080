package question

import (
	"github.com/saulo-duarte/trivia-api/internal/category"
	"gorm.io/gorm"
)

type QuestionContainer struct {
	Repo    QuestionRepository
	Service QuestionService
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB, categoryRepo category.CategoryRepository, perPage int) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo, categoryRepo, perPage)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
