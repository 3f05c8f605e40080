package question

import (
	"github.com/saulo-duarte/trivia-api/internal/category"
	util "github.com/saulo-duarte/trivia-api/internal/utils"
)

type CreateQuestionDTO struct {
	Question   string        `json:"question" validate:"required"`
	Answer     string        `json:"answer" validate:"required"`
	Category   *util.FlexInt `json:"category" validate:"required"`
	Difficulty *util.FlexInt `json:"difficulty" validate:"required"`
}

// QuestionsRequest is the POST /api/questions body. A non-empty SearchTerm
// selects search mode, otherwise the embedded fields create a question.
type QuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	CreateQuestionDTO
}

func (r QuestionsRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

type QuestionPage struct {
	Questions       []*Question
	Categories      map[uint]string
	CurrentCategory string
	Total           int
}

type CategoryQuestionPage struct {
	Questions       []*Question
	CurrentCategory *category.Category
	Total           int
}

type ListQuestionsResponse struct {
	Success         bool            `json:"success"`
	Questions       []*Question     `json:"questions"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory string          `json:"current_category"`
	TotalQuestions  int             `json:"total_questions"`
}

type SearchQuestionsResponse struct {
	Success         bool        `json:"success"`
	Questions       []*Question `json:"questions"`
	CurrentCategory string      `json:"current_category"`
	TotalQuestions  int         `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []*Question        `json:"questions"`
	CurrentCategory *category.Category `json:"current_category"`
	TotalQuestions  int                `json:"total_questions"`
}

type CreatedResponse struct {
	Success bool `json:"success"`
	Created uint `json:"created"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}
