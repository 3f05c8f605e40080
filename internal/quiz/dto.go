package quiz

import (
	"github.com/saulo-duarte/trivia-api/internal/question"
	util "github.com/saulo-duarte/trivia-api/internal/utils"
)

// AllCategories as quiz_category.id draws from every category.
const AllCategories = 0

type QuizCategoryDTO struct {
	ID   util.FlexInt `json:"id"`
	Type string       `json:"type"`
}

type NextQuestionRequest struct {
	QuizCategory      *QuizCategoryDTO `json:"quiz_category"`
	PreviousQuestions []util.FlexInt   `json:"previous_questions"`
}

type NextQuestionResponse struct {
	Success  bool               `json:"success"`
	Question *question.Question `json:"question"`
}
