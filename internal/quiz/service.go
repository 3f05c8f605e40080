package quiz

import (
	"context"
	"math/rand"

	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/question"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

type QuizService interface {
	// NextQuestion returns a random question of categoryID not in previous,
	// or nil when the category is exhausted. categoryID AllCategories draws
	// from every category, which is what the quiz page's "All" option sends.
	NextQuestion(ctx context.Context, categoryID int, previous []int) (*question.Question, error)
}

type quizService struct {
	repo question.QuestionRepository
	pick Picker
}

func NewService(repo question.QuestionRepository, pick Picker) QuizService {
	if pick == nil {
		pick = rand.Intn
	}
	return &quizService{repo: repo, pick: pick}
}

func excludedIDs(previous []int) []uint {
	ids := make([]uint, 0, len(previous))
	for _, id := range previous {
		if id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

func (s *quizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*question.Question, error) {
	log := config.WithContext(ctx).WithField("category_id", categoryID)

	candidates, err := s.repo.ListCandidates(ctx, categoryID, excludedIDs(previous))
	if err != nil {
		log.WithError(err).Error("Failed to list quiz candidates")
		return nil, err
	}
	if len(candidates) == 0 {
		log.Debug("No quiz questions left")
		return nil, nil
	}

	return candidates[s.pick(len(candidates))], nil
}
