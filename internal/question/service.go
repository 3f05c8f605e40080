package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/pagination"
)

// CurrentCategoryID is the category whose label the question listing and
// search report as current_category, whatever the page contains.
const CurrentCategoryID = 1

var (
	ErrQuestionNotFound       = errors.New("question not found")
	ErrNoQuestions            = errors.New("no questions on the requested page")
	ErrInvalidQuestion        = errors.New("invalid question")
	ErrCurrentCategoryMissing = fmt.Errorf("category %d does not exist", CurrentCategoryID)
	ErrCategoryNotFound       = category.ErrCategoryNotFound
)

type QuestionService interface {
	ListQuestions(ctx context.Context, page int) (*QuestionPage, error)
	SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error)
	ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionPage, error)
	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	repo         QuestionRepository
	categoryRepo category.CategoryRepository
	validate     *validator.Validate
	perPage      int
}

func NewService(repo QuestionRepository, categoryRepo category.CategoryRepository, perPage int) QuestionService {
	return &questionService{
		repo:         repo,
		categoryRepo: categoryRepo,
		validate:     validator.New(),
		perPage:      perPage,
	}
}

func (s *questionService) categories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return category.ToMap(categories), nil
}

func (s *questionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	log := config.WithContext(ctx)

	questions, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		return nil, err
	}

	current := pagination.Paginate(questions, page, s.perPage)
	if len(current) == 0 {
		return nil, ErrNoQuestions
	}

	categories, err := s.categories(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	currentCategory, ok := categories[CurrentCategoryID]
	if !ok {
		log.Error("Current category is missing from the store")
		return nil, ErrCurrentCategoryMissing
	}

	return &QuestionPage{
		Questions:       current,
		Categories:      categories,
		CurrentCategory: currentCategory,
		Total:           len(questions),
	}, nil
}

func (s *questionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	log := config.WithContext(ctx).WithField("search_term", term)

	matches, err := s.repo.Search(ctx, term)
	if err != nil {
		log.WithError(err).Error("Failed to search questions")
		return nil, err
	}

	current := pagination.Paginate(matches, page, s.perPage)
	if len(current) == 0 {
		return nil, ErrNoQuestions
	}

	categories, err := s.categories(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	currentCategory, ok := categories[CurrentCategoryID]
	if !ok {
		log.Error("Current category is missing from the store")
		return nil, ErrCurrentCategoryMissing
	}

	log.Debugf("Search matched %d questions", len(matches))
	return &QuestionPage{
		Questions:       current,
		CurrentCategory: currentCategory,
		Total:           len(matches),
	}, nil
}

func (s *questionService) ListByCategory(ctx context.Context, categoryID uint, page int) (*CategoryQuestionPage, error) {
	log := config.WithContext(ctx).WithField("category_id", categoryID)

	c, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch category")
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	questions, err := s.repo.ListByCategory(ctx, int(categoryID))
	if err != nil {
		log.WithError(err).Error("Failed to list questions by category")
		return nil, err
	}

	current := pagination.Paginate(questions, page, s.perPage)
	if len(current) == 0 {
		return nil, ErrNoQuestions
	}

	return &CategoryQuestionPage{
		Questions:       current,
		CurrentCategory: c,
		Total:           len(questions),
	}, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	if err := s.validate.StructCtx(ctx, dto); err != nil {
		log.WithError(err).Warn("Rejected invalid question")
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	q := &Question{
		Question:   dto.Question,
		Answer:     dto.Answer,
		Category:   dto.Category.Int(),
		Difficulty: dto.Difficulty.Int(),
	}
	if err := s.repo.Create(ctx, q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID).Info("Question created")
	return q, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question for deletion")
		return fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}
	if !deleted {
		return ErrQuestionNotFound
	}

	log.Info("Question deleted")
	return nil
}
