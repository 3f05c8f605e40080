package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrOperationFailed wraps any store failure on insert or delete.
var ErrOperationFailed = errors.New("question store operation failed")

type QuestionRepository interface {
	ListAll(ctx context.Context) ([]*Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]*Question, error)
	Search(ctx context.Context, term string) ([]*Question, error)
	// ListCandidates returns questions of categoryID (every category when it is 0)
	// whose ids are not in excludeIDs.
	ListCandidates(ctx context.Context, categoryID int, excludeIDs []uint) ([]*Question, error)
	GetByID(ctx context.Context, id uint) (*Question, error)
	Create(ctx context.Context, q *Question) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListAll(ctx context.Context) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListByCategory(ctx context.Context, categoryID int) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *questionRepository) Search(ctx context.Context, term string) ([]*Question, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"

	var questions []*Question
	if err := r.db.WithContext(ctx).
		Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListCandidates(ctx context.Context, categoryID int, excludeIDs []uint) ([]*Question, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []*Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID returns (nil, nil) when no question has the id.
func (r *questionRepository) GetByID(ctx context.Context, id uint) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Create(ctx context.Context, q *Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrOperationFailed, err)
	}
	return nil
}

// Delete reports whether a row was removed.
func (r *questionRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Question{}, "id = ?", id)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", ErrOperationFailed, result.Error)
	}
	return result.RowsAffected > 0, nil
}
