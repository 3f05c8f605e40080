package category

import (
	"context"
	"errors"

	"github.com/saulo-duarte/trivia-api/internal/config"
)

var (
	ErrNoCategories     = errors.New("no categories found")
	ErrCategoryNotFound = errors.New("category not found")
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*Category, error)
}

type categoryService struct {
	repo CategoryRepository
}

func NewService(repo CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*Category, error) {
	log := config.WithContext(ctx)

	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	return categories, nil
}
