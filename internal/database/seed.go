package database

import (
	"context"

	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"gorm.io/gorm"
)

var DefaultCategories = []string{
	"Science",
	"Art",
	"Geography",
	"History",
	"Entertainment",
	"Sports",
}

// SeedCategories inserts DefaultCategories when the categories table is empty
// and reports how many rows it created.
func SeedCategories(ctx context.Context, db *gorm.DB) (int, error) {
	log := config.WithContext(ctx)
	repo := category.NewRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Infof("Categories already present (%d), skipping seed", count)
		return 0, nil
	}

	created := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		txRepo := category.NewRepository(tx)
		for _, label := range DefaultCategories {
			if err := txRepo.Create(ctx, &category.Category{Type: label}); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Infof("Seeded %d categories", created)
	return created, nil
}
