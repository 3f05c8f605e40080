package database_test

import (
	"context"
	"testing"

	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/database"
	"github.com/saulo-duarte/trivia-api/internal/testutil"
)

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := database.Connect(context.Background(), &config.Config{DBDriver: "oracle"})
	if err == nil {
		t.Fatal("Connect should fail for an unsupported driver")
	}
}

func TestSeedCategories(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	created, err := database.SeedCategories(ctx, db)
	if err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	if created != len(database.DefaultCategories) {
		t.Errorf("created = %d, want %d", created, len(database.DefaultCategories))
	}

	categories, err := category.NewRepository(db).ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(categories) != len(database.DefaultCategories) {
		t.Fatalf("len(categories) = %d, want %d", len(categories), len(database.DefaultCategories))
	}
	if categories[0].ID != 1 || categories[0].Type != "Science" {
		t.Errorf("first category = %+v, want {1 Science}", *categories[0])
	}

	t.Run("Idempotent", func(t *testing.T) {
		created, err := database.SeedCategories(ctx, db)
		if err != nil {
			t.Fatalf("SeedCategories: %v", err)
		}
		if created != 0 {
			t.Errorf("second seed created %d rows, want 0", created)
		}
	})
}
