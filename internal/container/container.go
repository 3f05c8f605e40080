package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/database"
	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/saulo-duarte/trivia-api/internal/quiz"
	"github.com/saulo-duarte/trivia-api/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	Config            *config.Config
	DB                *gorm.DB
	CategoryContainer *category.CategoryContainer
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
}

// New connects to the store described by cfg and wires every feature.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithDB(cfg, db), nil
}

func NewWithDB(cfg *config.Config, db *gorm.DB) *Container {
	categoryContainer := category.NewCategoryContainer(db)
	questionContainer := question.NewQuestionContainer(db, categoryContainer.Repo, cfg.QuestionsPerPage)
	quizContainer := quiz.NewQuizContainer(questionContainer.Repo)

	return &Container{
		Config:            cfg,
		DB:                db,
		CategoryContainer: categoryContainer,
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		CorsAllowedOrigin: c.Config.CorsAllowedOrigin,
		CategoryHandler:   c.CategoryContainer.Handler,
		QuestionHandler:   c.QuestionContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
	})
}

func (c *Container) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
