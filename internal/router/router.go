package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/trivia-api/internal/apierror"
	"github.com/saulo-duarte/trivia-api/internal/category"
	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/saulo-duarte/trivia-api/internal/middlewares"
	"github.com/saulo-duarte/trivia-api/internal/question"
	"github.com/saulo-duarte/trivia-api/internal/quiz"
)

type RouterConfig struct {
	CorsAllowedOrigin string
	CategoryHandler   *category.Handler
	QuestionHandler   *question.Handler
	QuizHandler       *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.Logger)
	r.Use(middlewares.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsAllowedOrigin))

	r.NotFound(apierror.NotFoundHandler)
	r.MethodNotAllowed(apierror.MethodNotAllowedHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/categories", category.Routes(cfg.CategoryHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

		r.Get("/categories/{categoryId:[0-9]+}/questions", cfg.QuestionHandler.ListByCategory)
	})
	return r
}
