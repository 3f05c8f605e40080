package question_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/trivia-api/internal/question"
)

type stubService struct {
	question.QuestionService
	searched  string
	page      int
	created   *question.CreateQuestionDTO
	createErr error
}

func (s *stubService) SearchQuestions(ctx context.Context, term string, page int) (*question.QuestionPage, error) {
	s.searched, s.page = term, page
	return &question.QuestionPage{
		Questions:       []*question.Question{{ID: 9, Question: "Matched", Category: 2}},
		CurrentCategory: "Science",
		Total:           1,
	}, nil
}

func (s *stubService) CreateQuestion(ctx context.Context, dto question.CreateQuestionDTO) (*question.Question, error) {
	s.created = &dto
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &question.Question{ID: 11}, nil
}

func post(t *testing.T, svc question.QuestionService, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	question.Routes(question.NewHandler(svc)).ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateOrSearch(t *testing.T) {
	t.Run("SearchMode", func(t *testing.T) {
		svc := &stubService{}
		rec := post(t, svc, "/?page=2", `{"searchTerm": "title"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if svc.searched != "title" || svc.page != 2 {
			t.Errorf("search called with (%q, %d)", svc.searched, svc.page)
		}
		if svc.created != nil {
			t.Errorf("search mode must not create a question")
		}

		var body question.SearchQuestionsResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !body.Success || body.TotalQuestions != 1 || body.CurrentCategory != "Science" || len(body.Questions) != 1 {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("CreateModeWithStringNumbers", func(t *testing.T) {
		svc := &stubService{}
		rec := post(t, svc, "/", `{"question": "Q", "answer": "A", "category": "3", "difficulty": 2}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if svc.created == nil || svc.created.Category.Int() != 3 || svc.created.Difficulty.Int() != 2 {
			t.Fatalf("created = %+v", svc.created)
		}
		if !bytes.Contains(rec.Body.Bytes(), []byte(`"created":11`)) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("EmptySearchTermCreates", func(t *testing.T) {
		svc := &stubService{createErr: question.ErrInvalidQuestion}
		rec := post(t, svc, "/", `{"searchTerm": ""}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
		if svc.created == nil {
			t.Errorf("empty searchTerm should fall through to create mode")
		}
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		for _, body := range []string{"", "{", "not json"} {
			if rec := post(t, &stubService{}, "/", body); rec.Code != http.StatusBadRequest {
				t.Errorf("body %q: status = %d, want 400", body, rec.Code)
			}
		}
	})

	t.Run("WrongFieldTypes", func(t *testing.T) {
		for _, body := range []string{
			`{"question": 5, "answer": "A", "category": 1, "difficulty": 1}`,
			`{"question": "Q", "answer": "A", "category": "science", "difficulty": 1}`,
		} {
			if rec := post(t, &stubService{}, "/", body); rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("body %s: status = %d, want 422", body, rec.Code)
			}
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		svc := &stubService{createErr: errors.Join(question.ErrOperationFailed, errors.New("disk full"))}
		rec := post(t, svc, "/", `{"question": "Q", "answer": "A", "category": 1, "difficulty": 1}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want 422", rec.Code)
		}
	})
}

func TestIsMalformedJSON(t *testing.T) {
	var v map[string]any
	err := json.NewDecoder(strings.NewReader(`{"a":`)).Decode(&v)
	if !question.IsMalformedJSON(err) {
		t.Errorf("truncated body should be malformed: %v", err)
	}

	var n struct{ A int }
	err = json.NewDecoder(strings.NewReader(`{"A": "x"}`)).Decode(&n)
	if question.IsMalformedJSON(err) {
		t.Errorf("type mismatch should not count as malformed: %v", err)
	}
}
