package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/types"
)

type fakeQuizRepo struct {
	mu         sync.Mutex
	nextID     int
	questions  []types.Question
	choices    []types.Choice
	failCreate error
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{nextID: 1}
}

func (f *fakeQuizRepo) CreateQuestion(ctx context.Context, question types.Question) (types.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Mirrors the transactional store: on failure nothing is recorded.
	if f.failCreate != nil {
		return types.Question{}, f.failCreate
	}
	question.ID = f.nextID
	f.nextID++
	for i := range question.Choices {
		question.Choices[i].ID = f.nextID
		f.nextID++
		question.Choices[i].QuestionID = question.ID
	}
	f.questions = append(f.questions, question)
	f.choices = append(f.choices, question.Choices...)
	return question, nil
}

func (f *fakeQuizRepo) ListQuestions(ctx context.Context) ([]types.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Question(nil), f.questions...), nil
}

func (f *fakeQuizRepo) ListChoices(ctx context.Context) ([]types.Choice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Choice(nil), f.choices...), nil
}

func (f *fakeQuizRepo) ListChoicesByQuestion(ctx context.Context, questionID int) ([]types.Choice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := make([]types.Choice, 0)
	for _, choice := range f.choices {
		if choice.QuestionID == questionID {
			matched = append(matched, choice)
		}
	}
	return matched, nil
}

func newQuizServer(t *testing.T) (*httptest.Server, *fakeQuizRepo) {
	t.Helper()
	repo := newFakeQuizRepo()
	router := chi.NewRouter()
	QuizRouter(router, services.NewQuizService(repo))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, repo
}

func TestCreateQuestionWithChoices(t *testing.T) {
	srv, _ := newQuizServer(t)

	resp := postJSON(t, srv.URL+"/questions/", QuestionRequest{
		QuestionText: "Which oil grade fits a 1.2 petrol engine?",
		Choices: []ChoiceRequest{
			{ChoiceText: "5W-30", IsCorrect: true},
			{ChoiceText: "10W-60", IsCorrect: false},
		},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create question status = %d, want 201", resp.StatusCode)
	}

	var created types.Question
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode question: %v", err)
	}
	if len(created.Choices) != 2 {
		t.Fatalf("got %d choices, want 2", len(created.Choices))
	}
	for _, choice := range created.Choices {
		if choice.QuestionID != created.ID {
			t.Fatalf("choice question_id = %d, want %d", choice.QuestionID, created.ID)
		}
	}

	listResp, err := http.Get(srv.URL + "/choices/list/")
	if err != nil {
		t.Fatalf("list choices: %v", err)
	}
	defer listResp.Body.Close()
	var choices []types.Choice
	if err := json.NewDecoder(listResp.Body).Decode(&choices); err != nil {
		t.Fatalf("decode choices: %v", err)
	}
	if len(choices) != 2 {
		t.Fatalf("got %d stored choices, want 2", len(choices))
	}
}

func TestCreateQuestionFailureLeavesNothingBehind(t *testing.T) {
	srv, repo := newQuizServer(t)
	repo.failCreate = errors.New("insert failed")

	resp := postJSON(t, srv.URL+"/questions/", QuestionRequest{
		QuestionText: "Orphaned?",
		Choices:      []ChoiceRequest{{ChoiceText: "Yes"}},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	if len(repo.questions) != 0 || len(repo.choices) != 0 {
		t.Fatalf("repo should be untouched, got %d questions, %d choices", len(repo.questions), len(repo.choices))
	}
}

func TestCreateQuestionRejectsEmptyChoiceText(t *testing.T) {
	srv, _ := newQuizServer(t)

	resp := postJSON(t, srv.URL+"/questions/", QuestionRequest{
		QuestionText: "Valid question?",
		Choices:      []ChoiceRequest{{ChoiceText: "  "}},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestListChoicesByQuestion(t *testing.T) {
	srv, _ := newQuizServer(t)

	first := postJSON(t, srv.URL+"/questions/", QuestionRequest{
		QuestionText: "First?",
		Choices:      []ChoiceRequest{{ChoiceText: "A"}, {ChoiceText: "B"}},
	})
	var firstQuestion types.Question
	_ = json.NewDecoder(first.Body).Decode(&firstQuestion)
	first.Body.Close()

	second := postJSON(t, srv.URL+"/questions/", QuestionRequest{
		QuestionText: "Second?",
		Choices:      []ChoiceRequest{{ChoiceText: "C"}},
	})
	second.Body.Close()

	resp, err := http.Get(srv.URL + "/choices/list/" + strconv.Itoa(firstQuestion.ID))
	if err != nil {
		t.Fatalf("list choices: %v", err)
	}
	defer resp.Body.Close()
	var choices []types.Choice
	if err := json.NewDecoder(resp.Body).Decode(&choices); err != nil {
		t.Fatalf("decode choices: %v", err)
	}
	if len(choices) != 2 {
		t.Fatalf("got %d choices for first question, want 2", len(choices))
	}
}

func TestListChoicesEmptyIsNotFound(t *testing.T) {
	srv, _ := newQuizServer(t)

	resp, err := http.Get(srv.URL + "/choices/list/")
	if err != nil {
		t.Fatalf("list choices: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
