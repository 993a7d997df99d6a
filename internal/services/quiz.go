package services

import (
	"context"

	"github.com/partshub/apiserver/types"
)

// QuizRepository defines persistence operations for quiz questions and
// choices. CreateQuestion must be atomic across the question and all
// of its choices.
type QuizRepository interface {
	CreateQuestion(ctx context.Context, question types.Question) (types.Question, error)
	ListQuestions(ctx context.Context) ([]types.Question, error)
	ListChoices(ctx context.Context) ([]types.Choice, error)
	ListChoicesByQuestion(ctx context.Context, questionID int) ([]types.Choice, error)
}

// QuizService encapsulates quiz use-cases.
type QuizService struct {
	repo QuizRepository
}

func NewQuizService(repo QuizRepository) *QuizService {
	return &QuizService{repo: repo}
}

func (s *QuizService) CreateQuestion(ctx context.Context, question types.Question) (types.Question, error) {
	return s.repo.CreateQuestion(ctx, question)
}

func (s *QuizService) ListQuestions(ctx context.Context) ([]types.Question, error) {
	return s.repo.ListQuestions(ctx)
}

func (s *QuizService) ListChoices(ctx context.Context) ([]types.Choice, error) {
	return s.repo.ListChoices(ctx)
}

func (s *QuizService) ListChoicesByQuestion(ctx context.Context, questionID int) ([]types.Choice, error) {
	return s.repo.ListChoicesByQuestion(ctx, questionID)
}
