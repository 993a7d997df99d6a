package store

import (
	"context"
	"database/sql"

	"github.com/partshub/apiserver/types"
)

// QuizRepository handles persistence for quiz questions and choices.
type QuizRepository struct {
	db *sql.DB
}

func NewQuizRepository(db *sql.DB) *QuizRepository {
	return &QuizRepository{db: db}
}

// CreateQuestion inserts a question together with all of its choices in
// a single transaction. Either everything commits or nothing does.
func (r *QuizRepository) CreateQuestion(ctx context.Context, question types.Question) (types.Question, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Question{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const questionQuery = `INSERT INTO questions (question_text) VALUES ($1) RETURNING id`
	if err := tx.QueryRowContext(ctx, questionQuery, question.QuestionText).Scan(&question.ID); err != nil {
		return types.Question{}, err
	}

	const choiceQuery = `
		INSERT INTO choices (choice_text, is_correct, question_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	for i := range question.Choices {
		choice := &question.Choices[i]
		choice.QuestionID = question.ID
		if err := tx.QueryRowContext(ctx, choiceQuery, choice.ChoiceText, choice.IsCorrect, choice.QuestionID).Scan(&choice.ID); err != nil {
			return types.Question{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Question{}, err
	}
	return question, nil
}

func (r *QuizRepository) ListQuestions(ctx context.Context) ([]types.Question, error) {
	const query = `SELECT id, question_text FROM questions ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]types.Question, 0)
	for rows.Next() {
		var question types.Question
		if err := rows.Scan(&question.ID, &question.QuestionText); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, rows.Err()
}

func (r *QuizRepository) ListChoices(ctx context.Context) ([]types.Choice, error) {
	const query = `SELECT id, choice_text, is_correct, question_id FROM choices ORDER BY id`
	return r.listChoices(ctx, query)
}

func (r *QuizRepository) ListChoicesByQuestion(ctx context.Context, questionID int) ([]types.Choice, error) {
	const query = `
		SELECT id, choice_text, is_correct, question_id
		FROM choices
		WHERE question_id = $1
		ORDER BY id`
	return r.listChoices(ctx, query, questionID)
}

func (r *QuizRepository) listChoices(ctx context.Context, query string, args ...any) ([]types.Choice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	choices := make([]types.Choice, 0)
	for rows.Next() {
		var choice types.Choice
		if err := rows.Scan(&choice.ID, &choice.ChoiceText, &choice.IsCorrect, &choice.QuestionID); err != nil {
			return nil, err
		}
		choices = append(choices, choice)
	}
	return choices, rows.Err()
}
