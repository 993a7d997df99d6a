package types

// Question is a quiz question. Choices are loaded alongside it when
// created but listed through their own endpoint.
type Question struct {
	ID           int      `json:"id" db:"id"`
	QuestionText string   `json:"question_text" db:"question_text"`
	Choices      []Choice `json:"choices,omitempty" db:"-"`
}

// Choice is one answer option for a question. QuestionID is the only
// enforced foreign key in the schema.
type Choice struct {
	ID         int    `json:"id" db:"id"`
	ChoiceText string `json:"choices_text" db:"choice_text"`
	IsCorrect  bool   `json:"is_correct" db:"is_correct"`
	QuestionID int    `json:"question_id" db:"question_id"`
}
