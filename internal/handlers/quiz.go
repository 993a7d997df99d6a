package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/partshub/apiserver/internal/services"
	"github.com/partshub/apiserver/types"
)

// QuizHandler provides HTTP handlers for quiz questions and choices.
type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizRouter registers quiz routes.
func QuizRouter(r chi.Router, quizService *services.QuizService) {
	handler := NewQuizHandler(quizService)

	r.Post("/questions/", handler.CreateQuestion)
	r.Get("/questions/list/", handler.ListQuestions)
	r.Get("/choices/list/", handler.ListChoices)
	r.Get("/choices/list/{questionID}", handler.ListChoicesByQuestion)
}

type ChoiceRequest struct {
	ChoiceText string `json:"choices_text"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionRequest struct {
	QuestionText string          `json:"question_text"`
	Choices      []ChoiceRequest `json:"choices"`
}

// CreateQuestion inserts the question and all of its choices in one
// transaction.
func (h *QuizHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	req.QuestionText = strings.TrimSpace(req.QuestionText)
	if req.QuestionText == "" {
		writeError(w, http.StatusBadRequest, "question_text is required")
		return
	}
	for _, choice := range req.Choices {
		if strings.TrimSpace(choice.ChoiceText) == "" {
			writeError(w, http.StatusBadRequest, "choices_text is required")
			return
		}
	}

	question := types.Question{QuestionText: req.QuestionText}
	for _, choice := range req.Choices {
		question.Choices = append(question.Choices, types.Choice{
			ChoiceText: choice.ChoiceText,
			IsCorrect:  choice.IsCorrect,
		})
	}

	created, err := h.quizService.CreateQuestion(r.Context(), question)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create question")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *QuizHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.quizService.ListQuestions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list questions")
		return
	}
	if len(questions) == 0 {
		writeError(w, http.StatusNotFound, "Question is not found")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *QuizHandler) ListChoices(w http.ResponseWriter, r *http.Request) {
	choices, err := h.quizService.ListChoices(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list choices")
		return
	}
	if len(choices) == 0 {
		writeError(w, http.StatusNotFound, "Choice is not found")
		return
	}
	writeJSON(w, http.StatusOK, choices)
}

func (h *QuizHandler) ListChoicesByQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := parseIDParam(r, "questionID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	choices, err := h.quizService.ListChoicesByQuestion(r.Context(), questionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list choices")
		return
	}
	if len(choices) == 0 {
		writeError(w, http.StatusNotFound, "Choice is not found")
		return
	}
	writeJSON(w, http.StatusOK, choices)
}
