package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"trivia-quiz-service/internal/achievement"
	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/daily"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/powerup"
)

const defaultHistoryDays = 7

func notFoundRoute(r *http.Request) error {
	return domain.NotFound("route", r.Method+" "+r.URL.Path)
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	challenge := r.URL.Query().Get("challenge") == "true"
	questions, err := s.quiz.Questions(r.Context(), challenge)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

type checkAnswerRequest struct {
	QuestionID *int          `json:"questionId"`
	Answer     domain.Option `json:"answer"`
}

func (s *Server) handleCheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req checkAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.QuestionID == nil {
		writeError(w, r, domain.InvalidInput("questionId", "is required"))
		return
	}
	check, err := s.quiz.CheckAnswer(r.Context(), *req.QuestionID, req.Answer)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

type submitRequest struct {
	Answers  json.RawMessage `json:"answers"`
	UserName string          `json:"userName"`
}

// parseAnswers requires answers to be a JSON object of string values.
func parseAnswers(raw json.RawMessage) (map[string]string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, domain.InvalidInput("answers", "is required")
	}
	var answers map[string]string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, domain.InvalidInput("answers", "must be an object of question id to option")
	}
	return answers, nil
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	answers, err := parseAnswers(req.Answers)
	if err != nil {
		writeError(w, r, err)
		return
	}
	result, err := s.quiz.Submit(r.Context(), answers, req.UserName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePowerUps(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"powerUps": powerup.Catalog(),
		"defaults": powerup.Default(),
	})
}

type usePowerUpRequest struct {
	PowerUpID  domain.PowerUpID         `json:"powerUpId"`
	QuestionID *int                     `json:"questionId"`
	Inventory  *domain.PowerUpInventory `json:"inventory"`
}

func (s *Server) handleUsePowerUp(w http.ResponseWriter, r *http.Request) {
	var req usePowerUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.QuestionID == nil {
		writeError(w, r, domain.InvalidInput("questionId", "is required"))
		return
	}
	if req.Inventory == nil {
		writeError(w, r, domain.InvalidInput("inventory", "is required"))
		return
	}
	use, err := s.quiz.UsePowerUp(r.Context(), req.PowerUpID, *req.QuestionID, *req.Inventory)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, use)
}

type inventoryRequest struct {
	Inventory *domain.PowerUpInventory `json:"inventory"`
}

func (s *Server) handleResetPowerUps(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	inv := powerup.Default()
	if req.Inventory != nil {
		inv = *req.Inventory
	}
	writeJSON(w, http.StatusOK, map[string]any{"inventory": powerup.ResetForQuiz(inv)})
}

func (s *Server) handleAchievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"achievements": achievement.Catalog()})
}

type recordAnswerRequest struct {
	Stats   domain.UserStats `json:"stats"`
	Correct *bool            `json:"correct"`
}

func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req recordAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Correct == nil {
		writeError(w, r, domain.InvalidInput("correct", "is required"))
		return
	}
	writeJSON(w, http.StatusOK, s.progress.AnswerRecorded(req.Stats, *req.Correct))
}

type recordQuizRequest struct {
	Stats          domain.UserStats `json:"stats"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     *int             `json:"percentage"`
	ElapsedSeconds float64          `json:"elapsedSeconds"`
}

func (s *Server) handleRecordQuiz(w http.ResponseWriter, r *http.Request) {
	var req recordQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	// The percentage is always derived; a client value is only cross-checked.
	outcome := achievement.QuizOutcome{
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Percentage:     app.Percentage(req.Score, req.TotalQuestions),
	}
	if req.Percentage != nil && *req.Percentage != outcome.Percentage {
		writeError(w, r, domain.InvalidInput("percentage",
			fmt.Sprintf("%d does not match %d of %d (%d)", *req.Percentage, req.Score, req.TotalQuestions, outcome.Percentage)))
		return
	}
	elapsed := time.Duration(req.ElapsedSeconds * float64(time.Second))

	update, err := s.progress.QuizCompleted(req.Stats, outcome, elapsed)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func completedFrom(r *http.Request) daily.CompletedSet {
	return daily.ParseCompletedSet(strings.Join(r.URL.Query()["completed"], ","))
}

// parseDate reads an optional YYYY-MM-DD value; empty means today.
func parseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(daily.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.InvalidInput(field, "must be a date in YYYY-MM-DD form")
	}
	return date, nil
}

func (s *Server) handleDailyChallenge(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate("date", r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	challenge, err := s.progress.Challenge(r.Context(), date, completedFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, challenge)
}

func (s *Server) handleChallengeHistory(w http.ResponseWriter, r *http.Request) {
	days := defaultHistoryDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, domain.InvalidInput("days", "must be an integer"))
			return
		}
		days = n
	}
	history, err := s.progress.History(r.Context(), days, completedFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"challenges": history})
}

type claimRequest struct {
	Date      string                   `json:"date"`
	Completed []string                 `json:"completed"`
	Inventory *domain.PowerUpInventory `json:"inventory"`
}

func (s *Server) handleClaimChallenge(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if req.Inventory == nil {
		writeError(w, r, domain.InvalidInput("inventory", "is required"))
		return
	}
	challenge, inv, err := s.progress.ClaimChallenge(r.Context(), date, daily.NewCompletedSet(req.Completed...), *req.Inventory)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"challenge": challenge, "inventory": inv})
}
