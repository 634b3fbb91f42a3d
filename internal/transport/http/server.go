package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"trivia-quiz-service/internal/app"
)

// Server exposes the quiz use cases over REST and websockets.
type Server struct {
	quiz     *app.QuizService
	progress *app.ProgressService
	ws       *WSHandler
}

func NewServer(quiz *app.QuizService, progress *app.ProgressService) *Server {
	return &Server{
		quiz:     quiz,
		progress: progress,
		ws:       NewWSHandler(quiz),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFoundRoute(r))
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.ws.ServeWS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleQuestions)
		r.Post("/check-answer", s.handleCheckAnswer)
		r.Post("/submit", s.handleSubmit)

		r.Get("/power-ups", s.handlePowerUps)
		r.Post("/power-ups/use", s.handleUsePowerUp)
		r.Post("/power-ups/reset", s.handleResetPowerUps)

		r.Get("/achievements", s.handleAchievements)
		r.Post("/stats/answer", s.handleRecordAnswer)
		r.Post("/stats/quiz", s.handleRecordQuiz)

		r.Get("/daily-challenge", s.handleDailyChallenge)
		r.Get("/daily-challenge/history", s.handleChallengeHistory)
		r.Post("/daily-challenge/claim", s.handleClaimChallenge)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
