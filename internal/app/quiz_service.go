package app

import (
	"context"
	"fmt"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logger"
	"trivia-quiz-service/internal/powerup"
)

const (
	DefaultSampleSize    = 15
	DefaultChallengeSize = 10
)

// QuizService contains the core quiz use cases.
type QuizService struct {
	catalog       *Catalog
	scorer        *Scorer
	sampleSize    int
	challengeSize int
}

// NewQuizService wires a service over a loaded catalog. Non-positive sizes
// fall back to the defaults.
func NewQuizService(catalog *Catalog, sampleSize, challengeSize int) *QuizService {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	if challengeSize <= 0 {
		challengeSize = DefaultChallengeSize
	}
	return &QuizService{
		catalog:       catalog,
		scorer:        NewScorer(catalog),
		sampleSize:    sampleSize,
		challengeSize: challengeSize,
	}
}

// Questions draws a fresh quiz. Daily challenges are shorter.
func (s *QuizService) Questions(ctx context.Context, challenge bool) ([]domain.QuestionForClient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := s.sampleSize
	if challenge {
		n = s.challengeSize
	}
	return s.catalog.Sample(n), nil
}

// CheckAnswer gives immediate feedback for one question.
func (s *QuizService) CheckAnswer(ctx context.Context, questionID int, answer domain.Option) (domain.AnswerCheck, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnswerCheck{}, err
	}
	// An unknown question is reported before a bad label.
	if _, err := s.catalog.Lookup(questionID); err != nil {
		return domain.AnswerCheck{}, err
	}
	if !answer.Valid() {
		return domain.AnswerCheck{}, domain.InvalidInput("answer", fmt.Sprintf("must be one of A, B, C, D, got %q", answer))
	}
	return s.scorer.CheckSingleAnswer(questionID, answer)
}

// Submit scores a full quiz from its wire form. A nil map means the answers
// field was missing.
func (s *QuizService) Submit(ctx context.Context, raw map[string]string, userName string) (domain.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreResult{}, err
	}
	if raw == nil {
		return domain.ScoreResult{}, domain.InvalidInput("answers", "must be an object of question id to option")
	}

	answers, dropped := domain.ParseAnswerSubmission(raw)
	if len(dropped) > 0 {
		logger.FromContext(ctx).WithField("keys", dropped).Warn("ignoring non-numeric answer keys")
	}
	return s.scorer.ScoreSubmission(answers, userName), nil
}

// PowerUpUse is the outcome of spending a power-up on a question.
type PowerUpUse struct {
	Applied   bool                    `json:"applied"`
	Inventory domain.PowerUpInventory `json:"inventory"`
	Effect    powerup.Effect          `json:"effect"`
}

// UsePowerUp applies id to questionID. An unusable power-up is reported as
// not applied with the inventory unchanged.
func (s *QuizService) UsePowerUp(ctx context.Context, id domain.PowerUpID, questionID int, inv domain.PowerUpInventory) (PowerUpUse, error) {
	if err := ctx.Err(); err != nil {
		return PowerUpUse{}, err
	}
	if _, ok := powerup.Lookup(id); !ok {
		return PowerUpUse{}, domain.InvalidInput("powerUpId", fmt.Sprintf("unknown power-up %q", id))
	}
	q, err := s.catalog.Lookup(questionID)
	if err != nil {
		return PowerUpUse{}, err
	}

	inv, effect, applied := powerup.Activate(id, inv, q.CorrectOption)
	return PowerUpUse{Applied: applied, Inventory: inv, Effect: effect}, nil
}
