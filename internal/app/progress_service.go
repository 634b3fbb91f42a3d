package app

import (
	"context"
	"fmt"
	"time"

	"trivia-quiz-service/internal/achievement"
	"trivia-quiz-service/internal/daily"
	"trivia-quiz-service/internal/domain"
)

// MaxHistoryDays bounds challenge history requests to one year.
const MaxHistoryDays = 366

// StatsUpdate is the new stats blob plus what it unlocked.
type StatsUpdate struct {
	Stats           domain.UserStats          `json:"stats"`
	NewAchievements []achievement.Achievement `json:"newAchievements"`
}

// ProgressService folds gameplay events into client-owned stats and derives
// daily challenges. It holds no per-user state.
type ProgressService struct {
	now func() time.Time
}

func NewProgressService() *ProgressService {
	return NewProgressServiceWithClock(time.Now)
}

// NewProgressServiceWithClock is test-only for deterministic dates.
func NewProgressServiceWithClock(now func() time.Time) *ProgressService {
	return &ProgressService{now: now}
}

// AnswerRecorded updates the streak and evaluates achievements.
func (s *ProgressService) AnswerRecorded(stats domain.UserStats, correct bool) StatsUpdate {
	next, unlocked := achievement.Progress(achievement.RecordAnswer(stats, correct))
	return StatsUpdate{Stats: next, NewAchievements: unlocked}
}

// QuizCompleted folds a finished quiz into stats and evaluates achievements.
func (s *ProgressService) QuizCompleted(stats domain.UserStats, outcome achievement.QuizOutcome, elapsed time.Duration) (StatsUpdate, error) {
	if outcome.Score < 0 || outcome.TotalQuestions < 0 || outcome.Score > outcome.TotalQuestions {
		return StatsUpdate{}, domain.InvalidInput("score", fmt.Sprintf("%d of %d is not a valid result", outcome.Score, outcome.TotalQuestions))
	}
	if elapsed < 0 {
		return StatsUpdate{}, domain.InvalidInput("elapsedSeconds", "must not be negative")
	}
	next, unlocked := achievement.Progress(achievement.RecordQuiz(stats, outcome, elapsed))
	return StatsUpdate{Stats: next, NewAchievements: unlocked}, nil
}

// Challenge returns the challenge for date, or today when date is zero.
func (s *ProgressService) Challenge(ctx context.Context, date time.Time, completed daily.CompletionLookup) (domain.DailyChallenge, error) {
	gen := daily.NewGeneratorWithClock(completed, s.now)
	if date.IsZero() {
		return gen.Today(ctx)
	}
	return gen.ForDate(ctx, date)
}

// History returns the last days challenges, today first.
func (s *ProgressService) History(ctx context.Context, days int, completed daily.CompletionLookup) ([]domain.DailyChallenge, error) {
	if days < 1 || days > MaxHistoryDays {
		return nil, domain.InvalidInput("days", fmt.Sprintf("must be between 1 and %d", MaxHistoryDays))
	}
	return daily.NewGeneratorWithClock(completed, s.now).HistoryForLastNDays(ctx, days)
}

// ClaimChallenge grants the reward of the challenge for date (today when
// zero) and returns it marked completed. A challenge the client already
// completed cannot be claimed twice.
func (s *ProgressService) ClaimChallenge(ctx context.Context, date time.Time, completed daily.CompletionLookup, inv domain.PowerUpInventory) (domain.DailyChallenge, domain.PowerUpInventory, error) {
	c, err := s.Challenge(ctx, date, completed)
	if err != nil {
		return domain.DailyChallenge{}, inv, err
	}
	if c.Completed {
		return domain.DailyChallenge{}, inv, domain.InvalidInput("date", fmt.Sprintf("challenge %s already claimed", c.ID))
	}
	c.Completed = true
	return c, daily.ClaimReward(inv, c), nil
}
