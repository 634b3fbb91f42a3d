package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trivia-quiz-service/internal/domain"
)

// CompletionLookup reports whether a challenge id was completed. Completion is
// client-owned state, so callers inject whatever backs it.
type CompletionLookup interface {
	IsCompleted(ctx context.Context, challengeID string) (bool, error)
}

// CompletedSet is a CompletionLookup over ids the client reports.
type CompletedSet map[string]struct{}

// NewCompletedSet builds a set from ids, ignoring blanks.
func NewCompletedSet(ids ...string) CompletedSet {
	set := make(CompletedSet, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// ParseCompletedSet reads a comma separated id list.
func ParseCompletedSet(raw string) CompletedSet {
	if raw == "" {
		return CompletedSet{}
	}
	return NewCompletedSet(strings.Split(raw, ",")...)
}

func (s CompletedSet) IsCompleted(_ context.Context, challengeID string) (bool, error) {
	_, ok := s[challengeID]
	return ok, nil
}

// Generator attaches completion state to derived challenges.
type Generator struct {
	completions CompletionLookup
	now         func() time.Time
}

func NewGenerator(completions CompletionLookup) *Generator {
	return NewGeneratorWithClock(completions, time.Now)
}

// NewGeneratorWithClock is for deterministic tests.
func NewGeneratorWithClock(completions CompletionLookup, now func() time.Time) *Generator {
	if completions == nil {
		completions = CompletedSet{}
	}
	return &Generator{completions: completions, now: now}
}

// ForDate derives the challenge for date and looks up its completion.
func (g *Generator) ForDate(ctx context.Context, date time.Time) (domain.DailyChallenge, error) {
	c := ForDate(date)
	done, err := g.completions.IsCompleted(ctx, c.ID)
	if err != nil {
		return domain.DailyChallenge{}, fmt.Errorf("lookup completion of %s: %w", c.ID, err)
	}
	c.Completed = done
	return c, nil
}

// Today returns the challenge for the current date.
func (g *Generator) Today(ctx context.Context) (domain.DailyChallenge, error) {
	return g.ForDate(ctx, g.now())
}

// HistoryForLastNDays returns the challenges of the last n calendar days,
// today first.
func (g *Generator) HistoryForLastNDays(ctx context.Context, n int) ([]domain.DailyChallenge, error) {
	history := make([]domain.DailyChallenge, 0, max(n, 0))
	today := g.now()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// AddDate keeps calendar semantics across DST changes.
		c, err := g.ForDate(ctx, today.AddDate(0, 0, -i))
		if err != nil {
			return nil, err
		}
		history = append(history, c)
	}
	return history, nil
}
