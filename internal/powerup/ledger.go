// Package powerup implements the power-up ledger as pure functions over a
// client-owned inventory value.
package powerup

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

// ExtraTime is added to the question timer by the extra-time power-up.
const ExtraTime = 15 * time.Second

// PowerUp is a catalog entry.
type PowerUp struct {
	ID          domain.PowerUpID `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Cost        int              `json:"cost"`
	MaxUses     int              `json:"maxUses"`
}

var catalog = []PowerUp{
	{
		ID:          domain.PowerUpFiftyFifty,
		Name:        "50/50",
		Description: "Remove two incorrect answers",
		Icon:        "🎯",
		Cost:        100,
		MaxUses:     3,
	},
	{
		ID:          domain.PowerUpExtraTime,
		Name:        "Extra Time",
		Description: "Add 15 seconds to current question",
		Icon:        "⏰",
		Cost:        150,
		MaxUses:     2,
	},
	{
		ID:          domain.PowerUpSkipQuestion,
		Name:        "Skip Question",
		Description: "Skip current question (counts as correct)",
		Icon:        "⏭️",
		Cost:        200,
		MaxUses:     1,
	},
}

// Catalog returns a copy of the power-up definitions.
func Catalog() []PowerUp {
	out := make([]PowerUp, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a power-up by id.
func Lookup(id domain.PowerUpID) (PowerUp, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return PowerUp{}, false
}

// MaxUses is the per-quiz cap for id; unknown ids have none.
func MaxUses(id domain.PowerUpID) int {
	p, ok := Lookup(id)
	if !ok {
		return 0
	}
	return p.MaxUses
}

// Default is the starting inventory of a new player.
func Default() domain.PowerUpInventory {
	return domain.PowerUpInventory{
		PowerUpCounts: domain.PowerUpCounts{FiftyFifty: 3, ExtraTime: 2, SkipQuestion: 1},
	}
}

// CanUse reports whether id is available and under its per-quiz cap.
func CanUse(id domain.PowerUpID, inv domain.PowerUpInventory) bool {
	limit := MaxUses(id)
	if limit == 0 {
		return false
	}
	return inv.Get(id) > 0 && inv.UsedThisQuiz.Get(id) < limit
}

// Apply records one use of id. It is a no-op when CanUse is false.
func Apply(id domain.PowerUpID, inv domain.PowerUpInventory) domain.PowerUpInventory {
	if !CanUse(id, inv) {
		return inv
	}
	inv.UsedThisQuiz = inv.UsedThisQuiz.Add(id, 1)
	return inv
}

// ResetForQuiz clears the per-quiz usage; available counts are kept.
func ResetForQuiz(inv domain.PowerUpInventory) domain.PowerUpInventory {
	inv.UsedThisQuiz = domain.PowerUpCounts{}
	return inv
}

// Grant adds externally awarded power-ups to the available counts.
func Grant(inv domain.PowerUpInventory, grant domain.PowerUpCounts) domain.PowerUpInventory {
	inv.PowerUpCounts = domain.PowerUpCounts{
		FiftyFifty:   inv.FiftyFifty + grant.FiftyFifty,
		ExtraTime:    inv.ExtraTime + grant.ExtraTime,
		SkipQuestion: inv.SkipQuestion + grant.SkipQuestion,
	}
	return inv
}

// Eliminate picks the two incorrect labels removed by 50/50: the first two of
// A-D that are not correct.
func Eliminate(correct domain.Option) []domain.Option {
	out := make([]domain.Option, 0, 2)
	for _, label := range domain.OptionLabels {
		if label == correct {
			continue
		}
		out = append(out, label)
		if len(out) == 2 {
			break
		}
	}
	return out
}

// Effect is what the caller must do after a power-up is applied.
type Effect struct {
	Eliminated []domain.Option `json:"eliminated,omitempty"`
	ExtraTime  int             `json:"extraTimeSeconds,omitempty"`
	Skip       bool            `json:"skip,omitempty"`
	Answer     domain.Option   `json:"answer,omitempty"`
}

// Activate applies id and describes its side effect for a question whose
// correct option is correct. ok is false when the power-up was not usable.
func Activate(id domain.PowerUpID, inv domain.PowerUpInventory, correct domain.Option) (domain.PowerUpInventory, Effect, bool) {
	if !CanUse(id, inv) {
		return inv, Effect{}, false
	}
	inv = Apply(id, inv)

	var effect Effect
	switch id {
	case domain.PowerUpFiftyFifty:
		effect.Eliminated = Eliminate(correct)
	case domain.PowerUpExtraTime:
		effect.ExtraTime = int(ExtraTime / time.Second)
	case domain.PowerUpSkipQuestion:
		effect.Skip = true
		effect.Answer = domain.Skipped
	}
	return inv, effect, true
}
