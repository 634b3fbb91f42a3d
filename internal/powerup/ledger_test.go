package powerup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trivia-quiz-service/internal/domain"
)

func TestMaxUses(t *testing.T) {
	assert.Equal(t, 3, MaxUses(domain.PowerUpFiftyFifty))
	assert.Equal(t, 2, MaxUses(domain.PowerUpExtraTime))
	assert.Equal(t, 1, MaxUses(domain.PowerUpSkipQuestion))
	assert.Equal(t, 0, MaxUses("teleport"))
}

func TestCanUse(t *testing.T) {
	inv := Default()
	assert.True(t, CanUse(domain.PowerUpFiftyFifty, inv))
	assert.False(t, CanUse("teleport", inv))

	inv.SkipQuestion = 0
	assert.False(t, CanUse(domain.PowerUpSkipQuestion, inv), "nothing available")

	inv = Default()
	inv.ExtraTime = 10
	inv.UsedThisQuiz.ExtraTime = 2
	assert.False(t, CanUse(domain.PowerUpExtraTime, inv), "per-quiz cap reached")
}

func TestApplyStopsAtCap(t *testing.T) {
	inv := Default()
	inv.FiftyFifty = 10

	for i := 0; i < 5; i++ {
		inv = Apply(domain.PowerUpFiftyFifty, inv)
	}

	assert.Equal(t, 3, inv.UsedThisQuiz.FiftyFifty)
	assert.Equal(t, 10, inv.FiftyFifty, "available counts are not consumed by use")
}

func TestApplyWithoutCanUseIsNoop(t *testing.T) {
	inv := Default()
	inv.SkipQuestion = 0

	assert.Equal(t, inv, Apply(domain.PowerUpSkipQuestion, inv))
	assert.Equal(t, inv, Apply("teleport", inv))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	inv := Default()
	_ = Apply(domain.PowerUpExtraTime, inv)
	assert.Equal(t, 0, inv.UsedThisQuiz.ExtraTime)
}

func TestResetForQuiz(t *testing.T) {
	inv := Default()
	inv = Apply(domain.PowerUpFiftyFifty, inv)
	inv = Apply(domain.PowerUpSkipQuestion, inv)

	reset := ResetForQuiz(inv)
	assert.Equal(t, domain.PowerUpCounts{}, reset.UsedThisQuiz)
	assert.Equal(t, inv.PowerUpCounts, reset.PowerUpCounts)
}

func TestGrant(t *testing.T) {
	inv := Grant(Default(), domain.PowerUpCounts{FiftyFifty: 2, ExtraTime: 1, SkipQuestion: 1})
	assert.Equal(t, domain.PowerUpCounts{FiftyFifty: 5, ExtraTime: 3, SkipQuestion: 2}, inv.PowerUpCounts)
}

func TestEliminateNeverRemovesCorrect(t *testing.T) {
	expected := map[domain.Option][]domain.Option{
		domain.OptionA: {domain.OptionB, domain.OptionC},
		domain.OptionB: {domain.OptionA, domain.OptionC},
		domain.OptionC: {domain.OptionA, domain.OptionB},
		domain.OptionD: {domain.OptionA, domain.OptionB},
	}
	for correct, want := range expected {
		got := Eliminate(correct)
		assert.Equal(t, want, got, "correct=%s", correct)
		assert.Len(t, got, 2)
		assert.NotContains(t, got, correct)
	}
}

func TestActivate(t *testing.T) {
	inv, effect, ok := Activate(domain.PowerUpFiftyFifty, Default(), domain.OptionB)
	assert.True(t, ok)
	assert.Equal(t, []domain.Option{domain.OptionA, domain.OptionC}, effect.Eliminated)
	assert.Equal(t, 1, inv.UsedThisQuiz.FiftyFifty)

	_, effect, ok = Activate(domain.PowerUpExtraTime, Default(), domain.OptionB)
	assert.True(t, ok)
	assert.Equal(t, 15, effect.ExtraTime)

	_, effect, ok = Activate(domain.PowerUpSkipQuestion, Default(), domain.OptionB)
	assert.True(t, ok)
	assert.True(t, effect.Skip)
	assert.Equal(t, domain.Skipped, effect.Answer)

	exhausted := Default()
	exhausted.UsedThisQuiz.SkipQuestion = 1
	after, effect, ok := Activate(domain.PowerUpSkipQuestion, exhausted, domain.OptionB)
	assert.False(t, ok)
	assert.Equal(t, Effect{}, effect)
	assert.Equal(t, exhausted, after)
}
