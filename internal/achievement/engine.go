// Package achievement evaluates client-owned UserStats against a fixed,
// data-only achievement catalog.
package achievement

import (
	"trivia-quiz-service/internal/domain"
)

// Rarity of an achievement.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Achievement is a static catalog entry.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      Rarity `json:"rarity"`
	Rule        Rule   `json:"rule"`
}

// Catalog order is the order Evaluate reports unlocks in.
var catalog = []Achievement{
	{
		ID:          "first_quiz",
		Name:        "Getting Started",
		Description: "Complete your first quiz",
		Icon:        "🎯",
		Rarity:      Common,
		Rule:        Threshold(FieldTotalQuizzes, OpGTE, 1),
	},
	{
		ID:          "streak_3",
		Name:        "On Fire",
		Description: "Get 3 correct answers in a row",
		Icon:        "🔥",
		Rarity:      Common,
		Rule:        Threshold(FieldCurrentStreak, OpGTE, 3),
	},
	{
		ID:          "streak_5",
		Name:        "Hot Streak",
		Description: "Get 5 correct answers in a row",
		Icon:        "⚡",
		Rarity:      Rare,
		Rule:        Threshold(FieldCurrentStreak, OpGTE, 5),
	},
	{
		ID:          "streak_10",
		Name:        "Unstoppable",
		Description: "Get 10 correct answers in a row",
		Icon:        "💫",
		Rarity:      Epic,
		Rule:        Threshold(FieldCurrentStreak, OpGTE, 10),
	},
	{
		ID:          "perfect_score",
		Name:        "Perfectionist",
		Description: "Score 100% on a quiz",
		Icon:        "👑",
		Rarity:      Rare,
		Rule:        Threshold(FieldPerfectScores, OpGTE, 1),
	},
	{
		ID:          "speed_demon",
		Name:        "Speed Demon",
		Description: "Average less than 15 seconds per question",
		Icon:        "🏃‍♂️",
		Rarity:      Epic,
		// A fresh player averages 0s; require answered questions first.
		Rule: All(
			Threshold(FieldTotalQuestions, OpGT, 0),
			Threshold(FieldAverageTime, OpLT, 15),
		),
	},
	{
		ID:          "quiz_master",
		Name:        "Quiz Master",
		Description: "Complete 10 quizzes",
		Icon:        "🎓",
		Rarity:      Legendary,
		Rule:        Threshold(FieldTotalQuizzes, OpGTE, 10),
	},
}

// Catalog returns a copy of the achievement definitions.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Evaluate returns the achievements stats newly qualifies for, in catalog
// order. Already unlocked ids are never returned and stats is not modified.
func Evaluate(stats domain.UserStats) []Achievement {
	unlocked := []Achievement{}
	for _, a := range catalog {
		if stats.HasAchievement(a.ID) {
			continue
		}
		if a.Rule.Eval(stats) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
