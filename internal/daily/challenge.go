// Package daily derives themed daily challenges from calendar dates.
package daily

import (
	"fmt"
	"strings"
	"time"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/powerup"
)

// DateLayout is the ISO calendar date used in challenge ids.
const DateLayout = "2006-01-02"

// Theme is one entry of the theme rotation.
type Theme struct {
	Name        string   `json:"theme"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

var themes = []Theme{
	{Name: "Science", Icon: "🔬", Description: "Test your scientific knowledge", Categories: []string{"science", "biology", "chemistry", "physics"}},
	{Name: "History", Icon: "📚", Description: "Journey through time", Categories: []string{"history", "ancient", "modern"}},
	{Name: "Geography", Icon: "🌍", Description: "Explore the world", Categories: []string{"geography", "countries", "capitals"}},
	{Name: "Technology", Icon: "💻", Description: "Digital age knowledge", Categories: []string{"technology", "computers", "internet"}},
	{Name: "Sports", Icon: "⚽", Description: "Athletic achievements", Categories: []string{"sports", "olympics", "football"}},
	{Name: "Arts & Culture", Icon: "🎨", Description: "Creative expressions", Categories: []string{"art", "music", "literature"}},
	{Name: "Mixed Bag", Icon: "🎲", Description: "A bit of everything", Categories: []string{"general", "mixed"}},
}

var difficulties = []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

var rewards = map[domain.Difficulty]domain.Reward{
	domain.DifficultyEasy: {
		Points:   100,
		PowerUps: &domain.RewardPowerUps{FiftyFifty: 1},
	},
	domain.DifficultyMedium: {
		Points:   200,
		PowerUps: &domain.RewardPowerUps{FiftyFifty: 1, ExtraTime: 1},
	},
	domain.DifficultyHard: {
		Points:   300,
		PowerUps: &domain.RewardPowerUps{FiftyFifty: 2, ExtraTime: 1, SkipQuestion: 1},
	},
}

// Themes returns a copy of the theme rotation.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// RewardFor returns the reward table entry for d.
func RewardFor(d domain.Difficulty) domain.Reward {
	r := rewards[d]
	if r.PowerUps != nil {
		p := *r.PowerUps
		r.PowerUps = &p
	}
	return r
}

// ChallengeID is the persisted key of the challenge for date.
func ChallengeID(date time.Time) string {
	return "daily-" + date.Format(DateLayout)
}

// ForDate derives the challenge for date's calendar day. It is pure; the
// Completed flag is always false.
func ForDate(date time.Time) domain.DailyChallenge {
	dayOfYear := date.YearDay()
	theme := themes[dayOfYear%len(themes)]
	difficulty := difficulties[dayOfYear%len(difficulties)]

	return domain.DailyChallenge{
		ID:          ChallengeID(date),
		Date:        date.Format(DateLayout),
		Title:       theme.Name + " Challenge",
		Description: fmt.Sprintf("%s - %s difficulty", theme.Description, capitalize(string(difficulty))),
		Theme:       theme.Name,
		Icon:        theme.Icon,
		Reward:      RewardFor(difficulty),
		Difficulty:  difficulty,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ClaimReward grants the challenge's power-ups to inv.
func ClaimReward(inv domain.PowerUpInventory, c domain.DailyChallenge) domain.PowerUpInventory {
	if c.Reward.PowerUps == nil {
		return inv
	}
	return powerup.Grant(inv, c.Reward.PowerUps.Counts())
}
