package domain

import (
	"sort"
	"strconv"
)

// Option is a multiple-choice answer label.
type Option string

const (
	OptionA Option = "A"
	OptionB Option = "B"
	OptionC Option = "C"
	OptionD Option = "D"

	// Skipped marks a question answered with the skip power-up.
	Skipped Option = "SKIP"
)

// OptionLabels lists the valid labels in lexical order.
var OptionLabels = []Option{OptionA, OptionB, OptionC, OptionD}

// Valid reports whether o is one of A-D.
func (o Option) Valid() bool {
	switch o {
	case OptionA, OptionB, OptionC, OptionD:
		return true
	}
	return false
}

// OptionSet holds the four option texts of a question.
type OptionSet struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Text returns the option text for a label, or "" for an unknown label.
func (s OptionSet) Text(o Option) string {
	switch o {
	case OptionA:
		return s.A
	case OptionB:
		return s.B
	case OptionC:
		return s.C
	case OptionD:
		return s.D
	}
	return ""
}

// Question models an MCQ question with exactly one correct option.
type Question struct {
	ID            int       `json:"id"`
	Text          string    `json:"question_text"`
	Options       OptionSet `json:"options"`
	CorrectOption Option    `json:"correct_option"`
}

// ForClient strips the correct option.
func (q Question) ForClient() QuestionForClient {
	return QuestionForClient{
		ID:      q.ID,
		Text:    q.Text,
		OptionA: q.Options.A,
		OptionB: q.Options.B,
		OptionC: q.Options.C,
		OptionD: q.Options.D,
	}
}

// QuestionForClient is the pre-submission view of a question. It has no
// field for the correct option.
type QuestionForClient struct {
	ID      int    `json:"id"`
	Text    string `json:"question_text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}

// AnswerSubmission maps question IDs to the chosen label.
type AnswerSubmission map[int]Option

// ParseAnswerSubmission converts the wire form (string keys) into an
// AnswerSubmission. Keys that are not integers can never match a catalog
// question and are dropped; the returned slice lists them sorted.
func ParseAnswerSubmission(raw map[string]string) (AnswerSubmission, []string) {
	answers := make(AnswerSubmission, len(raw))
	var dropped []string
	for key, value := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			dropped = append(dropped, key)
			continue
		}
		answers[id] = Option(value)
	}
	sort.Strings(dropped)
	return answers, dropped
}

// AnswerCheck is the immediate feedback for a single answer.
type AnswerCheck struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer Option `json:"correctAnswer"`
}

// Badge is the tier awarded for a percentage.
type Badge struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// QuestionResult is the per-question review row of a ScoreResult.
type QuestionResult struct {
	QuestionID    int       `json:"questionId"`
	Question      string    `json:"question"`
	UserAnswer    Option    `json:"userAnswer"`
	CorrectAnswer Option    `json:"correctAnswer"`
	IsCorrect     bool      `json:"isCorrect"`
	Options       OptionSet `json:"options"`
}

// ScoreResult summarizes a scored submission. It is derived, never stored.
type ScoreResult struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	Results        []QuestionResult `json:"results"`
	UserName       string           `json:"userName"`
	Badge          Badge            `json:"badge"`
}

// UserStats are the cumulative counters the client persists under "userStats".
type UserStats struct {
	TotalQuizzes   int      `json:"totalQuizzes"`
	TotalCorrect   int      `json:"totalCorrect"`
	TotalQuestions int      `json:"totalQuestions"`
	CurrentStreak  int      `json:"currentStreak"`
	MaxStreak      int      `json:"maxStreak"`
	PerfectScores  int      `json:"perfectScores"`
	AverageTime    float64  `json:"averageTime"` // seconds per question
	Achievements   []string `json:"achievements"`
}

// HasAchievement reports whether id is already unlocked.
func (s UserStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// PowerUpID identifies a consumable aid.
type PowerUpID string

const (
	PowerUpFiftyFifty   PowerUpID = "fiftyFifty"
	PowerUpExtraTime    PowerUpID = "extraTime"
	PowerUpSkipQuestion PowerUpID = "skipQuestion"
)

// PowerUpCounts holds one counter per power-up.
type PowerUpCounts struct {
	FiftyFifty   int `json:"fiftyFifty"`
	ExtraTime    int `json:"extraTime"`
	SkipQuestion int `json:"skipQuestion"`
}

// Get returns the counter for id; unknown ids read as zero.
func (c PowerUpCounts) Get(id PowerUpID) int {
	switch id {
	case PowerUpFiftyFifty:
		return c.FiftyFifty
	case PowerUpExtraTime:
		return c.ExtraTime
	case PowerUpSkipQuestion:
		return c.SkipQuestion
	}
	return 0
}

// Add returns c with delta added to the counter for id.
func (c PowerUpCounts) Add(id PowerUpID, delta int) PowerUpCounts {
	switch id {
	case PowerUpFiftyFifty:
		c.FiftyFifty += delta
	case PowerUpExtraTime:
		c.ExtraTime += delta
	case PowerUpSkipQuestion:
		c.SkipQuestion += delta
	}
	return c
}

// PowerUpInventory is persisted by the client under "userPowerUps". The
// embedded counts are the available amounts.
type PowerUpInventory struct {
	PowerUpCounts
	UsedThisQuiz PowerUpCounts `json:"usedThisQuiz"`
}

// Difficulty of a daily challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// RewardPowerUps lists granted power-ups; zero counts are omitted on the wire.
type RewardPowerUps struct {
	FiftyFifty   int `json:"fiftyFifty,omitempty"`
	ExtraTime    int `json:"extraTime,omitempty"`
	SkipQuestion int `json:"skipQuestion,omitempty"`
}

// Counts converts the reward into inventory counters.
func (r RewardPowerUps) Counts() PowerUpCounts {
	return PowerUpCounts{FiftyFifty: r.FiftyFifty, ExtraTime: r.ExtraTime, SkipQuestion: r.SkipQuestion}
}

// Reward is granted on completing a daily challenge.
type Reward struct {
	Points   int             `json:"points"`
	PowerUps *RewardPowerUps `json:"powerUps,omitempty"`
}

// DailyChallenge is derived from a calendar date; only Completed comes from
// persisted state.
type DailyChallenge struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Theme       string     `json:"theme"`
	Icon        string     `json:"icon"`
	Reward      Reward     `json:"reward"`
	Difficulty  Difficulty `json:"difficulty"`
	Completed   bool       `json:"completed"`
}
