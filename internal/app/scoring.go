package app

import (
	"math"
	"strings"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/powerup"
)

const anonymousUser = "Anonymous"

type badgeTier struct {
	min   int
	badge domain.Badge
}

// Evaluated top-down; the first tier whose minimum is met wins.
var badgeLadder = []badgeTier{
	{95, domain.Badge{Name: "Perfect Scholar", Emoji: "🏆", Color: "gold"}},
	{90, domain.Badge{Name: "Quiz Master", Emoji: "👑", Color: "purple"}},
	{80, domain.Badge{Name: "Knowledge Expert", Emoji: "🎓", Color: "blue"}},
	{70, domain.Badge{Name: "Smart Cookie", Emoji: "🍪", Color: "green"}},
	{60, domain.Badge{Name: "Good Learner", Emoji: "📚", Color: "orange"}},
	{50, domain.Badge{Name: "Getting There", Emoji: "🌟", Color: "yellow"}},
}

var fallbackBadge = domain.Badge{Name: "Keep Trying", Emoji: "💪", Color: "red"}

// BadgeFor maps a percentage onto the badge ladder.
func BadgeFor(percentage int) domain.Badge {
	for _, tier := range badgeLadder {
		if percentage >= tier.min {
			return tier.badge
		}
	}
	return fallbackBadge
}

// Percentage returns round(score/total*100), defined as 0 for an empty total.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Scorer checks answers against a Catalog.
type Scorer struct {
	catalog *Catalog
}

func NewScorer(catalog *Catalog) *Scorer {
	return &Scorer{catalog: catalog}
}

// CheckSingleAnswer reports whether chosen is the question's correct option.
func (s *Scorer) CheckSingleAnswer(questionID int, chosen domain.Option) (domain.AnswerCheck, error) {
	q, err := s.catalog.Lookup(questionID)
	if err != nil {
		return domain.AnswerCheck{}, err
	}
	return domain.AnswerCheck{
		Correct:       chosen == q.CorrectOption,
		CorrectAnswer: q.CorrectOption,
	}, nil
}

// ScoreSubmission scores every answered question that exists in the catalog.
// Unknown IDs are left out of both score and total. Skipped questions count as
// correct up to the skip power-up's per-quiz cap, in catalog order; further
// skips are wrong. Results come back in catalog order regardless of map order.
func (s *Scorer) ScoreSubmission(answers domain.AnswerSubmission, userName string) domain.ScoreResult {
	result := domain.ScoreResult{
		Results:  []domain.QuestionResult{},
		UserName: strings.TrimSpace(userName),
	}
	if result.UserName == "" {
		result.UserName = anonymousUser
	}

	if len(answers) > 0 {
		skipsLeft := powerup.MaxUses(domain.PowerUpSkipQuestion)
		for _, q := range s.catalog.questions {
			chosen, ok := answers[q.ID]
			if !ok {
				continue
			}
			correct := chosen == q.CorrectOption
			if chosen == domain.Skipped && skipsLeft > 0 {
				skipsLeft--
				correct = true
			}
			if correct {
				result.Score++
			}
			result.Results = append(result.Results, domain.QuestionResult{
				QuestionID:    q.ID,
				Question:      q.Text,
				UserAnswer:    chosen,
				CorrectAnswer: q.CorrectOption,
				IsCorrect:     correct,
				Options:       q.Options,
			})
		}
	}

	result.TotalQuestions = len(result.Results)
	result.Percentage = Percentage(result.Score, result.TotalQuestions)
	result.Badge = BadgeFor(result.Percentage)
	return result
}
