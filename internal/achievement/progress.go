package achievement

import (
	"time"

	"trivia-quiz-service/internal/domain"
)

// QuizOutcome is the part of a scored quiz that feeds the stats.
type QuizOutcome struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"totalQuestions"`
	Percentage     int `json:"percentage"`
}

// OutcomeOf extracts a QuizOutcome from a ScoreResult.
func OutcomeOf(r domain.ScoreResult) QuizOutcome {
	return QuizOutcome{Score: r.Score, TotalQuestions: r.TotalQuestions, Percentage: r.Percentage}
}

// RecordAnswer extends the streak on a correct answer (including a skip) and
// resets it otherwise.
func RecordAnswer(stats domain.UserStats, correct bool) domain.UserStats {
	stats = clone(stats)
	if !correct {
		stats.CurrentStreak = 0
		return stats
	}
	stats.CurrentStreak++
	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}
	return stats
}

// RecordQuiz folds a completed quiz into the cumulative counters. elapsed is
// the total answering time; the average is kept in seconds per question.
func RecordQuiz(stats domain.UserStats, outcome QuizOutcome, elapsed time.Duration) domain.UserStats {
	stats = clone(stats)
	prevQuestions := stats.TotalQuestions

	stats.TotalQuizzes++
	stats.TotalCorrect += outcome.Score
	stats.TotalQuestions += outcome.TotalQuestions
	if outcome.TotalQuestions > 0 && outcome.Percentage == 100 {
		stats.PerfectScores++
	}

	if stats.TotalQuestions > 0 && outcome.TotalQuestions > 0 {
		totalSeconds := stats.AverageTime*float64(prevQuestions) + elapsed.Seconds()
		stats.AverageTime = totalSeconds / float64(stats.TotalQuestions)
	}
	return stats
}

// Unlock merges the ids of unlocked into stats.
func Unlock(stats domain.UserStats, unlocked []Achievement) domain.UserStats {
	stats = clone(stats)
	for _, a := range unlocked {
		if !stats.HasAchievement(a.ID) {
			stats.Achievements = append(stats.Achievements, a.ID)
		}
	}
	return stats
}

// Progress applies Evaluate and Unlock in one step.
func Progress(stats domain.UserStats) (domain.UserStats, []Achievement) {
	unlocked := Evaluate(stats)
	return Unlock(stats, unlocked), unlocked
}

func clone(stats domain.UserStats) domain.UserStats {
	ids := make([]string, len(stats.Achievements))
	copy(ids, stats.Achievements)
	stats.Achievements = ids
	return stats
}
