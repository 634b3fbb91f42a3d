package achievement

import (
	"fmt"

	"trivia-quiz-service/internal/domain"
)

// Kind tags a Rule.
type Kind string

const (
	// KindThreshold compares a UserStats field with Value.
	KindThreshold Kind = "threshold"
	// KindCount compares the number of unlocked achievements with Value.
	KindCount Kind = "count"
	// KindAll holds when every sub-rule holds.
	KindAll Kind = "all"
	// KindAny holds when at least one sub-rule holds.
	KindAny Kind = "any"
)

// Field names a numeric UserStats counter.
type Field string

const (
	FieldTotalQuizzes   Field = "totalQuizzes"
	FieldTotalCorrect   Field = "totalCorrect"
	FieldTotalQuestions Field = "totalQuestions"
	FieldCurrentStreak  Field = "currentStreak"
	FieldMaxStreak      Field = "maxStreak"
	FieldPerfectScores  Field = "perfectScores"
	FieldAverageTime    Field = "averageTime"
)

// Op is a comparison operator.
type Op string

const (
	OpGTE Op = "gte"
	OpGT  Op = "gt"
	OpLT  Op = "lt"
	OpLTE Op = "lte"
	OpEQ  Op = "eq"
)

// Rule is a data-only predicate over UserStats.
type Rule struct {
	Kind  Kind    `json:"kind"`
	Field Field   `json:"field,omitempty"`
	Op    Op      `json:"op,omitempty"`
	Value float64 `json:"value,omitempty"`
	Rules []Rule  `json:"rules,omitempty"`
}

// Threshold builds a KindThreshold rule.
func Threshold(field Field, op Op, value float64) Rule {
	return Rule{Kind: KindThreshold, Field: field, Op: op, Value: value}
}

// Count builds a KindCount rule.
func Count(op Op, value float64) Rule {
	return Rule{Kind: KindCount, Op: op, Value: value}
}

// All builds a KindAll rule.
func All(rules ...Rule) Rule {
	return Rule{Kind: KindAll, Rules: rules}
}

// Any builds a KindAny rule.
func Any(rules ...Rule) Rule {
	return Rule{Kind: KindAny, Rules: rules}
}

// Eval reports whether stats satisfies r. Malformed rules never hold.
func (r Rule) Eval(stats domain.UserStats) bool {
	switch r.Kind {
	case KindThreshold:
		v, ok := fieldValue(stats, r.Field)
		return ok && compare(v, r.Op, r.Value)
	case KindCount:
		return compare(float64(len(stats.Achievements)), r.Op, r.Value)
	case KindAll:
		if len(r.Rules) == 0 {
			return false
		}
		for _, sub := range r.Rules {
			if !sub.Eval(stats) {
				return false
			}
		}
		return true
	case KindAny:
		for _, sub := range r.Rules {
			if sub.Eval(stats) {
				return true
			}
		}
		return false
	}
	return false
}

// Validate reports the first structural problem in r.
func (r Rule) Validate() error {
	switch r.Kind {
	case KindThreshold:
		if _, ok := fieldValue(domain.UserStats{}, r.Field); !ok {
			return fmt.Errorf("unknown field %q", r.Field)
		}
		return validateOp(r.Op)
	case KindCount:
		return validateOp(r.Op)
	case KindAll, KindAny:
		if len(r.Rules) == 0 {
			return fmt.Errorf("%s rule has no sub-rules", r.Kind)
		}
		for _, sub := range r.Rules {
			if err := sub.Validate(); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown rule kind %q", r.Kind)
}

func validateOp(op Op) error {
	switch op {
	case OpGTE, OpGT, OpLT, OpLTE, OpEQ:
		return nil
	}
	return fmt.Errorf("unknown operator %q", op)
}

func fieldValue(stats domain.UserStats, field Field) (float64, bool) {
	switch field {
	case FieldTotalQuizzes:
		return float64(stats.TotalQuizzes), true
	case FieldTotalCorrect:
		return float64(stats.TotalCorrect), true
	case FieldTotalQuestions:
		return float64(stats.TotalQuestions), true
	case FieldCurrentStreak:
		return float64(stats.CurrentStreak), true
	case FieldMaxStreak:
		return float64(stats.MaxStreak), true
	case FieldPerfectScores:
		return float64(stats.PerfectScores), true
	case FieldAverageTime:
		return stats.AverageTime, true
	}
	return 0, false
}

func compare(v float64, op Op, target float64) bool {
	switch op {
	case OpGTE:
		return v >= target
	case OpGT:
		return v > target
	case OpLT:
		return v < target
	case OpLTE:
		return v <= target
	case OpEQ:
		return v == target
	}
	return false
}
