package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/logger"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var questionColumns = []string{
	"id", "question_text", "option_a", "option_b", "option_c", "option_d", "correct_option",
}

// CatalogLoader reads the questions table.
type CatalogLoader struct {
	db *sql.DB
}

func NewCatalogLoader(db *sql.DB) *CatalogLoader {
	return &CatalogLoader{db: db}
}

func (l *CatalogLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("sqlite")

	query, args, err := sqlBuilder.Select(questionColumns...).From("questions").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load questions: %v", err)
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			q       domain.Question
			correct string
		)
		if err := rows.Scan(&q.ID, &q.Text, &q.Options.A, &q.Options.B, &q.Options.C, &q.Options.D, &correct); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.CorrectOption = domain.Option(correct)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	log.Debug("loaded %d questions", len(questions))
	return questions, nil
}

// Seed inserts questions, ignoring ids that already exist, and returns the
// number of rows written.
func Seed(ctx context.Context, db *sql.DB, questions []domain.Question) (int64, error) {
	if len(questions) == 0 {
		return 0, nil
	}
	insert := sqlBuilder.Insert("questions").Columns(questionColumns...)
	for _, q := range questions {
		insert = insert.Values(q.ID, q.Text, q.Options.A, q.Options.B, q.Options.C, q.Options.D, string(q.CorrectOption))
	}
	query, args, err := insert.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("seed questions: %w", err)
	}
	return res.RowsAffected()
}
