package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/memory"
)

// QuestionRow is the bun model of the questions table.
type QuestionRow struct {
	bun.BaseModel `bun:"table:questions"`

	ID            int    `bun:"id,pk"`
	QuestionText  string `bun:"question_text,notnull"`
	OptionA       string `bun:"option_a,notnull"`
	OptionB       string `bun:"option_b,notnull"`
	OptionC       string `bun:"option_c,notnull"`
	OptionD       string `bun:"option_d,notnull"`
	CorrectOption string `bun:"correct_option,notnull"`
}

// RowsFor maps domain questions onto table rows.
func RowsFor(questions []domain.Question) []QuestionRow {
	rows := make([]QuestionRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, QuestionRow{
			ID:            q.ID,
			QuestionText:  q.Text,
			OptionA:       q.Options.A,
			OptionB:       q.Options.B,
			OptionC:       q.Options.C,
			OptionD:       q.Options.D,
			CorrectOption: string(q.CorrectOption),
		})
	}
	return rows
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			rows := RowsFor(memory.DefaultQuestions())
			_, err := db.NewInsert().
				Model(&rows).
				On("CONFLICT (id) DO NOTHING").
				Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			ids := make([]int, 0, 50)
			for _, q := range memory.DefaultQuestions() {
				ids = append(ids, q.ID)
			}
			_, err := db.NewDelete().
				Model((*QuestionRow)(nil)).
				Where("id IN (?)", bun.In(ids)).
				Exec(ctx)
			return err
		},
	)
}
