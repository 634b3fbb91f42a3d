package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"trivia-quiz-service/internal/app"
	"trivia-quiz-service/internal/daily"
)

type scheduleEntry struct {
	ID          string         `yaml:"id"`
	Date        string         `yaml:"date"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Difficulty  string         `yaml:"difficulty"`
	Points      int            `yaml:"points"`
	PowerUps    map[string]int `yaml:"power_ups,omitempty"`
}

// NewDailyCmd prints the daily challenge schedule without starting a server.
func NewDailyCmd() *cobra.Command {
	var (
		days int
		from string
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the daily challenge schedule as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor := time.Now()
			if from != "" {
				d, err := time.Parse(daily.DateLayout, from)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				anchor = d
			}
			if days < 1 || days > app.MaxHistoryDays {
				return fmt.Errorf("--days must be between 1 and %d", app.MaxHistoryDays)
			}

			gen := daily.NewGeneratorWithClock(nil, func() time.Time { return anchor })
			history, err := gen.HistoryForLastNDays(cmd.Context(), days)
			if err != nil {
				return err
			}

			entries := make([]scheduleEntry, 0, len(history))
			for _, c := range history {
				e := scheduleEntry{
					ID:          c.ID,
					Date:        c.Date,
					Title:       c.Title,
					Description: c.Description,
					Difficulty:  string(c.Difficulty),
					Points:      c.Reward.Points,
				}
				if c.Reward.PowerUps != nil {
					e.PowerUps = map[string]int{}
					for id, n := range map[string]int{
						"fiftyFifty":   c.Reward.PowerUps.FiftyFifty,
						"extraTime":    c.Reward.PowerUps.ExtraTime,
						"skipQuestion": c.Reward.PowerUps.SkipQuestion,
					} {
						if n > 0 {
							e.PowerUps[id] = n
						}
					}
				}
				entries = append(entries, e)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(entries)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "number of days to print, newest first")
	cmd.Flags().StringVar(&from, "date", "", "last day of the schedule (YYYY-MM-DD), defaults to today")
	return cmd
}
