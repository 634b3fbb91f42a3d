package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"

	"trivia-quiz-service/internal/domain"
)

// CatalogRepository loads the question catalog (from cache/backing store).
type CatalogRepository interface {
	GetCatalog(ctx context.Context) ([]domain.Question, error)
}

// Catalog is the read-only question store. It is safe for concurrent use.
type Catalog struct {
	questions []domain.Question // sorted by ID
	byID      map[int]int

	mu   sync.Mutex
	intn func(n int) int
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithRandom makes sampling deterministic for tests.
func WithRandom(r *rand.Rand) CatalogOption {
	return func(c *Catalog) { c.intn = r.IntN }
}

// LoadCatalog fetches questions from repo and validates them. Repositories
// memoize their load, so calling it again yields the same catalog.
func LoadCatalog(ctx context.Context, repo CatalogRepository, opts ...CatalogOption) (*Catalog, error) {
	questions, err := repo.GetCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewCatalog(questions, opts...)
}

// NewCatalog validates questions and builds a Catalog. A corrupt dataset is
// fatal: the bank is static, so retrying cannot help.
func NewCatalog(questions []domain.Question, opts ...CatalogOption) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	sorted := make([]domain.Question, len(questions))
	copy(sorted, questions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int]int, len(sorted))
	for i, q := range sorted {
		if err := validateQuestion(q); err != nil {
			return nil, err
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate question id %d", domain.ErrInvalidCatalog, q.ID)
		}
		byID[q.ID] = i
	}

	c := &Catalog{questions: sorted, byID: byID, intn: rand.IntN}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func validateQuestion(q domain.Question) error {
	if q.ID <= 0 {
		return fmt.Errorf("%w: question id %d must be positive", domain.ErrInvalidCatalog, q.ID)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question %d has no text", domain.ErrInvalidCatalog, q.ID)
	}
	for _, label := range domain.OptionLabels {
		if strings.TrimSpace(q.Options.Text(label)) == "" {
			return fmt.Errorf("%w: question %d option %s is blank", domain.ErrInvalidCatalog, q.ID, label)
		}
	}
	if !q.CorrectOption.Valid() {
		return fmt.Errorf("%w: question %d has correct option %q", domain.ErrInvalidCatalog, q.ID, q.CorrectOption)
	}
	return nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Sample returns n questions drawn without replacement in random order,
// stripped of their correct option. A catalog smaller than n yields all of
// its questions.
func (c *Catalog) Sample(n int) []domain.QuestionForClient {
	if n <= 0 {
		return []domain.QuestionForClient{}
	}
	if n > len(c.questions) {
		n = len(c.questions)
	}

	idx := make([]int, len(c.questions))
	for i := range idx {
		idx[i] = i
	}

	c.mu.Lock()
	// Fisher-Yates, stopping once the first n slots are settled.
	for i := 0; i < n; i++ {
		j := i + c.intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	c.mu.Unlock()

	out := make([]domain.QuestionForClient, n)
	for i := 0; i < n; i++ {
		out[i] = c.questions[idx[i]].ForClient()
	}
	return out
}

// Lookup returns the full question, including its correct option.
func (c *Catalog) Lookup(id int) (domain.Question, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Question{}, domain.NotFound("question", id)
	}
	return c.questions[i], nil
}

// AllWithAnswers returns a copy of every question in ID order.
func (c *Catalog) AllWithAnswers() []domain.Question {
	out := make([]domain.Question, len(c.questions))
	copy(out, c.questions)
	return out
}
