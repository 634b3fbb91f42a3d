package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/sqlite"
)

type CatalogLoaderSuite struct {
	suite.Suite
	db     *sqlite.DB
	loader *sqlite.CatalogLoader
}

func (s *CatalogLoaderSuite) SetupTest() {
	db, err := sqlite.Open(context.Background(), ":memory:")
	s.Require().NoError(err)
	s.db = db
	s.loader = sqlite.NewCatalogLoader(db.DB)
}

func (s *CatalogLoaderSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *CatalogLoaderSuite) TestOpenSeedsDefaultBank() {
	qs, err := s.loader.LoadCatalog(context.Background())
	s.Require().NoError(err)
	s.Require().Len(qs, 50)

	s.Assert().Equal(1, qs[0].ID)
	s.Assert().Equal("What is the capital of France?", qs[0].Text)
	s.Assert().Equal(domain.OptionC, qs[0].CorrectOption)
	s.Assert().Equal("Paris", qs[0].Options.C)
	s.Assert().Equal(50, qs[49].ID)
}

func (s *CatalogLoaderSuite) TestSeedIgnoresExistingIDs() {
	n, err := sqlite.Seed(context.Background(), s.db.DB, []domain.Question{
		{ID: 1, Text: "dup", Options: domain.OptionSet{A: "a", B: "b", C: "c", D: "d"}, CorrectOption: domain.OptionA},
		{ID: 51, Text: "What is 3 + 3?", Options: domain.OptionSet{A: "5", B: "6", C: "7", D: "8"}, CorrectOption: domain.OptionB},
	})
	s.Require().NoError(err)
	s.Assert().Equal(int64(1), n)

	qs, err := s.loader.LoadCatalog(context.Background())
	s.Require().NoError(err)
	s.Require().Len(qs, 51)
	s.Assert().Equal("What is the capital of France?", qs[0].Text)
	s.Assert().Equal(domain.OptionB, qs[50].CorrectOption)
}

func (s *CatalogLoaderSuite) TestSeedNothing() {
	n, err := sqlite.Seed(context.Background(), s.db.DB, nil)
	s.Require().NoError(err)
	s.Assert().Zero(n)
}

func (s *CatalogLoaderSuite) TestRejectsInvalidCorrectOption() {
	_, err := sqlite.Seed(context.Background(), s.db.DB, []domain.Question{
		{ID: 60, Text: "bad", Options: domain.OptionSet{A: "a", B: "b", C: "c", D: "d"}, CorrectOption: "E"},
	})
	s.Assert().Error(err)
}

func TestCatalogLoaderSuite(t *testing.T) {
	suite.Run(t, new(CatalogLoaderSuite))
}
