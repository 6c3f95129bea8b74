package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/service/mocks"
)

type SuggestionGeneratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client      *mocks.MockGenerator
	suggestions *mocks.MockSuggestionStore
	taxonomies  *mocks.MockTaxonomyStore
	articles    *mocks.MockArticleStore

	service *SuggestionGenerator
}

func (s *SuggestionGeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockGenerator(s.ctrl)
	s.suggestions = mocks.NewMockSuggestionStore(s.ctrl)
	s.taxonomies = mocks.NewMockTaxonomyStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewSuggestionGenerator(s.client, s.suggestions, s.taxonomies, s.articles, logger)
}

func (s *SuggestionGeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSuggestionGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(SuggestionGeneratorTestSuite))
}

func (s *SuggestionGeneratorTestSuite) TestGenerateSuggestions() {
	ctx := context.Background()

	s.taxonomies.EXPECT().Get(ctx, int64(7)).Return(&domain.Taxonomy{ID: 7, Name: "History"}, nil)
	s.articles.EXPECT().ListSummaries(ctx, int64(7)).Return([]domain.Article{
		{Title: "Existing", AISummary: "already covered"},
	}, nil)

	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `{
			"suggestions": [
				{"title": "New Topic", "main_topic": "mt", "sub_topics": ["a", "b"], "point_of_view": "pov"}
			]
		}`}, nil)
	s.client.EXPECT().Model().Return("test-model")

	s.suggestions.EXPECT().CreateBatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []*domain.Suggestion) error {
			s.Len(batch, 1)
			s.Equal("New Topic", batch[0].Title)
			s.Equal(int64(7), batch[0].TaxonomyID)
			s.Equal(domain.StatusPending, batch[0].Status)
			s.Equal([]string{"a", "b"}, batch[0].SubTopics)
			return nil
		},
	)

	out, err := s.service.GenerateSuggestions(ctx, 7, 1)

	s.NoError(err)
	s.Len(out, 1)
}

func (s *SuggestionGeneratorTestSuite) TestGenerateSuggestions_EmptyResponse() {
	ctx := context.Background()

	s.taxonomies.EXPECT().Get(ctx, int64(7)).Return(&domain.Taxonomy{ID: 7, Name: "History"}, nil)
	s.articles.EXPECT().ListSummaries(ctx, int64(7)).Return(nil, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `{"suggestions": []}`}, nil)

	_, err := s.service.GenerateSuggestions(ctx, 7, 3)

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *SuggestionGeneratorTestSuite) TestGenerateSuggestions_InvalidCount() {
	_, err := s.service.GenerateSuggestions(context.Background(), 7, 0)

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}
