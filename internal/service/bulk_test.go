package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/service/mocks"
)

type BulkDriverTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client      *mocks.MockGenerator
	suggestions *mocks.MockSuggestionStore
	taxonomies  *mocks.MockTaxonomyStore
	research    *mocks.MockResearchStore
	articles    *mocks.MockArticleStore
	txManager   *mocks.MockTransactionManager
	progress    *mocks.MockProgressReporter

	driver *BulkDriver
	slept  []time.Duration
}

func (s *BulkDriverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockGenerator(s.ctrl)
	s.suggestions = mocks.NewMockSuggestionStore(s.ctrl)
	s.taxonomies = mocks.NewMockTaxonomyStore(s.ctrl)
	s.research = mocks.NewMockResearchStore(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.progress = mocks.NewMockProgressReporter(s.ctrl)
	s.slept = nil

	cfg := config.PipelineConfig{
		SeriesCutoffWords: 3600,
		SeriesPartWords:   1800,
		BulkMaxRetries:    3,
		BulkRetryDelay:    5 * time.Second,
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	researcher := NewResearcher(s.client, s.suggestions, s.taxonomies, s.research, logger)
	editor := NewEditor(s.client, logger)
	writer := NewWriter(s.client, editor, s.research, s.suggestions, s.taxonomies, s.articles, s.txManager, cfg, logger)

	s.driver = NewBulkDriver(researcher, writer, s.suggestions, s.research, cfg, logger)
	s.driver.sleep = func(d time.Duration) { s.slept = append(s.slept, d) }
}

func (s *BulkDriverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBulkDriverTestSuite(t *testing.T) {
	suite.Run(t, new(BulkDriverTestSuite))
}

// expectItemSuccess wires the full research-then-article happy path for one
// short-form suggestion.
func (s *BulkDriverTestSuite) expectItemSuccess(ctx context.Context, suggestionID, researchID, articleID int64) {
	suggestion := &domain.Suggestion{
		ID:         suggestionID,
		TaxonomyID: 7,
		Title:      "Topic",
		Status:     domain.StatusApproved,
	}
	taxonomy := &domain.Taxonomy{ID: 7, Name: "Biographies", ShortForm: true}

	// Research: suggestion + taxonomy lookups, three stages, persist.
	s.suggestions.EXPECT().Get(ctx, suggestionID).Return(suggestion, nil)
	s.taxonomies.EXPECT().Get(ctx, int64(7)).Return(taxonomy, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "research section"}, nil).Times(3)
	s.client.EXPECT().Model().Return("test-model")
	s.research.EXPECT().Create(ctx, gomock.Any()).Return(researchID, nil)

	s.research.EXPECT().UpdateStatus(ctx, researchID, domain.StatusApproved).Return(nil)

	// Article: lookups, outline, one section, excerpt, summary, persist.
	s.research.EXPECT().Get(ctx, researchID).Return(&domain.Research{
		ID: researchID, SuggestionID: suggestionID, Content: "research section",
		Status: domain.StatusApproved,
	}, nil)
	s.suggestions.EXPECT().Get(ctx, suggestionID).Return(suggestion, nil)
	s.taxonomies.EXPECT().Get(ctx, int64(7)).Return(taxonomy, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "## Only\n[END_OUTLINE]"}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "section body"}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "excerpt"}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "summary"}, nil)
	s.client.EXPECT().Model().Return("test-model")
	s.articles.EXPECT().Create(ctx, gomock.Any()).Return(articleID, nil)
}

func (s *BulkDriverTestSuite) TestRun_ProcessesBacklog() {
	ctx := context.Background()

	s.suggestions.EXPECT().ListApprovedWithoutResearch(ctx).Return([]domain.Suggestion{
		{ID: 1, Title: "Topic"},
	}, nil)
	s.expectItemSuccess(ctx, 1, 50, 100)
	s.progress.EXPECT().Update(ctx, float64(100), "processed 1/1 (0 failed)").Return(nil)

	stats, err := s.driver.Run(ctx, s.progress)

	s.NoError(err)
	s.Equal(1, stats.Processed)
	s.Equal(1, stats.Succeeded)
	s.Equal(0, stats.Failed)
}

func (s *BulkDriverTestSuite) TestRun_RetriesThenSkips() {
	ctx := context.Background()

	s.suggestions.EXPECT().ListApprovedWithoutResearch(ctx).Return([]domain.Suggestion{
		{ID: 1, Title: "Broken"},
		{ID: 2, Title: "Fine"},
	}, nil)

	// Item 1 fails on the suggestion lookup on every attempt.
	s.suggestions.EXPECT().Get(ctx, int64(1)).
		Return(nil, errors.New("db down")).Times(3)

	s.expectItemSuccess(ctx, 2, 51, 101)

	s.progress.EXPECT().Update(ctx, float64(50), "processed 1/2 (1 failed)").Return(nil)
	s.progress.EXPECT().Update(ctx, float64(100), "processed 2/2 (1 failed)").Return(nil)

	stats, err := s.driver.Run(ctx, s.progress)

	s.NoError(err)
	s.Equal(2, stats.Processed)
	s.Equal(1, stats.Succeeded)
	s.Equal(1, stats.Failed)
	// Two delays between the three attempts on the failing item.
	s.Equal([]time.Duration{5 * time.Second, 5 * time.Second}, s.slept)
}

func (s *BulkDriverTestSuite) TestRun_EmptyBacklog() {
	ctx := context.Background()

	s.suggestions.EXPECT().ListApprovedWithoutResearch(ctx).Return(nil, nil)

	stats, err := s.driver.Run(ctx, s.progress)

	s.NoError(err)
	s.Equal(0, stats.Processed)
}
