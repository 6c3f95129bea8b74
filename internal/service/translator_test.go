package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/service/mocks"
)

type TranslatorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	client       *mocks.MockGenerator
	translations *mocks.MockTranslationStore
	languages    *mocks.MockLanguageStore
	outbox       *mocks.MockOutboxStore
	publisher    *mocks.MockIntentPublisher
	articles     *mocks.MockArticleStore

	service *Translator
}

func (s *TranslatorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.client = mocks.NewMockGenerator(s.ctrl)
	s.translations = mocks.NewMockTranslationStore(s.ctrl)
	s.languages = mocks.NewMockLanguageStore(s.ctrl)
	s.outbox = mocks.NewMockOutboxStore(s.ctrl)
	s.publisher = mocks.NewMockIntentPublisher(s.ctrl)
	s.articles = mocks.NewMockArticleStore(s.ctrl)

	registry := NewHandlerRegistry()
	registry.Register(NewArticleTranslationHandler(s.articles))

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewTranslator(
		s.client,
		registry,
		s.translations,
		s.languages,
		s.outbox,
		s.publisher,
		logger,
	)
}

func (s *TranslatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTranslatorTestSuite(t *testing.T) {
	suite.Run(t, new(TranslatorTestSuite))
}

func (s *TranslatorTestSuite) languagesEnDe() {
	s.languages.EXPECT().Default(gomock.Any()).Return(&domain.Language{Code: "en", IsDefault: true, IsActive: true}, nil)
	s.languages.EXPECT().Active(gomock.Any()).Return([]domain.Language{
		{Code: "en", IsDefault: true, IsActive: true},
		{Code: "de", IsActive: true},
	}, nil)
}

func (s *TranslatorTestSuite) approvedArticle() *domain.Article {
	return &domain.Article{
		ID:      9,
		Title:   "The Silk Road",
		Content: "long content",
		Excerpt: "short excerpt",
		Status:  domain.StatusApproved,
	}
}

func (s *TranslatorTestSuite) TestTranslate_SingleField() {
	ctx := context.Background()
	s.languagesEnDe()

	// Validate, then FieldValue.
	s.articles.EXPECT().Get(ctx, int64(9)).Return(s.approvedArticle(), nil).Times(2)

	s.translations.EXPECT().Get(ctx, "article", int64(9), "title", "en").Return(nil, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "Die Seidenstrasse\n"}, nil)
	s.client.EXPECT().Model().Return("test-model")

	s.translations.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.Translation) error {
			s.Equal("article", tr.EntityType)
			s.Equal(int64(9), tr.EntityID)
			s.Equal("title", tr.Field)
			s.Equal("de", tr.Language)
			s.Equal("Die Seidenstrasse", tr.Content)
			s.Equal("test-model", tr.Model)
			return nil
		},
	)
	s.articles.EXPECT().MarkTranslated(ctx, int64(9)).Return(nil)

	results, err := s.service.Translate(ctx, "article", 9, []string{"title"}, "de")

	s.NoError(err)
	s.Equal(map[string]bool{"title": true}, results)
}

func (s *TranslatorTestSuite) TestTranslate_PrefersStoredSourceRow() {
	ctx := context.Background()
	s.languagesEnDe()

	// Only the Validate lookup; the source text comes from the stored row.
	s.articles.EXPECT().Get(ctx, int64(9)).Return(s.approvedArticle(), nil)

	s.translations.EXPECT().Get(ctx, "article", int64(9), "title", "en").Return(&domain.Translation{
		Content: "Edited source title",
	}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "translated"}, nil)
	s.client.EXPECT().Model().Return("test-model")
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.articles.EXPECT().MarkTranslated(ctx, int64(9)).Return(nil)

	_, err := s.service.Translate(ctx, "article", 9, []string{"title"}, "de")

	s.NoError(err)
}

func (s *TranslatorTestSuite) TestTranslate_TargetIsSourceLanguage() {
	ctx := context.Background()

	s.languages.EXPECT().Default(ctx).Return(&domain.Language{Code: "en", IsDefault: true}, nil)

	_, err := s.service.Translate(ctx, "article", 9, nil, "en")

	var verr *ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(err.Error(), "source language")
}

func (s *TranslatorTestSuite) TestTranslate_InactiveLanguage() {
	ctx := context.Background()

	s.languages.EXPECT().Default(ctx).Return(&domain.Language{Code: "en", IsDefault: true}, nil)
	s.languages.EXPECT().Active(ctx).Return([]domain.Language{
		{Code: "en", IsDefault: true, IsActive: true},
	}, nil)

	_, err := s.service.Translate(ctx, "article", 9, nil, "fr")

	var verr *ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(err.Error(), "not active")
}

func (s *TranslatorTestSuite) TestTranslate_UnknownEntityType() {
	_, err := s.service.Translate(context.Background(), "recipe", 9, nil, "de")

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *TranslatorTestSuite) TestTranslate_FieldFailureDoesNotAbortOthers() {
	ctx := context.Background()
	s.languagesEnDe()

	article := s.approvedArticle()
	s.articles.EXPECT().Get(ctx, int64(9)).Return(article, nil).AnyTimes()

	s.translations.EXPECT().Get(ctx, "article", int64(9), "title", "en").Return(nil, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: ""}, nil)

	s.translations.EXPECT().Get(ctx, "article", int64(9), "excerpt", "en").Return(nil, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "kurzer Auszug"}, nil)
	s.client.EXPECT().Model().Return("test-model")
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)

	s.articles.EXPECT().MarkTranslated(ctx, int64(9)).Return(nil)

	results, err := s.service.Translate(ctx, "article", 9, []string{"title", "excerpt"}, "de")

	s.NoError(err)
	s.Equal(map[string]bool{"title": false, "excerpt": true}, results)
}

func (s *TranslatorTestSuite) TestFanout_SkipsDefaultLanguage() {
	ctx := context.Background()

	// Fanout loads languages once, then Translate loads them per target.
	s.languages.EXPECT().Default(gomock.Any()).Return(&domain.Language{Code: "en", IsDefault: true}, nil).AnyTimes()
	s.languages.EXPECT().Active(gomock.Any()).Return([]domain.Language{
		{Code: "en", IsDefault: true, IsActive: true},
		{Code: "de", IsActive: true},
		{Code: "fr", IsActive: true},
	}, nil).AnyTimes()

	s.articles.EXPECT().Get(ctx, int64(9)).Return(s.approvedArticle(), nil).AnyTimes()
	s.translations.EXPECT().Get(ctx, "article", int64(9), "title", "en").Return(nil, nil).Times(2)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "translated"}, nil).Times(2)
	s.client.EXPECT().Model().Return("test-model").Times(2)
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).Times(2)
	s.articles.EXPECT().MarkTranslated(ctx, int64(9)).Return(nil).Times(2)

	all, err := s.service.Fanout(ctx, "article", 9, []string{"title"})

	s.NoError(err)
	s.Len(all, 2)
	s.Contains(all, "de")
	s.Contains(all, "fr")
}

func (s *TranslatorTestSuite) TestDrainOutbox() {
	ctx := context.Background()
	intent := domain.FanoutIntent{ID: 3, EntityType: "article", EntityID: 9, Fields: []string{"title"}}

	s.outbox.EXPECT().Pending(ctx, 10).Return([]domain.FanoutIntent{intent}, nil)

	s.languages.EXPECT().Default(gomock.Any()).Return(&domain.Language{Code: "en", IsDefault: true}, nil).AnyTimes()
	s.languages.EXPECT().Active(gomock.Any()).Return([]domain.Language{
		{Code: "en", IsDefault: true, IsActive: true},
		{Code: "de", IsActive: true},
	}, nil).AnyTimes()

	s.articles.EXPECT().Get(ctx, int64(9)).Return(s.approvedArticle(), nil).AnyTimes()
	s.translations.EXPECT().Get(ctx, "article", int64(9), "title", "en").Return(nil, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "translated"}, nil)
	s.client.EXPECT().Model().Return("test-model")
	s.translations.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.articles.EXPECT().MarkTranslated(ctx, int64(9)).Return(nil)

	s.outbox.EXPECT().MarkDone(ctx, int64(3)).Return(nil)
	s.publisher.EXPECT().PublishIntent(ctx, gomock.Any(), map[string]bool{"de.title": true}).Return(nil)

	drained, err := s.service.DrainOutbox(ctx, 10)

	s.NoError(err)
	s.Equal(1, drained)
}

func (s *TranslatorTestSuite) TestRecord_AppendsIntent() {
	ctx := context.Background()

	s.outbox.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, intent *domain.FanoutIntent) error {
			s.Equal("article", intent.EntityType)
			s.Equal(int64(9), intent.EntityID)
			s.Equal([]string{"title"}, intent.Fields)
			return nil
		},
	)

	err := s.service.Record(ctx, "article", 9, []string{"title"})

	s.NoError(err)
}

func TestChangedFields(t *testing.T) {
	handler := NewArticleTranslationHandler(nil)

	committed := map[string]string{"title": "Old", "content": "same", "excerpt": "same"}
	current := map[string]string{"title": "New", "content": "same", "excerpt": "same"}

	assert.Equal(t, []string{"title"}, ChangedFields(handler, committed, current))
	assert.Empty(t, ChangedFields(handler, committed, committed))
}
