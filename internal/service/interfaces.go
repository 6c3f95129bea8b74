package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
)

// Generator is the retrying generation client consumed by every service.
type Generator interface {
	Generate(ctx context.Context, prompt string, history []generation.Turn) (generation.Result, error)
	Model() string
}

type SuggestionStore interface {
	Get(ctx context.Context, id int64) (*domain.Suggestion, error)
	CreateBatch(ctx context.Context, suggestions []*domain.Suggestion) error
	ListApprovedWithoutResearch(ctx context.Context) ([]domain.Suggestion, error)
}

type TaxonomyStore interface {
	Get(ctx context.Context, id int64) (*domain.Taxonomy, error)
}

type ResearchStore interface {
	Get(ctx context.Context, id int64) (*domain.Research, error)
	Create(ctx context.Context, research *domain.Research) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type ArticleStore interface {
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (int64, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	ListSummaries(ctx context.Context, taxonomyID int64) ([]domain.Article, error)
	MarkTranslated(ctx context.Context, id int64) error
}

type TranslationStore interface {
	Get(ctx context.Context, entityType string, entityID int64, field, language string) (*domain.Translation, error)
	Upsert(ctx context.Context, translation *domain.Translation) error
}

type LanguageStore interface {
	Active(ctx context.Context) ([]domain.Language, error)
	Default(ctx context.Context) (*domain.Language, error)
}

type OutboxStore interface {
	Append(ctx context.Context, intent *domain.FanoutIntent) error
	Pending(ctx context.Context, limit int) ([]domain.FanoutIntent, error)
	MarkDone(ctx context.Context, id int64) error
}

type HashtagGroupStore interface {
	Core(ctx context.Context) ([]domain.HashtagGroup, error)
	Optional(ctx context.Context) ([]domain.HashtagGroup, error)
	ByName(ctx context.Context, name string) (*domain.HashtagGroup, error)
}

type MediaSuggestionStore interface {
	Create(ctx context.Context, suggestion *domain.MediaSuggestion) (int64, error)
}

type SocialPostStore interface {
	Get(ctx context.Context, id int64) (*domain.SocialPost, error)
	CreateBatch(ctx context.Context, posts []*domain.SocialPost) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// IntentPublisher announces drained fan-out intents on the side channel.
type IntentPublisher interface {
	PublishIntent(ctx context.Context, intent *domain.FanoutIntent, results map[string]bool) error
}

// ProgressReporter pushes batch progress into job metadata.
type ProgressReporter interface {
	Update(ctx context.Context, progress float64, message string) error
}
