package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/service"
)

// Job payloads. Producers marshal these into Job.Payload.
type SuggestionsPayload struct {
	TaxonomyID int64 `json:"taxonomy_id"`
	Count      int   `json:"count"`
}

type ResearchPayload struct {
	SuggestionID int64 `json:"suggestion_id"`
}

type ArticlePayload struct {
	ResearchID int64 `json:"research_id"`
}

type ReadabilityPayload struct {
	ArticleID int64 `json:"article_id"`
}

type MediaPayload struct {
	ResearchID int64 `json:"research_id"`
}

type PromotePayload struct {
	ArticleID int64 `json:"article_id"`
}

type FeedPostsPayload struct {
	ArticleID int64 `json:"article_id"`
	Count     int   `json:"count"`
}

type TranslatePayload struct {
	EntityType     string   `json:"entity_type"`
	EntityID       int64    `json:"entity_id"`
	Fields         []string `json:"fields"`
	TargetLanguage string   `json:"target_language"`
}

type DispatchPayload struct {
	Limit int `json:"limit"`
}

type BulkPayload struct{}

const defaultDispatchLimit = 50

type SuggestionService interface {
	GenerateSuggestions(ctx context.Context, taxonomyID int64, count int) ([]*domain.Suggestion, error)
}

type ResearchService interface {
	GenerateResearch(ctx context.Context, suggestionID int64) (*domain.Research, error)
}

type ArticleService interface {
	GenerateArticle(ctx context.Context, researchID int64) ([]*domain.Article, error)
}

type ReadabilityService interface {
	ImproveReadability(ctx context.Context, articleID int64) error
}

type MediaService interface {
	SuggestMedia(ctx context.Context, researchID int64) (*domain.MediaSuggestion, error)
}

type SocialService interface {
	PromoteArticle(ctx context.Context, articleID int64) (*domain.SocialPost, error)
	GenerateFeedPosts(ctx context.Context, articleID int64, count int) ([]*domain.SocialPost, error)
}

type TranslationService interface {
	Translate(ctx context.Context, entityType string, entityID int64, fields []string, targetLanguage string) (map[string]bool, error)
	DrainOutbox(ctx context.Context, limit int) (int, error)
}

type BulkService interface {
	Run(ctx context.Context, progress service.ProgressReporter) (domain.BulkStats, error)
}

// Services bundles the pipeline services the worker dispatches to.
type Services struct {
	Suggestions  SuggestionService
	Research     ResearchService
	Articles     ArticleService
	Readability  ReadabilityService
	Media        MediaService
	Social       SocialService
	Translations TranslationService
	Bulk         BulkService
}

// RegisterPipeline wires one handler per job type onto the worker.
func (w *Worker) RegisterPipeline(s Services) {
	w.Register(JobGenerateSuggestions, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p SuggestionsPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Suggestions.GenerateSuggestions(ctx, p.TaxonomyID, p.Count)
		return err
	})

	w.Register(JobGenerateResearch, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p ResearchPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Research.GenerateResearch(ctx, p.SuggestionID)
		return err
	})

	w.Register(JobGenerateArticle, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p ArticlePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Articles.GenerateArticle(ctx, p.ResearchID)
		return err
	})

	w.Register(JobImproveReadability, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p ReadabilityPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		return s.Readability.ImproveReadability(ctx, p.ArticleID)
	})

	w.Register(JobSuggestMedia, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p MediaPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Media.SuggestMedia(ctx, p.ResearchID)
		return err
	})

	w.Register(JobPromoteArticle, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p PromotePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Social.PromoteArticle(ctx, p.ArticleID)
		return err
	})

	w.Register(JobGenerateFeedPosts, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p FeedPostsPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Social.GenerateFeedPosts(ctx, p.ArticleID, p.Count)
		return err
	})

	w.Register(JobTranslate, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p TranslatePayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		_, err := s.Translations.Translate(ctx, p.EntityType, p.EntityID, p.Fields, p.TargetLanguage)
		return err
	})

	w.Register(JobDispatchTranslations, func(ctx context.Context, payload json.RawMessage, _ service.ProgressReporter) error {
		var p DispatchPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		if p.Limit <= 0 {
			p.Limit = defaultDispatchLimit
		}
		_, err := s.Translations.DrainOutbox(ctx, p.Limit)
		return err
	})

	w.Register(JobBulkGeneration, func(ctx context.Context, _ json.RawMessage, progress service.ProgressReporter) error {
		_, err := s.Bulk.Run(ctx, progress)
		return err
	})
}
