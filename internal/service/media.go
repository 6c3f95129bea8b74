package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// MediaPlanner proposes imagery for approved research.
type MediaPlanner struct {
	client      Generator
	research    ResearchStore
	suggestions SuggestionStore
	taxonomies  TaxonomyStore
	media       MediaSuggestionStore
	logger      *slog.Logger
}

func NewMediaPlanner(
	client Generator,
	research ResearchStore,
	suggestions SuggestionStore,
	taxonomies TaxonomyStore,
	media MediaSuggestionStore,
	logger *slog.Logger,
) *MediaPlanner {
	return &MediaPlanner{
		client:      client,
		research:    research,
		suggestions: suggestions,
		taxonomies:  taxonomies,
		media:       media,
		logger:      logger.With("service", "media"),
	}
}

type mediaResponse struct {
	CommonsCategories  []string `json:"commons_categories"`
	SearchQueries      []string `json:"search_queries"`
	IllustrationTopics []string `json:"illustration_topics"`
	Reasoning          string   `json:"reasoning"`
}

// SuggestMedia generates and stores one media suggestion for a research
// document. The free-text reasoning field gets the whitespace repair pass
// when the response fails to parse.
func (p *MediaPlanner) SuggestMedia(ctx context.Context, researchID int64) (*domain.MediaSuggestion, error) {
	research, err := p.research.Get(ctx, researchID)
	if err != nil {
		return nil, fmt.Errorf("load research %d: %w", researchID, err)
	}
	if research == nil {
		return nil, validationf("research %d not found", researchID)
	}

	suggestion, err := p.suggestions.Get(ctx, research.SuggestionID)
	if err != nil {
		return nil, fmt.Errorf("load suggestion %d: %w", research.SuggestionID, err)
	}
	if suggestion == nil {
		return nil, validationf("suggestion %d not found", research.SuggestionID)
	}

	taxonomy, err := p.taxonomies.Get(ctx, suggestion.TaxonomyID)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %d: %w", suggestion.TaxonomyID, err)
	}
	if taxonomy == nil {
		return nil, validationf("taxonomy %d not found", suggestion.TaxonomyID)
	}

	prompt, err := generation.Render(prompts.MediaSuggestions, map[string]string{
		"research_title":   suggestion.Title,
		"taxonomy":         taxonomy.Name,
		"research_content": research.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("render media prompt: %w", err)
	}

	startedAt := time.Now().UTC()
	result, err := p.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate media suggestions: %w", err)
	}

	var parsed mediaResponse
	if err := parseJSONResponse(result.Text, &parsed, "reasoning"); err != nil {
		return nil, err
	}
	if len(parsed.SearchQueries) == 0 && len(parsed.CommonsCategories) == 0 {
		return nil, validationf("media response proposes no imagery")
	}

	media := &domain.MediaSuggestion{
		ResearchID:         researchID,
		CommonsCategories:  parsed.CommonsCategories,
		SearchQueries:      parsed.SearchQueries,
		IllustrationTopics: parsed.IllustrationTopics,
		Reasoning:          parsed.Reasoning,
		Generation: domain.Generation{
			Model:               p.client.Model(),
			GenerationStartedAt: &startedAt,
		},
	}

	id, err := p.media.Create(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("persist media suggestion: %w", err)
	}
	media.ID = id

	p.logger.Info("media suggestion generated",
		"research_id", researchID,
		"media_id", id,
		"queries", len(media.SearchQueries),
	)
	return media, nil
}
