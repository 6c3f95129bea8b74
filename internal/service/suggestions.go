package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// SuggestionGenerator proposes new article topics for a taxonomy, steering
// the model away from what already exists.
type SuggestionGenerator struct {
	client      Generator
	suggestions SuggestionStore
	taxonomies  TaxonomyStore
	articles    ArticleStore
	logger      *slog.Logger
}

func NewSuggestionGenerator(
	client Generator,
	suggestions SuggestionStore,
	taxonomies TaxonomyStore,
	articles ArticleStore,
	logger *slog.Logger,
) *SuggestionGenerator {
	return &SuggestionGenerator{
		client:      client,
		suggestions: suggestions,
		taxonomies:  taxonomies,
		articles:    articles,
		logger:      logger.With("service", "suggestions"),
	}
}

type suggestionsResponse struct {
	Suggestions []struct {
		Title       string   `json:"title"`
		MainTopic   string   `json:"main_topic"`
		SubTopics   []string `json:"sub_topics"`
		PointOfView string   `json:"point_of_view"`
	} `json:"suggestions"`
}

// GenerateSuggestions creates count pending suggestions for one taxonomy.
func (g *SuggestionGenerator) GenerateSuggestions(ctx context.Context, taxonomyID int64, count int) ([]*domain.Suggestion, error) {
	if count < 1 {
		return nil, validationf("suggestion count must be positive, got %d", count)
	}

	taxonomy, err := g.taxonomies.Get(ctx, taxonomyID)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %d: %w", taxonomyID, err)
	}
	if taxonomy == nil {
		return nil, validationf("taxonomy %d not found", taxonomyID)
	}

	existing, err := g.articles.ListSummaries(ctx, taxonomyID)
	if err != nil {
		return nil, fmt.Errorf("load existing articles: %w", err)
	}

	var summaries strings.Builder
	for _, article := range existing {
		fmt.Fprintf(&summaries, "- %s: %s\n", article.Title, article.AISummary)
	}
	if summaries.Len() == 0 {
		summaries.WriteString("(none yet)")
	}

	prompt, err := generation.Render(prompts.ContentSuggestions, map[string]string{
		"taxonomy":             taxonomy.Name,
		"taxonomy_description": taxonomy.Description,
		"existing_summaries":   strings.TrimRight(summaries.String(), "\n"),
		"num_suggestions":      strconv.Itoa(count),
	})
	if err != nil {
		return nil, fmt.Errorf("render suggestions prompt: %w", err)
	}

	startedAt := time.Now().UTC()
	result, err := g.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var parsed suggestionsResponse
	if err := parseJSONResponse(result.Text, &parsed, "content"); err != nil {
		return nil, err
	}
	if len(parsed.Suggestions) == 0 {
		return nil, validationf("suggestions response contains no entries")
	}

	suggestions := make([]*domain.Suggestion, 0, len(parsed.Suggestions))
	for _, s := range parsed.Suggestions {
		if s.Title == "" || s.MainTopic == "" {
			return nil, validationf("suggestion entry missing title or main topic")
		}
		suggestions = append(suggestions, &domain.Suggestion{
			TaxonomyID:  taxonomyID,
			Title:       s.Title,
			MainTopic:   s.MainTopic,
			SubTopics:   s.SubTopics,
			PointOfView: s.PointOfView,
			Status:      domain.StatusPending,
			Generation: domain.Generation{
				Model:               g.client.Model(),
				GenerationStartedAt: &startedAt,
			},
		})
	}

	if err := g.suggestions.CreateBatch(ctx, suggestions); err != nil {
		return nil, fmt.Errorf("persist suggestions: %w", err)
	}

	g.logger.Info("suggestions generated",
		"taxonomy_id", taxonomyID,
		"count", len(suggestions),
	)
	return suggestions, nil
}
