package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// Researcher generates the long-form research document behind an approved
// Suggestion through a staged conversation.
type Researcher struct {
	client      Generator
	suggestions SuggestionStore
	taxonomies  TaxonomyStore
	research    ResearchStore
	logger      *slog.Logger
}

func NewResearcher(
	client Generator,
	suggestions SuggestionStore,
	taxonomies TaxonomyStore,
	research ResearchStore,
	logger *slog.Logger,
) *Researcher {
	return &Researcher{
		client:      client,
		suggestions: suggestions,
		taxonomies:  taxonomies,
		research:    research,
		logger:      logger.With("service", "researcher"),
	}
}

// GenerateResearch runs the staged research flow for one suggestion and
// persists the combined document. A failure at any stage aborts the run;
// no partial research is stored.
func (r *Researcher) GenerateResearch(ctx context.Context, suggestionID int64) (*domain.Research, error) {
	suggestion, err := r.suggestions.Get(ctx, suggestionID)
	if err != nil {
		return nil, fmt.Errorf("load suggestion %d: %w", suggestionID, err)
	}
	if suggestion == nil {
		return nil, validationf("suggestion %d not found", suggestionID)
	}
	if suggestion.Status != domain.StatusApproved {
		return nil, validationf("suggestion %d is not approved", suggestionID)
	}

	taxonomy, err := r.taxonomies.Get(ctx, suggestion.TaxonomyID)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %d: %w", suggestion.TaxonomyID, err)
	}
	if taxonomy == nil {
		return nil, validationf("taxonomy %d not found", suggestion.TaxonomyID)
	}

	stages, err := buildResearchStages(suggestion, taxonomy)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now().UTC()

	// Later stages see only the opening exchange, so the model stays anchored
	// on the brief and the abstract rather than its own later output.
	staged := NewStagedGenerator(r.client, 2, r.logger)
	conv := &generation.Conversation{}

	outputs, err := staged.Run(ctx, conv, stages)
	if err != nil {
		r.logger.Error("research generation aborted",
			"suggestion_id", suggestionID,
			"error", err,
		)
		return nil, fmt.Errorf("generate research for suggestion %d: %w", suggestionID, err)
	}

	research := &domain.Research{
		SuggestionID: suggestionID,
		Content:      strings.Join(outputs, "\n\n"),
		Status:       domain.StatusPending,
		Generation: domain.Generation{
			Model:               r.client.Model(),
			GenerationStartedAt: &startedAt,
		},
	}

	id, err := r.research.Create(ctx, research)
	if err != nil {
		return nil, fmt.Errorf("persist research: %w", err)
	}
	research.ID = id

	r.logger.Info("research generated",
		"suggestion_id", suggestionID,
		"research_id", id,
		"stages", len(stages),
		"words", WordCount(research.Content),
	)

	return research, nil
}

func buildResearchStages(suggestion *domain.Suggestion, taxonomy *domain.Taxonomy) ([]Stage, error) {
	names := researchStageNames(suggestion, taxonomy)

	initial, err := renderInitialResearchPrompt(suggestion, taxonomy)
	if err != nil {
		return nil, err
	}

	stages := make([]Stage, len(names))
	stages[0] = Stage{Name: names[0], Prompt: initial}

	for i := 1; i < len(names); i++ {
		prompt, err := generation.Render(prompts.ResearchContinuation, map[string]string{
			"previous_section": names[i-1],
			"current_section":  names[i],
		})
		if err != nil {
			return nil, fmt.Errorf("render continuation prompt: %w", err)
		}
		stages[i] = Stage{Name: names[i], Prompt: prompt}
	}

	return stages, nil
}

// researchStageNames picks the stage list: the full long-form sequence, or
// the condensed one for short-form taxonomies (biographies, landmarks).
func researchStageNames(suggestion *domain.Suggestion, taxonomy *domain.Taxonomy) []string {
	if taxonomy.ShortForm {
		return []string{"Overview", "Key Facts and Significance", "Sources"}
	}

	names := []string{"Abstract", "Main Topic Development"}
	names = append(names, suggestion.SubTopics...)
	return append(names, "Contemporary Relevance", "Conclusion", "Sources and Further Reading")
}

func renderInitialResearchPrompt(suggestion *domain.Suggestion, taxonomy *domain.Taxonomy) (string, error) {
	if taxonomy.ShortForm {
		return generation.Render(prompts.ResearchShortForm, map[string]string{
			"taxonomy":             taxonomy.Name,
			"taxonomy_description": taxonomy.Description,
			"title":                suggestion.Title,
			"main_topic":           suggestion.MainTopic,
			"point_of_view":        suggestion.PointOfView,
		})
	}

	var topicList strings.Builder
	var structure strings.Builder
	for _, topic := range suggestion.SubTopics {
		fmt.Fprintf(&topicList, "- %s\n", topic)

		block, err := generation.Render(prompts.ResearchSubTopicStructure, map[string]string{
			"sub_topic": topic,
		})
		if err != nil {
			return "", fmt.Errorf("render sub-topic structure: %w", err)
		}
		structure.WriteString(block)
		structure.WriteString("\n\n")
	}

	return generation.Render(prompts.ResearchInitial, map[string]string{
		"taxonomy":             taxonomy.Name,
		"taxonomy_description": taxonomy.Description,
		"title":                suggestion.Title,
		"main_topic":           suggestion.MainTopic,
		"sub_topics_list":      strings.TrimRight(topicList.String(), "\n"),
		"sub_topics_structure": strings.TrimRight(structure.String(), "\n"),
		"point_of_view":        suggestion.PointOfView,
	})
}
