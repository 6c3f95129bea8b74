package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/domain"
	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// Writer turns approved research into one Article or a multi-part series.
type Writer struct {
	client      Generator
	editor      *Editor
	research    ResearchStore
	suggestions SuggestionStore
	taxonomies  TaxonomyStore
	articles    ArticleStore
	txManager   TransactionManager
	cfg         config.PipelineConfig
	logger      *slog.Logger
}

func NewWriter(
	client Generator,
	editor *Editor,
	research ResearchStore,
	suggestions SuggestionStore,
	taxonomies TaxonomyStore,
	articles ArticleStore,
	txManager TransactionManager,
	cfg config.PipelineConfig,
	logger *slog.Logger,
) *Writer {
	return &Writer{
		client:      client,
		editor:      editor,
		research:    research,
		suggestions: suggestions,
		taxonomies:  taxonomies,
		articles:    articles,
		txManager:   txManager,
		cfg:         cfg,
		logger:      logger.With("service", "writer"),
	}
}

// GenerateArticle drives the full writing flow: outline, one call per
// outline section, sources cleanup, then either a single article or a
// series depending on the word count.
func (w *Writer) GenerateArticle(ctx context.Context, researchID int64) ([]*domain.Article, error) {
	research, err := w.research.Get(ctx, researchID)
	if err != nil {
		return nil, fmt.Errorf("load research %d: %w", researchID, err)
	}
	if research == nil {
		return nil, validationf("research %d not found", researchID)
	}
	if research.Status != domain.StatusApproved {
		return nil, validationf("research %d is not approved", researchID)
	}

	suggestion, err := w.suggestions.Get(ctx, research.SuggestionID)
	if err != nil {
		return nil, fmt.Errorf("load suggestion %d: %w", research.SuggestionID, err)
	}
	if suggestion == nil {
		return nil, validationf("suggestion %d not found", research.SuggestionID)
	}

	taxonomy, err := w.taxonomies.Get(ctx, suggestion.TaxonomyID)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %d: %w", suggestion.TaxonomyID, err)
	}
	if taxonomy == nil {
		return nil, validationf("taxonomy %d not found", suggestion.TaxonomyID)
	}

	startedAt := time.Now().UTC()
	conv := &generation.Conversation{}

	sections, err := w.generateOutlineSections(ctx, conv, suggestion, taxonomy, research)
	if err != nil {
		return nil, err
	}

	stages, err := buildSectionStages(sections)
	if err != nil {
		return nil, err
	}

	// Section generation keeps the full conversation so each section can
	// build on everything written before it.
	staged := NewStagedGenerator(w.client, 0, w.logger)
	outputs, err := staged.Run(ctx, conv, stages)
	if err != nil {
		w.logger.Error("article generation aborted", "research_id", researchID, "error", err)
		return nil, fmt.Errorf("generate article for research %d: %w", researchID, err)
	}

	completeContent := strings.Join(outputs, "\n\n")
	sources := w.cleanedSources(ctx, research.Content)

	provenance := domain.Generation{
		Model:               w.client.Model(),
		GenerationStartedAt: &startedAt,
	}

	if WordCount(completeContent) > w.cfg.SeriesCutoffWords {
		return w.createSeries(ctx, research, suggestion, completeContent, sources, provenance)
	}
	return w.createSingleArticle(ctx, research, suggestion, completeContent, sources, provenance)
}

func (w *Writer) generateOutlineSections(
	ctx context.Context,
	conv *generation.Conversation,
	suggestion *domain.Suggestion,
	taxonomy *domain.Taxonomy,
	research *domain.Research,
) ([]OutlineSection, error) {
	prompt, err := generation.Render(prompts.WriterOutline, map[string]string{
		"taxonomy":             taxonomy.Name,
		"taxonomy_description": taxonomy.Description,
		"title":                suggestion.Title,
		"research_content":     research.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("render outline prompt: %w", err)
	}

	result, err := w.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate outline: %w", err)
	}

	outline := strings.TrimSpace(strings.Split(result.Text, "[END_OUTLINE]")[0])
	if outline == "" {
		return nil, validationf("empty outline response")
	}
	conv.Exchange(prompt, outline)

	sections := ParseOutline(outline)
	if len(sections) == 0 {
		return nil, validationf("outline contains no sections")
	}
	return sections, nil
}

func buildSectionStages(sections []OutlineSection) ([]Stage, error) {
	stages := make([]Stage, 0, len(sections))

	for _, section := range sections {
		prompt, err := generation.Render(prompts.WriterSection, map[string]string{
			"section_title": section.Title,
		})
		if err != nil {
			return nil, fmt.Errorf("render section prompt: %w", err)
		}

		if len(section.Subsections) > 0 {
			sub, err := generation.Render(prompts.WriterSubsections, map[string]string{
				"subsections": strings.Join(section.Subsections, ", "),
			})
			if err != nil {
				return nil, fmt.Errorf("render subsection prompt: %w", err)
			}
			prompt += sub
		}

		stages = append(stages, Stage{Name: section.Title, Prompt: prompt})
	}

	return stages, nil
}

var sourcesSectionPattern = regexp.MustCompile(`(?s)## (?:Sources and Further Reading|Sources|Further Reading)\n(.*?)(?:\n## |$)`)

// cleanedSources extracts the sources section from the research and runs the
// AI cleanup pass over it. Cleanup failures fall back to the raw sources
// rather than failing the article.
func (w *Writer) cleanedSources(ctx context.Context, researchContent string) string {
	match := sourcesSectionPattern.FindStringSubmatch(researchContent)
	if match == nil {
		return ""
	}
	raw := strings.TrimSpace(match[1])
	if raw == "" {
		return ""
	}

	prompt, err := generation.Render(prompts.WriterSourcesCleanup, map[string]string{"sources": raw})
	if err != nil {
		w.logger.Warn("render sources cleanup prompt failed", "error", err)
		return raw
	}

	result, err := w.client.Generate(ctx, prompt, nil)
	if err != nil || result.Text == "" {
		w.logger.Warn("sources cleanup failed, keeping raw sources", "error", err)
		return raw
	}
	return result.Text
}

func (w *Writer) createSingleArticle(
	ctx context.Context,
	research *domain.Research,
	suggestion *domain.Suggestion,
	content, sources string,
	provenance domain.Generation,
) ([]*domain.Article, error) {
	conv := &generation.Conversation{}

	excerpt, err := w.generateExcerpt(ctx, conv, content)
	if err != nil {
		return nil, err
	}
	summary, err := w.generateSummary(ctx, conv)
	if err != nil {
		return nil, err
	}

	if sources != "" {
		content += "\n\n## Sources\n" + sources
	}

	article := &domain.Article{
		ResearchID: research.ID,
		Title:      suggestion.Title,
		Content:    content,
		Excerpt:    excerpt,
		AISummary:  summary,
		Status:     domain.StatusPending,
		Generation: provenance,
	}

	id, err := w.articles.Create(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("persist article: %w", err)
	}
	article.ID = id

	w.logger.Info("article generated",
		"research_id", research.ID,
		"article_id", id,
		"words", WordCount(content),
	)

	return []*domain.Article{article}, nil
}

func (w *Writer) generateExcerpt(ctx context.Context, conv *generation.Conversation, content string) (string, error) {
	prompt, err := generation.Render(prompts.WriterExcerpt, map[string]string{"article_content": content})
	if err != nil {
		return "", fmt.Errorf("render excerpt prompt: %w", err)
	}

	result, err := w.client.Generate(ctx, prompt, conv.Turns())
	if err != nil {
		return "", fmt.Errorf("generate excerpt: %w", err)
	}
	if result.Text == "" {
		return "", validationf("empty excerpt response")
	}

	excerpt := cleanExcerpt(result.Text)
	conv.Exchange(prompt, excerpt)
	return excerpt, nil
}

func (w *Writer) generateSummary(ctx context.Context, conv *generation.Conversation) (string, error) {
	result, err := w.client.Generate(ctx, prompts.WriterSummary, conv.Turns())
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	if result.Text == "" {
		return "", validationf("empty summary response")
	}
	return cleanSummary(result.Text), nil
}

func cleanExcerpt(excerpt string) string {
	excerpt = strings.TrimSpace(excerpt)
	excerpt = strings.TrimPrefix(excerpt, `"`)
	excerpt = strings.TrimSuffix(excerpt, `"`)
	return strings.TrimSpace(excerpt)
}

var summaryPrefixes = []string{
	"TECHNICAL SUMMARY [100 words]:",
	"TECHNICAL SUMMARY:",
	"AI SUMMARY:",
	"SUMMARY:",
}

func cleanSummary(summary string) string {
	summary = strings.TrimSpace(summary)
	for _, prefix := range summaryPrefixes {
		if strings.HasPrefix(summary, prefix) {
			summary = strings.TrimSpace(strings.TrimPrefix(summary, prefix))
		}
	}
	return summary
}

func (w *Writer) createSeries(
	ctx context.Context,
	research *domain.Research,
	suggestion *domain.Suggestion,
	content, sources string,
	provenance domain.Generation,
) ([]*domain.Article, error) {
	numParts := WordCount(content) / w.cfg.SeriesPartWords
	if numParts < 1 {
		numParts = 1
	}

	parts, err := w.editor.SplitIntoSeries(ctx, suggestion.Title, content, sources, numParts)
	if err != nil {
		return nil, fmt.Errorf("split series for research %d: %w", research.ID, err)
	}

	articles := make([]*domain.Article, len(parts))
	for i, part := range parts {
		articles[i] = &domain.Article{
			ResearchID: research.ID,
			Title:      part.Title,
			Content:    part.Content,
			Excerpt:    part.Excerpt,
			AISummary:  part.AISummary,
			Status:     domain.StatusPending,
			Generation: provenance,
		}
	}

	err = w.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		// Parent first so children can reference it.
		parentID, err := w.articles.Create(txCtx, articles[0])
		if err != nil {
			return fmt.Errorf("persist series parent: %w", err)
		}
		articles[0].ID = parentID

		for i := 1; i < len(articles); i++ {
			order := i
			articles[i].SeriesParentID = &parentID
			articles[i].SeriesOrder = &order

			id, err := w.articles.Create(txCtx, articles[i])
			if err != nil {
				return fmt.Errorf("persist series part %d: %w", i+1, err)
			}
			articles[i].ID = id
		}

		for i, article := range articles {
			article.Content = seriesAboutBlock(articles, i, suggestion.Title) + "\n\n" + article.Content
			if next := seriesContinueBlock(articles, i); next != "" {
				article.Content += next
			}
			if err := w.articles.UpdateContent(txCtx, article.ID, article.Content); err != nil {
				return fmt.Errorf("update series part %d: %w", i+1, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info("article series generated",
		"research_id", research.ID,
		"parts", len(articles),
		"parent_id", articles[0].ID,
	)

	return articles, nil
}

func articleURL(id int64) string {
	return fmt.Sprintf("/articles/%d", id)
}

// seriesAboutBlock lists every part of the series, marking the current one.
func seriesAboutBlock(articles []*domain.Article, current int, seriesTitle string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*About this series*\n\nThis article is part %d of a %d-part series about %s.\n\nArticles in this series:\n",
		current+1, len(articles), seriesTitle)

	for i, article := range articles {
		if i == current {
			fmt.Fprintf(&b, "\n- %s (You are here)", article.Title)
		} else {
			fmt.Fprintf(&b, "\n- [%s](%s)", article.Title, articleURL(article.ID))
		}
	}

	b.WriteString("\n\n---\n")
	return b.String()
}

// seriesContinueBlock links to the next part; the last part gets none.
func seriesContinueBlock(articles []*domain.Article, current int) string {
	if current == len(articles)-1 {
		return ""
	}
	next := articles[current+1]
	return fmt.Sprintf(
		"\n\n---\n\n*Continue reading*\n\nReady for the next part? Continue to [Part %d: %s](%s)",
		current+2, next.Title, articleURL(next.ID),
	)
}
