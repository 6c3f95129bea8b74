package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// SeriesPart is one planned article of a split series, fully assembled and
// ready to persist.
type SeriesPart struct {
	Title     string
	Excerpt   string
	AISummary string
	Content   string
}

// Editor splits an over-long article into a series of standalone parts.
type Editor struct {
	client Generator
	logger *slog.Logger
}

func NewEditor(client Generator, logger *slog.Logger) *Editor {
	return &Editor{
		client: client,
		logger: logger.With("service", "editor"),
	}
}

type seriesPlanEntry struct {
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	AISummary string   `json:"ai_summary"`
	Sections  []string `json:"sections"`
}

type introConclusion struct {
	Introduction string `json:"introduction"`
	Conclusion   string `json:"conclusion"`
}

// SplitIntoSeries plans the split with one generation call, reassembles each
// part from the original sections, and writes a fresh introduction and
// conclusion per part. Sources land in the last part only; earlier parts get
// a pointer to them.
func (e *Editor) SplitIntoSeries(ctx context.Context, seriesTitle, content, sources string, numParts int) ([]SeriesPart, error) {
	plan, err := e.planSeries(ctx, content, numParts)
	if err != nil {
		return nil, err
	}

	parts := make([]SeriesPart, len(plan))
	for i, entry := range plan {
		sectionText := extractSections(content, entry.Sections)
		if sectionText == "" {
			return nil, validationf("series part %q matched no sections", entry.Title)
		}

		frame, err := e.generateIntroConclusion(ctx, seriesTitle, entry, plan, i, sectionText)
		if err != nil {
			return nil, err
		}

		body := fmt.Sprintf("## Introduction\n\n%s\n\n%s\n\n## Conclusion\n\n%s",
			frame.Introduction, sectionText, frame.Conclusion)

		if sources != "" {
			if i == len(plan)-1 {
				body += "\n\n## Sources\n" + sources
			} else {
				body += "\n\n*Sources for this series are listed in the final part.*"
			}
		}

		parts[i] = SeriesPart{
			Title:     entry.Title,
			Excerpt:   entry.Excerpt,
			AISummary: entry.AISummary,
			Content:   body,
		}
	}

	e.logger.Info("series split completed", "series_title", seriesTitle, "parts", len(parts))
	return parts, nil
}

func (e *Editor) planSeries(ctx context.Context, content string, numParts int) ([]seriesPlanEntry, error) {
	prompt, err := generation.Render(prompts.SeriesSplit, map[string]string{
		"num_parts": strconv.Itoa(numParts),
		"content":   content,
	})
	if err != nil {
		return nil, fmt.Errorf("render series split prompt: %w", err)
	}

	result, err := e.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("plan series: %w", err)
	}

	var plan []seriesPlanEntry
	if err := json.Unmarshal([]byte(cleanJSONFence(result.Text)), &plan); err != nil {
		return nil, validationf("series plan is not valid JSON: %v", err)
	}
	if len(plan) != numParts {
		return nil, validationf("series plan has %d parts, expected %d", len(plan), numParts)
	}
	for _, entry := range plan {
		if entry.Title == "" || len(entry.Sections) == 0 {
			return nil, validationf("series plan entry missing title or sections")
		}
	}

	return plan, nil
}

func (e *Editor) generateIntroConclusion(
	ctx context.Context,
	seriesTitle string,
	entry seriesPlanEntry,
	plan []seriesPlanEntry,
	index int,
	sectionText string,
) (*introConclusion, error) {
	type otherArticle struct {
		Title   string `json:"title"`
		Excerpt string `json:"excerpt"`
	}
	others := make([]otherArticle, 0, len(plan)-1)
	for i, other := range plan {
		if i == index {
			continue
		}
		others = append(others, otherArticle{Title: other.Title, Excerpt: other.Excerpt})
	}
	othersJSON, err := json.MarshalIndent(others, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal series context: %w", err)
	}

	prompt, err := generation.Render(prompts.SeriesIntroConclusion, map[string]string{
		"series_title":   seriesTitle,
		"title":          entry.Title,
		"excerpt":        entry.Excerpt,
		"section_text":   sectionText,
		"other_articles": string(othersJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("render intro/conclusion prompt: %w", err)
	}

	result, err := e.client.Generate(ctx, prompt, nil)
	if err != nil {
		return nil, fmt.Errorf("generate intro/conclusion for %q: %w", entry.Title, err)
	}

	var frame introConclusion
	if err := json.Unmarshal([]byte(cleanJSONFence(result.Text)), &frame); err != nil {
		return nil, validationf("intro/conclusion for %q is not valid JSON: %v", entry.Title, err)
	}
	if frame.Introduction == "" || frame.Conclusion == "" {
		return nil, validationf("intro/conclusion for %q is incomplete", entry.Title)
	}

	return &frame, nil
}

// extractSections pulls the named sections out of the original article in
// plan order. Introduction and Conclusion headings are skipped since each
// part gets freshly written ones. A section runs from its heading to the
// next level-2 heading or the end of the text.
func extractSections(content string, names []string) string {
	var collected []string

	for _, name := range names {
		if name == "Introduction" || name == "Conclusion" {
			continue
		}

		start := -1
		for _, marker := range []string{"## " + name, "### " + name} {
			if idx := strings.Index(content, marker); idx >= 0 {
				start = idx
				break
			}
		}
		if start < 0 {
			continue
		}

		end := len(content)
		if next := strings.Index(content[start+1:], "\n## "); next >= 0 {
			end = start + 1 + next
		}

		collected = append(collected, strings.TrimSpace(content[start:end]))
	}

	return strings.Join(collected, "\n\n")
}

// cleanJSONFence strips a wrapping ```json / ``` fence before parsing.
func cleanJSONFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	} else {
		return content
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
