package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"editorial_pipeline/internal/generation"
)

// Stage is one named unit of a multi-call generation run. Prompts are
// resolved before the run starts, so the driver loop only sequences calls
// and threads history.
type Stage struct {
	Name   string
	Prompt string
}

// StagedGenerator drives an ordered stage list over one shared conversation.
// Calls are strictly sequential; failure at any stage aborts the whole run
// and nothing is persisted by the caller.
type StagedGenerator struct {
	client Generator
	logger *slog.Logger

	// historyWindow caps how many leading turns of the conversation are sent
	// with each call; 0 sends the full history. The research flow keeps only
	// the opening exchange in the window.
	historyWindow int
}

func NewStagedGenerator(client Generator, historyWindow int, logger *slog.Logger) *StagedGenerator {
	return &StagedGenerator{
		client:        client,
		historyWindow: historyWindow,
		logger:        logger,
	}
}

// Run executes the stages in order and returns the per-stage outputs. Each
// output is cleaned of incidental code-fence wrapping before being recorded.
func (g *StagedGenerator) Run(ctx context.Context, conv *generation.Conversation, stages []Stage) ([]string, error) {
	outputs := make([]string, 0, len(stages))

	for i, stage := range stages {
		history := conv.Turns()
		if g.historyWindow > 0 {
			history = conv.Head(g.historyWindow)
		}

		result, err := g.client.Generate(ctx, stage.Prompt, history)
		if err != nil {
			return nil, fmt.Errorf("stage %q: %w", stage.Name, err)
		}
		if result.Text == "" {
			return nil, validationf("stage %q: empty response", stage.Name)
		}

		conv.Exchange(stage.Prompt, result.Text)
		outputs = append(outputs, CleanMarkdownFence(result.Text))

		g.logger.Debug("stage completed",
			"stage", stage.Name,
			"index", i,
			"total", len(stages),
		)
	}

	return outputs, nil
}

// CleanMarkdownFence strips a wrapping ```markdown / ``` fence if the model
// returned one around the whole output.
func CleanMarkdownFence(content string) string {
	switch {
	case strings.HasPrefix(content, "```markdown\n") && strings.HasSuffix(content, "```"):
		return strings.TrimSuffix(strings.TrimPrefix(content, "```markdown\n"), "```")
	case strings.HasPrefix(content, "```\n") && strings.HasSuffix(content, "```"):
		return strings.TrimSuffix(strings.TrimPrefix(content, "```\n"), "```")
	default:
		return content
	}
}

// WordCount counts whitespace-separated words, the measure behind the series
// cutoff.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
