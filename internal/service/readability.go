package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/prompts"
)

// ChunkType classifies a markdown block for the readability pass. Only
// paragraphs are rewritten; everything else passes through untouched.
type ChunkType string

const (
	ChunkParagraph ChunkType = "paragraph"
	ChunkHeading   ChunkType = "heading"
	ChunkList      ChunkType = "list"
	ChunkOther     ChunkType = "other"
)

// Chunk is one block of a chunked markdown document.
type Chunk struct {
	Type ChunkType
	Text string
}

var listItemPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+`)

// ChunkMarkdown splits markdown into typed blocks. Headings and fenced code
// blocks are isolated, consecutive list items form one chunk, and blank
// lines separate paragraphs.
func ChunkMarkdown(content string) []Chunk {
	var chunks []Chunk
	var buf []string
	var bufType ChunkType

	flush := func() {
		if len(buf) > 0 {
			chunks = append(chunks, Chunk{Type: bufType, Text: strings.Join(buf, "\n")})
			buf = nil
		}
	}

	inFence := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case inFence:
			buf = append(buf, line)
			if strings.HasPrefix(trimmed, "```") {
				inFence = false
				flush()
			}

		case strings.HasPrefix(trimmed, "```"):
			flush()
			bufType = ChunkOther
			buf = append(buf, line)
			inFence = true

		case trimmed == "":
			flush()

		case strings.HasPrefix(trimmed, "#"):
			flush()
			chunks = append(chunks, Chunk{Type: ChunkHeading, Text: line})

		case listItemPattern.MatchString(line):
			if bufType != ChunkList {
				flush()
				bufType = ChunkList
			}
			buf = append(buf, line)

		default:
			if bufType != ChunkParagraph {
				flush()
				bufType = ChunkParagraph
			}
			buf = append(buf, line)
		}
	}
	flush()

	return chunks
}

// Proofreader rewrites article prose for readability one paragraph at a time.
type Proofreader struct {
	client   Generator
	articles ArticleStore
	logger   *slog.Logger
}

func NewProofreader(client Generator, articles ArticleStore, logger *slog.Logger) *Proofreader {
	return &Proofreader{
		client:   client,
		articles: articles,
		logger:   logger.With("service", "proofreader"),
	}
}

// ImproveReadability loads the article, pushes each paragraph through the
// proofreading conversation, and stores the reassembled content. Structure
// (headings, lists, code) is preserved verbatim.
func (p *Proofreader) ImproveReadability(ctx context.Context, articleID int64) error {
	article, err := p.articles.Get(ctx, articleID)
	if err != nil {
		return fmt.Errorf("load article %d: %w", articleID, err)
	}
	if article == nil {
		return validationf("article %d not found", articleID)
	}

	improved, rewritten, err := p.improveContent(ctx, article.Content)
	if err != nil {
		return fmt.Errorf("improve article %d: %w", articleID, err)
	}

	if err := p.articles.UpdateContent(ctx, articleID, improved); err != nil {
		return fmt.Errorf("store improved article %d: %w", articleID, err)
	}

	p.logger.Info("readability pass completed",
		"article_id", articleID,
		"paragraphs_rewritten", rewritten,
	)
	return nil
}

func (p *Proofreader) improveContent(ctx context.Context, content string) (string, int, error) {
	chunks := ChunkMarkdown(content)
	conv := &generation.Conversation{}

	out := make([]string, len(chunks))
	rewritten := 0

	for i, chunk := range chunks {
		if chunk.Type != ChunkParagraph {
			out[i] = chunk.Text
			continue
		}

		template := prompts.ReadabilityContinuation
		if conv.Len() == 0 {
			template = prompts.ReadabilityInitial
		}
		prompt, err := generation.Render(template, map[string]string{"chunk_text": chunk.Text})
		if err != nil {
			return "", 0, fmt.Errorf("render readability prompt: %w", err)
		}

		result, err := p.client.Generate(ctx, prompt, conv.Turns())
		if err != nil {
			return "", 0, fmt.Errorf("proofread paragraph %d: %w", i, err)
		}
		if result.Text == "" {
			return "", 0, validationf("empty proofread response for paragraph %d", i)
		}

		conv.Exchange(prompt, result.Text)
		out[i] = result.Text
		rewritten++
	}

	return strings.Join(out, "\n\n"), rewritten, nil
}
