package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"editorial_pipeline/internal/generation"
	"editorial_pipeline/internal/service/mocks"
)

type EditorTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	client *mocks.MockGenerator
	editor *Editor
}

func (s *EditorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = mocks.NewMockGenerator(s.ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.editor = NewEditor(s.client, logger)
}

func (s *EditorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEditorTestSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

const splitContent = "## Alpha\n\nalpha body\n\n## Beta\n\nbeta body"

func (s *EditorTestSuite) TestSplitIntoSeries_AssemblesParts() {
	ctx := context.Background()

	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `[
			{"title": "One", "excerpt": "e1", "ai_summary": "s1", "sections": ["Alpha"]},
			{"title": "Two", "excerpt": "e2", "ai_summary": "s2", "sections": ["Beta"]}
		]`}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `{"introduction": "i1", "conclusion": "c1"}`}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `{"introduction": "i2", "conclusion": "c2"}`}, nil)

	parts, err := s.editor.SplitIntoSeries(ctx, "Topic", splitContent, "- a source", 2)

	s.NoError(err)
	s.Len(parts, 2)

	s.Equal("One", parts[0].Title)
	s.Contains(parts[0].Content, "## Introduction\n\ni1")
	s.Contains(parts[0].Content, "alpha body")
	s.Contains(parts[0].Content, "## Conclusion\n\nc1")
	s.Contains(parts[0].Content, "listed in the final part")
	s.NotContains(parts[0].Content, "## Sources\n- a source")

	s.Equal("Two", parts[1].Title)
	s.Contains(parts[1].Content, "beta body")
	s.Contains(parts[1].Content, "## Sources\n- a source")
}

func (s *EditorTestSuite) TestSplitIntoSeries_WrongPartCount() {
	ctx := context.Background()

	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `[{"title": "Only", "sections": ["Alpha"]}]`}, nil)

	_, err := s.editor.SplitIntoSeries(ctx, "Topic", splitContent, "", 2)

	var verr *ValidationError
	s.ErrorAs(err, &verr)
	s.Contains(err.Error(), "expected 2")
}

func (s *EditorTestSuite) TestSplitIntoSeries_InvalidPlanJSON() {
	ctx := context.Background()

	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "Sure! Here is the plan you asked for."}, nil)

	_, err := s.editor.SplitIntoSeries(ctx, "Topic", splitContent, "", 2)

	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *EditorTestSuite) TestSplitIntoSeries_FencedPlanIsAccepted() {
	ctx := context.Background()

	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: "```json\n[{\"title\": \"Only\", \"sections\": [\"Alpha\"]}]\n```"}, nil)
	s.client.EXPECT().Generate(ctx, gomock.Any(), gomock.Any()).
		Return(generation.Result{Text: `{"introduction": "i", "conclusion": "c"}`}, nil)

	parts, err := s.editor.SplitIntoSeries(ctx, "Topic", splitContent, "", 1)

	s.NoError(err)
	s.Len(parts, 1)
}

func TestExtractSections(t *testing.T) {
	content := "## Introduction\n\nhi\n\n## Alpha\n\nalpha body\n\n### Sub\n\nsub body\n\n## Beta\n\nbeta body\n\n## Conclusion\n\nbye"

	t.Run("slices to next level-2 heading", func(t *testing.T) {
		got := extractSections(content, []string{"Alpha"})
		assert.Contains(t, got, "## Alpha")
		assert.Contains(t, got, "sub body")
		assert.NotContains(t, got, "beta body")
	})

	t.Run("last section runs to end", func(t *testing.T) {
		got := extractSections(content, []string{"Conclusion", "Beta"})
		assert.Contains(t, got, "beta body")
		assert.NotContains(t, got, "bye")
	})

	t.Run("skips intro and conclusion", func(t *testing.T) {
		got := extractSections(content, []string{"Introduction", "Conclusion"})
		assert.Empty(t, got)
	})

	t.Run("finds level-3 headings", func(t *testing.T) {
		got := extractSections(content, []string{"Sub"})
		assert.Contains(t, got, "sub body")
	})

	t.Run("unknown sections are skipped", func(t *testing.T) {
		got := extractSections(content, []string{"Missing", "Alpha"})
		assert.Contains(t, got, "alpha body")
	})
}
