package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutline(t *testing.T) {
	sections := ParseOutline("## A\n### A1\n### A2\n## B\n")

	assert.Equal(t, []OutlineSection{
		{Title: "A", Subsections: []string{"A1", "A2"}},
		{Title: "B"},
	}, sections)
}

func TestParseOutline_DropsOrphanSubsections(t *testing.T) {
	sections := ParseOutline("### orphan\n## First\n### kept\n")

	assert.Equal(t, []OutlineSection{
		{Title: "First", Subsections: []string{"kept"}},
	}, sections)
}

func TestParseOutline_IgnoresProse(t *testing.T) {
	outline := "Here is the outline you asked for.\n\n## Background\nSome notes.\n### Early years\n\n## Legacy\n"
	sections := ParseOutline(outline)

	assert.Equal(t, []OutlineSection{
		{Title: "Background", Subsections: []string{"Early years"}},
		{Title: "Legacy"},
	}, sections)
}

func TestParseOutline_Empty(t *testing.T) {
	assert.Nil(t, ParseOutline(""))
	assert.Nil(t, ParseOutline("just prose, no headings"))
}
