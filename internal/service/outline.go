package service

import "strings"

// OutlineSection is one level-2 heading with its level-3 subsections.
type OutlineSection struct {
	Title       string
	Subsections []string
}

// ParseOutline extracts the ordered section structure from heading-marked
// outline text. A "## " line closes the previous section and opens a new
// one; a "### " line appends to the open section's subsections. Subsection
// lines before any section heading are dropped. Everything else is ignored.
func ParseOutline(outline string) []OutlineSection {
	var sections []OutlineSection
	var current *OutlineSection

	for _, line := range strings.Split(outline, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			if current != nil {
				sections = append(sections, *current)
			}
			current = &OutlineSection{Title: strings.TrimSpace(line[3:])}
		case strings.HasPrefix(line, "### ") && current != nil:
			current.Subsections = append(current.Subsections, strings.TrimSpace(line[4:]))
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}
