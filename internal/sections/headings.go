// Package sections locates named sections inside a loosely structured
// document by scanning its paragraph stream for recognized headings.
package sections

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Aliases maps canonical section names to the heading spellings that select
// them. Matching is case-insensitive on space-normalized text.
type Aliases map[types.SectionName][]string

// DefaultAliases returns the recognized heading spellings per section kind.
func DefaultAliases() Aliases {
	return Aliases{
		types.SectionSummary:           {"summary", "professional summary"},
		types.SectionSkills:            {"skills", "technical skills"},
		types.SectionProjectExperience: {"project experience", "projects"},
	}
}

// otherHeadings are headings that delimit sections we never rewrite. They
// still partition the document so a rewritten section cannot swallow them.
var otherHeadings = []string{
	"work experience",
	"education",
	"achievements",
	"potential publications",
	"extra & co-curricular activities",
	"certifications",
}

// normalizeHeading collapses internal whitespace and lowercases the text so
// heading comparison tolerates stray spacing and casing.
func normalizeHeading(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// classifyHeading reports whether the paragraph is a heading and, if so,
// which section kind it opens. Paragraphs using a heading style are accepted
// even when their text matches no alias; they open an Other section.
func classifyHeading(p *types.Paragraph, aliases Aliases) (types.SectionName, bool) {
	norm := normalizeHeading(p.Text())
	if norm == "" {
		return "", false
	}

	for name, spellings := range aliases {
		for _, s := range spellings {
			if norm == s {
				return name, true
			}
		}
	}
	for _, s := range otherHeadings {
		if norm == s {
			return types.SectionOther, true
		}
	}
	if strings.HasPrefix(strings.ToLower(p.Format.Style), "heading") {
		return types.SectionOther, true
	}

	return "", false
}
