// Package rendering reconstructs a formatted document from located sections
// and rewritten section text, cloning each section's own formatting onto the
// new content so the result stays visually consistent with the input.
package rendering

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/sections"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ErrNilDocument is returned when Rebuild is handed no document to work on.
var ErrNilDocument = errors.New("no document to rebuild")

// Report collects non-fatal reconstruction notes: sections synthesized from
// scratch and template fallbacks.
type Report struct {
	Synthesized []types.SectionName
	Notes       []string
}

func (r *Report) note(format string, args ...any) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Rebuild produces a new document in which every section named in rewrites
// has its body replaced by the rewritten text, rendered in that section's own
// formatting. Paragraphs of untouched sections are carried over unchanged. A
// rewritten section missing from the document is synthesized after Summary,
// or at the document end when Summary is absent too.
func Rebuild(doc *types.Document, located *sections.Located, rewrites map[types.SectionName]string) (*types.Document, *Report, error) {
	if doc == nil || len(doc.Paragraphs) == 0 {
		return nil, nil, ErrNilDocument
	}
	if located == nil || len(located.Sections) == 0 {
		return nil, nil, errors.New("no located sections to rebuild from")
	}

	report := &Report{}
	out := &types.Document{}

	// Output index right after the Summary section, for synthesized inserts.
	insertAt := -1

	for i := range located.Sections {
		s := &located.Sections[i]

		text, rewritten := rewrites[s.Name]
		if !rewritten || s.Name == types.SectionOther {
			out.Paragraphs = append(out.Paragraphs, doc.Paragraphs[s.Start:s.End]...)
			if s.Name == types.SectionSummary {
				insertAt = len(out.Paragraphs)
			}
			continue
		}

		out.Paragraphs = append(out.Paragraphs, renderSection(doc, s, text, report)...)
		if s.Name == types.SectionSummary {
			insertAt = len(out.Paragraphs)
		}
	}
	if insertAt == -1 {
		insertAt = len(out.Paragraphs)
	}

	// Synthesize target sections the document never had, in a stable order.
	for _, name := range []types.SectionName{types.SectionSummary, types.SectionSkills, types.SectionProjectExperience} {
		text, ok := rewrites[name]
		if !ok || located.ByName(name) != nil {
			continue
		}
		block := synthesizeSection(name, text, report)
		out.Paragraphs = append(out.Paragraphs[:insertAt], append(block, out.Paragraphs[insertAt:]...)...)
		insertAt += len(block)
		report.Synthesized = append(report.Synthesized, name)
	}

	return out, report, nil
}

// renderSection keeps the section's heading paragraph and renders the
// rewritten text as its new body. A trailing blank paragraph of the original
// body is preserved to keep inter-section spacing intact.
func renderSection(doc *types.Document, s *types.Section, text string, report *Report) []types.Paragraph {
	var out []types.Paragraph

	bodyStart := s.Start
	if s.Heading != "" {
		out = append(out, doc.Paragraphs[s.Start].Clone())
		bodyStart = s.Start + 1
	}

	out = append(out, renderBody(doc, s, text, report)...)

	if s.End > bodyStart && doc.Paragraphs[s.End-1].IsEmpty() {
		out = append(out, doc.Paragraphs[s.End-1].Clone())
	}
	return out
}

// renderBody emits one paragraph per non-empty logical line of the rewritten
// text, formatted per the section kind.
func renderBody(doc *types.Document, s *types.Section, text string, report *Report) []types.Paragraph {
	body, ok := templateProfile(doc, s.TemplateIndex, defaultBodyProfile)
	if !ok {
		report.note("%s: no body template paragraph, using default formatting", s.Name)
	}

	var out []types.Paragraph
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch s.Name {
		case types.SectionSkills:
			out = append(out, renderSkillsLine(line, body))
		case types.SectionProjectExperience:
			out = append(out, renderProjectLine(doc, s, line, body, report))
		default:
			out = append(out, newParagraph(line, body))
		}
	}
	return out
}

// renderSkillsLine renders "Category: items" with a bold category run
// followed by a plain run, matching the usual skills layout.
func renderSkillsLine(line string, body profile) types.Paragraph {
	line = stripBulletGlyph(line)
	i := strings.Index(line, ":")
	if i <= 0 {
		return newParagraph(line, body)
	}

	boldFont := body.font
	boldFont.Bold = true
	return types.Paragraph{
		Runs: []types.Run{
			{Text: line[:i+1], Font: boldFont},
			{Text: " " + strings.TrimSpace(line[i+1:]), Font: body.font},
		},
		Format: body.format,
	}
}

// renderProjectLine renders a project title in the title template's
// formatting (bold) and every other line as a bullet in the bullet
// template's formatting.
func renderProjectLine(doc *types.Document, s *types.Section, line string, body profile, report *Report) types.Paragraph {
	if !hasBulletGlyph(line) && looksLikeTitle(line) {
		title, ok := templateProfile(doc, s.TitleTemplateIndex, defaultBodyProfile)
		if !ok {
			report.note("%s: no title template paragraph, using default formatting", s.Name)
		}
		title.font.Bold = true
		return newParagraph(line, title)
	}

	bullet, ok := templateProfile(doc, s.BulletTemplateIndex, defaultBulletProfile)
	if !ok {
		report.note("%s: no bullet template paragraph, using default formatting", s.Name)
	}
	bullet.format.Bullet = true
	return newParagraph(stripBulletGlyph(line), bullet)
}

// synthesizeSection builds a heading plus body from the default profiles for
// a target section the input document did not contain.
func synthesizeSection(name types.SectionName, text string, report *Report) []types.Paragraph {
	out := []types.Paragraph{newParagraph(syntheticHeadings[name], defaultHeadingProfile)}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch name {
		case types.SectionSkills:
			out = append(out, renderSkillsLine(line, defaultBodyProfile))
		case types.SectionProjectExperience:
			if !hasBulletGlyph(line) && looksLikeTitle(line) {
				prof := defaultBodyProfile
				prof.font.Bold = true
				out = append(out, newParagraph(line, prof))
			} else {
				out = append(out, newParagraph(stripBulletGlyph(line), defaultBulletProfile))
			}
		default:
			out = append(out, newParagraph(line, defaultBodyProfile))
		}
	}

	report.note("%s: section not found in document, synthesized with default formatting", name)
	return out
}
