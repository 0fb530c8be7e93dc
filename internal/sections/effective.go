package sections

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// canonicalHeadings is the heading text used when an overridden section is
// absent from the document and its block must be appended.
var canonicalHeadings = map[types.SectionName]string{
	types.SectionSummary:           "SUMMARY",
	types.SectionSkills:            "SKILLS",
	types.SectionProjectExperience: "PROJECT EXPERIENCE",
}

// appendOrder fixes the order appended blocks are emitted in.
var appendOrder = []types.SectionName{
	types.SectionSummary,
	types.SectionSkills,
	types.SectionProjectExperience,
}

// EffectiveText renders the located document as plain text with per-section
// overrides spliced in place of the original section bodies. The result is
// prompt context only; the document itself is never mutated, so formatting
// is still reconstructed from the original. Overrides for sections the
// document does not contain are appended at the end under their canonical
// heading.
func (l *Located) EffectiveText(overrides map[types.SectionName]string) string {
	var blocks []string
	spliced := make(map[types.SectionName]bool)

	for _, s := range l.Sections {
		var lines []string
		if s.Heading != "" {
			lines = append(lines, s.Heading)
		}

		body := s.RawText
		if s.Name != types.SectionOther && !spliced[s.Name] {
			if o := strings.TrimSpace(overrides[s.Name]); o != "" {
				body = o
			}
			spliced[s.Name] = true
		}
		if body != "" {
			lines = append(lines, body)
		}

		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}

	for _, name := range appendOrder {
		if spliced[name] {
			continue
		}
		if o := strings.TrimSpace(overrides[name]); o != "" {
			blocks = append(blocks, canonicalHeadings[name]+"\n"+o)
		}
	}

	return strings.Join(blocks, "\n\n")
}
