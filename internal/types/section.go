package types

// SectionName identifies a recognized resume section kind.
type SectionName string

// Recognized section kinds. Any paragraph span that does not belong to a
// recognized heading falls into SectionOther.
const (
	SectionSummary           SectionName = "summary"
	SectionSkills            SectionName = "skills"
	SectionProjectExperience SectionName = "project_experience"
	SectionOther             SectionName = "other"
)

// Section is a named contiguous span of paragraphs within a Document.
// Template indexes point into the source document's paragraph slice and are
// -1 when no suitable template paragraph exists. Sections become stale if the
// document is mutated; callers must re-locate after reconstruction.
type Section struct {
	Name    SectionName `json:"name"`
	Heading string      `json:"heading,omitempty"` // heading paragraph text; empty for a leading Other span
	Start   int         `json:"start"`
	End     int         `json:"end"` // exclusive
	RawText string      `json:"raw_text"`

	// TemplateIndex is the representative body paragraph whose formatting is
	// cloned when emitting new content (heading paragraph as fallback).
	TemplateIndex int `json:"template_index"`
	// BulletTemplateIndex is the first bulleted body paragraph, if any.
	BulletTemplateIndex int `json:"bullet_template_index"`
	// TitleTemplateIndex is the first non-bulleted body paragraph, if any.
	TitleTemplateIndex int `json:"title_template_index"`
}

// Len returns the number of paragraphs the section spans.
func (s *Section) Len() int {
	return s.End - s.Start
}
