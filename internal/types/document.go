// Package types provides type definitions for the structured data artifacts
// exchanged between the resume optimizer pipeline stages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Document is an ordered sequence of formatted paragraphs.
type Document struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph holds a text run list plus paragraph-level formatting.
type Paragraph struct {
	Runs   []Run           `json:"runs"`
	Format ParagraphFormat `json:"format"`
}

// Run is a span of text with uniform character formatting.
type Run struct {
	Text string   `json:"text"`
	Font FontSpec `json:"font"`
}

// FontSpec describes character formatting for a run.
type FontSpec struct {
	Name   string  `json:"name,omitempty"`
	SizePt float64 `json:"size_pt,omitempty"`
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
}

// ParagraphFormat describes paragraph-level formatting.
type ParagraphFormat struct {
	Style         string  `json:"style,omitempty"` // e.g. "Heading 1", "Normal"
	IndentLevel   int     `json:"indent_level,omitempty"`
	Bullet        bool    `json:"bullet,omitempty"`
	BulletMarker  string  `json:"bullet_marker,omitempty"` // e.g. "•"
	ListLevel     int     `json:"list_level,omitempty"`
	SpaceBeforePt float64 `json:"space_before_pt,omitempty"`
	SpaceAfterPt  float64 `json:"space_after_pt,omitempty"`
}

// Text returns the concatenated run text of the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph carries no visible text.
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// Clone returns a deep copy of the paragraph.
func (p *Paragraph) Clone() Paragraph {
	runs := make([]Run, len(p.Runs))
	copy(runs, p.Runs)
	return Paragraph{Runs: runs, Format: p.Format}
}

// Text returns the full document text, one line per paragraph.
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.Paragraphs))
	for i := range d.Paragraphs {
		lines = append(lines, d.Paragraphs[i].Text())
	}
	return strings.Join(lines, "\n")
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Paragraphs: make([]Paragraph, 0, len(d.Paragraphs))}
	for i := range d.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, d.Paragraphs[i].Clone())
	}
	return out
}
