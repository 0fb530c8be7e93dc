package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphText_JoinsRuns(t *testing.T) {
	p := Paragraph{Runs: []Run{
		{Text: "Programming: ", Font: FontSpec{Bold: true}},
		{Text: "Go, Python"},
	}}
	assert.Equal(t, "Programming: Go, Python", p.Text())
}

func TestParagraphIsEmpty(t *testing.T) {
	assert.True(t, (&Paragraph{}).IsEmpty())
	assert.True(t, (&Paragraph{Runs: []Run{{Text: "   "}}}).IsEmpty())
	assert.False(t, (&Paragraph{Runs: []Run{{Text: "Skills"}}}).IsEmpty())
}

func TestDocumentText_OneLinePerParagraph(t *testing.T) {
	doc := &Document{Paragraphs: []Paragraph{
		{Runs: []Run{{Text: "SUMMARY"}}},
		{Runs: []Run{{Text: "Data analyst."}}},
	}}
	assert.Equal(t, "SUMMARY\nData analyst.", doc.Text())
}

func TestDocumentClone_IsDeep(t *testing.T) {
	doc := &Document{Paragraphs: []Paragraph{
		{Runs: []Run{{Text: "SKILLS", Font: FontSpec{Bold: true}}}},
	}}

	clone := doc.Clone()
	clone.Paragraphs[0].Runs[0].Text = "changed"

	assert.Equal(t, "SKILLS", doc.Paragraphs[0].Runs[0].Text)
	assert.Equal(t, "changed", clone.Paragraphs[0].Runs[0].Text)
}
