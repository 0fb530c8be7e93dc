package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/sections"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func para(text string, format types.ParagraphFormat, font types.FontSpec) types.Paragraph {
	return types.Paragraph{Runs: []types.Run{{Text: text, Font: font}}, Format: format}
}

var (
	headingFont = types.FontSpec{Name: "Georgia", SizePt: 13, Bold: true}
	bodyFont    = types.FontSpec{Name: "Georgia", SizePt: 10.5}
	headingFmt  = types.ParagraphFormat{Style: "Heading 2"}
	bodyFmt     = types.ParagraphFormat{Style: "Normal"}
	bulletFmt   = types.ParagraphFormat{Style: "List Paragraph", Bullet: true, BulletMarker: "•"}
)

// sampleDoc builds a resume with Summary, Skills, Project Experience, and
// Education sections in the test fixture formatting.
func sampleDoc() *types.Document {
	return &types.Document{Paragraphs: []types.Paragraph{
		para("Jane Smith", bodyFmt, bodyFont),
		para("SUMMARY", headingFmt, headingFont),
		para("Engineer with broad experience.", bodyFmt, bodyFont),
		para("SKILLS", headingFmt, headingFont),
		para("Languages: Java", bodyFmt, bodyFont),
		para("PROJECT EXPERIENCE", headingFmt, headingFont),
		para("OLD PROJECT", bodyFmt, types.FontSpec{Name: "Georgia", SizePt: 10.5, Bold: true}),
		para("Did old things", bulletFmt, bodyFont),
		para("EDUCATION", headingFmt, headingFont),
		para("BSc Computer Science", bodyFmt, bodyFont),
	}}
}

func locate(t *testing.T, doc *types.Document) *sections.Located {
	t.Helper()
	located, err := sections.Locate(doc, nil)
	require.NoError(t, err)
	return located
}

func TestRebuildReplacesBodyKeepsHeading(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, report, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSummary: "Data engineer focused on pipelines.",
	})
	require.NoError(t, err)
	require.NotNil(t, report)

	text := out.Text()
	assert.Contains(t, text, "SUMMARY")
	assert.Contains(t, text, "Data engineer focused on pipelines.")
	assert.NotContains(t, text, "Engineer with broad experience.")
}

func TestRebuildClonesTemplateFormatting(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, _, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSummary: "New summary line.",
	})
	require.NoError(t, err)

	var found *types.Paragraph
	for i := range out.Paragraphs {
		if out.Paragraphs[i].Text() == "New summary line." {
			found = &out.Paragraphs[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, bodyFont, found.Runs[0].Font)
	assert.Equal(t, bodyFmt, found.Format)
}

func TestRebuildUntouchedSectionsUnchanged(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, _, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSummary: "New summary.",
	})
	require.NoError(t, err)

	relocated := locate(t, out)
	edu := relocated.ByName(types.SectionOther)
	require.NotNil(t, edu)

	text := out.Text()
	assert.Contains(t, text, "EDUCATION")
	assert.Contains(t, text, "BSc Computer Science")
	assert.Contains(t, text, "Languages: Java")
	assert.Contains(t, text, "OLD PROJECT")
}

func TestRebuildOwnTextDriftLimitedToRunRegrouping(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	// Feeding a section its own raw text back through the renderer must not
	// change what the document says, only how runs are grouped within a line.
	summary := located.ByName(types.SectionSummary)
	skills := located.ByName(types.SectionSkills)
	require.NotNil(t, summary)
	require.NotNil(t, skills)

	out, _, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSummary: summary.RawText,
		types.SectionSkills:  skills.RawText,
	})
	require.NoError(t, err)

	require.Len(t, out.Paragraphs, len(doc.Paragraphs))
	for i := range doc.Paragraphs {
		assert.Equal(t, doc.Paragraphs[i].Text(), out.Paragraphs[i].Text(), "paragraph %d", i)
		assert.Equal(t, doc.Paragraphs[i].Format, out.Paragraphs[i].Format, "paragraph %d", i)
	}

	// The skills line is regrouped into a bold category run plus items.
	var skillsPara *types.Paragraph
	for i := range out.Paragraphs {
		if out.Paragraphs[i].Text() == "Languages: Java" {
			skillsPara = &out.Paragraphs[i]
		}
	}
	require.NotNil(t, skillsPara)
	require.Len(t, skillsPara.Runs, 2)
	assert.True(t, skillsPara.Runs[0].Font.Bold)
	assert.Equal(t, bodyFont, skillsPara.Runs[1].Font)
}

func TestRebuildNoRewritesIsIdentity(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, _, err := Rebuild(doc, located, nil)
	require.NoError(t, err)
	assert.Equal(t, doc.Paragraphs, out.Paragraphs)
}

func TestRebuildSkillsBoldCategoryRuns(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, _, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSkills: "Languages: Python, SQL\nTools: Airflow",
	})
	require.NoError(t, err)

	var found *types.Paragraph
	for i := range out.Paragraphs {
		if out.Paragraphs[i].Text() == "Languages: Python, SQL" {
			found = &out.Paragraphs[i]
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.Runs, 2)
	assert.Equal(t, "Languages:", found.Runs[0].Text)
	assert.True(t, found.Runs[0].Font.Bold)
	assert.Equal(t, " Python, SQL", found.Runs[1].Text)
	assert.False(t, found.Runs[1].Font.Bold)
}

func TestRebuildProjectTitlesAndBullets(t *testing.T) {
	doc := sampleDoc()
	located := locate(t, doc)

	out, _, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionProjectExperience: "REALTIME DASHBOARD\n• Built streaming metrics UI\n• Cut page load by 40%",
	})
	require.NoError(t, err)

	var title, bullet *types.Paragraph
	for i := range out.Paragraphs {
		switch out.Paragraphs[i].Text() {
		case "REALTIME DASHBOARD":
			title = &out.Paragraphs[i]
		case "Built streaming metrics UI":
			bullet = &out.Paragraphs[i]
		}
	}
	require.NotNil(t, title)
	assert.True(t, title.Runs[0].Font.Bold)

	require.NotNil(t, bullet, "bullet glyph should be stripped from the text")
	assert.True(t, bullet.Format.Bullet)
	assert.Equal(t, bulletFmt, bullet.Format)
}

func TestRebuildSynthesizesMissingSectionAfterSummary(t *testing.T) {
	doc := &types.Document{Paragraphs: []types.Paragraph{
		para("SUMMARY", headingFmt, headingFont),
		para("A summary.", bodyFmt, bodyFont),
		para("EDUCATION", headingFmt, headingFont),
		para("BSc", bodyFmt, bodyFont),
	}}
	located := locate(t, doc)

	out, report, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionSkills: "Languages: Go",
	})
	require.NoError(t, err)
	require.Contains(t, report.Synthesized, types.SectionSkills)

	texts := make([]string, 0, len(out.Paragraphs))
	for i := range out.Paragraphs {
		texts = append(texts, out.Paragraphs[i].Text())
	}
	require.Contains(t, texts, "SKILLS")

	var skillsIdx, eduIdx int
	for i, s := range texts {
		if s == "SKILLS" {
			skillsIdx = i
		}
		if s == "EDUCATION" {
			eduIdx = i
		}
	}
	assert.Less(t, skillsIdx, eduIdx, "synthesized section goes after Summary, before the rest")
}

func TestRebuildTemplateFallbackReported(t *testing.T) {
	// Project section with no bulleted paragraph: bullet formatting must fall
	// back to the default profile and be reported.
	doc := &types.Document{Paragraphs: []types.Paragraph{
		para("PROJECT EXPERIENCE", headingFmt, headingFont),
		para("A prose-only project description", bodyFmt, bodyFont),
	}}
	located := locate(t, doc)

	out, report, err := Rebuild(doc, located, map[types.SectionName]string{
		types.SectionProjectExperience: "• Shipped the rework in one quarter",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Text(), "Shipped the rework in one quarter")
	assert.NotEmpty(t, report.Notes)

	var bullet *types.Paragraph
	for i := range out.Paragraphs {
		if out.Paragraphs[i].Text() == "Shipped the rework in one quarter" {
			bullet = &out.Paragraphs[i]
		}
	}
	require.NotNil(t, bullet)
	assert.True(t, bullet.Format.Bullet)
}

func TestRebuildEmptyDocumentFatal(t *testing.T) {
	_, _, err := Rebuild(&types.Document{}, &sections.Located{}, nil)
	assert.ErrorIs(t, err, ErrNilDocument)
}
