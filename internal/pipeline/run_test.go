package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/types"
)

type stubGenerator struct {
	responses map[types.SectionName]string
	err       error

	mu       sync.Mutex
	requests []rewriting.GenerateRequest
}

func (s *stubGenerator) Generate(_ context.Context, req rewriting.GenerateRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.responses[req.Section], nil
}

func textParagraph(text string, style string) types.Paragraph {
	return types.Paragraph{
		Runs:   []types.Run{{Text: text, Font: types.FontSpec{Name: "Calibri", SizePt: 11}}},
		Format: types.ParagraphFormat{Style: style},
	}
}

func sampleRequest() *types.OptimizationRequest {
	doc := &types.Document{Paragraphs: []types.Paragraph{
		textParagraph("SUMMARY", "Heading 2"),
		textParagraph("Engineer who writes software.", "Normal"),
		textParagraph("SKILLS", "Heading 2"),
		textParagraph("Languages: Java", "Normal"),
		textParagraph("PROJECT EXPERIENCE", "Heading 2"),
		textParagraph("OLD PROJECT", "Normal"),
		textParagraph("EDUCATION", "Heading 2"),
		textParagraph("BSc Computer Science", "Normal"),
	}}
	return &types.OptimizationRequest{
		Document: doc,
		JobText:  "We need Python and SQL for data pipelines",
		Library: []types.ProjectEntry{
			{Index: 0, Title: "Batch ETL", Description: "Python SQL pipelines", Tags: []string{"python", "sql"}},
			{Index: 1, Title: "Game Jam", Description: "Unity prototype"},
		},
	}
}

func TestRunFullPipeline(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSummary:           "Data engineer building Python and SQL pipelines.",
		types.SectionSkills:            "Languages: Python, SQL",
		types.SectionProjectExperience: "BATCH ETL\n• Built Python pipelines processing SQL data",
	}}

	result, err := Run(context.Background(), sampleRequest(), Options{Generator: gen})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.LowConfidence)

	text := result.Document.Text()
	assert.Contains(t, text, "Data engineer building Python and SQL pipelines.")
	assert.Contains(t, text, "Languages: Python, SQL")
	assert.Contains(t, text, "EDUCATION", "untouched sections survive")
	assert.NotContains(t, text, "Engineer who writes software.")

	assert.Greater(t, result.OptimizedScore, result.BaselineScore)

	require.NotEmpty(t, result.SelectedProjects)
	assert.Equal(t, "Batch ETL", result.SelectedProjects[0].Project.Title)

	require.Len(t, result.Sections, 3)
	for _, s := range result.Sections {
		assert.True(t, s.Rewritten, "section %s", s.Name)
		assert.Empty(t, s.Warning)
	}
}

func TestRunEmptyDocumentFatal(t *testing.T) {
	req := &types.OptimizationRequest{Document: &types.Document{}}
	_, err := Run(context.Background(), req, Options{Generator: &stubGenerator{}})

	var inputErr *InputFormatError
	require.ErrorAs(t, err, &inputErr)
}

func TestRunLowConfidenceSkipsRewriting(t *testing.T) {
	req := &types.OptimizationRequest{
		Document: &types.Document{Paragraphs: []types.Paragraph{
			textParagraph("Some freeform text", "Normal"),
			textParagraph("with no headings anywhere", "Normal"),
		}},
		JobText: "Python SQL",
	}

	result, err := Run(context.Background(), req, Options{Generator: &stubGenerator{}})
	require.NoError(t, err)

	assert.True(t, result.LowConfidence)
	assert.Equal(t, result.BaselineScore, result.OptimizedScore)
	assert.Equal(t, req.Document, result.Document)
	assert.Empty(t, result.Sections)
}

func TestRunGeneratorFailureKeepsOriginalContent(t *testing.T) {
	gen := &stubGenerator{err: errors.New("service unavailable")}

	req := sampleRequest()
	result, err := Run(context.Background(), req, Options{Generator: gen})
	require.NoError(t, err, "generator unavailability is not fatal")

	text := result.Document.Text()
	assert.Contains(t, text, "Engineer who writes software.")
	assert.Contains(t, text, "Languages: Java")

	require.Len(t, result.Sections, 3)
	for _, s := range result.Sections {
		assert.True(t, s.FallbackToOriginal, "section %s", s.Name)
		assert.Contains(t, s.Warning, "service unavailable")
	}
	assert.NotEmpty(t, result.Warnings())
	assert.Equal(t, result.BaselineScore, result.OptimizedScore)
}

func TestRunOverrideHonoredVerbatim(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSummary:           "Generated summary.",
		types.SectionSkills:            "Languages: Python",
		types.SectionProjectExperience: "BATCH ETL\n• Built pipelines with 5 sources",
	}}

	req := sampleRequest()
	req.Overrides = map[types.SectionName]string{
		types.SectionSummary: "My hand-written summary.",
	}

	result, err := Run(context.Background(), req, Options{Generator: gen})
	require.NoError(t, err)

	assert.Contains(t, result.Document.Text(), "My hand-written summary.")
	assert.NotContains(t, result.Document.Text(), "Generated summary.")

	var summary *types.SectionStatus
	for i := range result.Sections {
		if result.Sections[i].Name == types.SectionSummary {
			summary = &result.Sections[i]
		}
	}
	require.NotNil(t, summary)
	assert.True(t, summary.UsedOverride)
	assert.False(t, summary.Rewritten)
}

func TestRunOverrideVisibleInOtherSectionPrompts(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSkills:            "Languages: Python",
		types.SectionProjectExperience: "BATCH ETL\n• Built pipelines with 5 sources",
	}}

	req := sampleRequest()
	req.Overrides = map[types.SectionName]string{
		types.SectionSummary: "My hand-written summary.",
	}

	_, err := Run(context.Background(), req, Options{Generator: gen})
	require.NoError(t, err)

	// The overridden section is not generated, but every generated section's
	// resume context carries the edited text instead of the original.
	require.NotEmpty(t, gen.requests)
	for _, r := range gen.requests {
		assert.NotEqual(t, types.SectionSummary, r.Section)
		assert.Contains(t, r.ResumeText, "My hand-written summary.")
		assert.NotContains(t, r.ResumeText, "Engineer who writes software.")
	}
}
