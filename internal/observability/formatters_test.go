package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/sections"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestPrintKeywordStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := keywords.NewSet("python", "sql", "tableau")
	resume := keywords.NewSet("python", "excel")

	p.PrintKeywordStats(job, resume, 1.0/3.0)
	output := buf.String()

	assert.Contains(t, output, "JOB KEYWORDS")
	assert.Contains(t, output, "Job keywords:     3")
	assert.Contains(t, output, "Matched:          1")
	assert.Contains(t, output, "0.33")
	assert.Contains(t, output, "✓ python")
}

func TestPrintKeywordStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywordStats(keywords.Set{}, keywords.Set{}, 0)

	assert.Empty(t, buf.String())
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	located := &sections.Located{Sections: []types.Section{
		{Name: types.SectionSummary, Heading: "SUMMARY", Start: 0, End: 3},
		{Name: types.SectionSkills, Heading: "SKILLS", Start: 3, End: 6},
	}}

	p.PrintSections(located)
	output := buf.String()

	assert.Contains(t, output, "LOCATED SECTIONS")
	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "[0:3]")
	assert.NotContains(t, output, "LOW CONFIDENCE")
}

func TestPrintSections_LowConfidence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	located := &sections.Located{
		Sections:      []types.Section{{Name: types.SectionOther, Start: 0, End: 4}},
		LowConfidence: true,
	}

	p.PrintSections(located)

	assert.Contains(t, buf.String(), "LOW CONFIDENCE")
	assert.Contains(t, buf.String(), "(no heading)")
}

func TestPrintRankedProjects(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedProjects([]types.RankedProject{
		{Project: types.ProjectEntry{Title: "Batch ETL", Tags: []string{"python", "sql"}}, Score: 0.8},
		{Project: types.ProjectEntry{Title: "Game Jam"}, Score: 0.1},
	})
	output := buf.String()

	assert.Contains(t, output, "SELECTED PROJECTS")
	assert.Contains(t, output, "1. Batch ETL (score: 0.80)")
	assert.Contains(t, output, "python, sql")
	assert.Contains(t, output, "2. Game Jam")
}

func TestPrintRankedProjects_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedProjects(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.OptimizationResult{
		RunID:          "run-123",
		BaselineScore:  0.25,
		OptimizedScore: 0.75,
		Sections: []types.SectionStatus{
			{Name: types.SectionSummary, Rewritten: true},
			{Name: types.SectionSkills, FallbackToOriginal: true, Warning: "generation failed"},
		},
	}

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION RESULT")
	assert.Contains(t, output, "run-123")
	assert.Contains(t, output, "0.25")
	assert.Contains(t, output, "0.75")
	assert.Contains(t, output, "rewritten")
	assert.Contains(t, output, "fallback")
	assert.Contains(t, output, "generation failed")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}
