package rewriting

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// stubGenerator returns canned responses per section and records requests.
// Sections are generated concurrently, so recording takes the lock.
type stubGenerator struct {
	responses map[types.SectionName]string
	errs      map[types.SectionName]error

	mu       sync.Mutex
	requests []GenerateRequest
}

func (s *stubGenerator) Generate(_ context.Context, req GenerateRequest) (string, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	if err, ok := s.errs[req.Section]; ok {
		return "", err
	}
	return s.responses[req.Section], nil
}

func TestRewriteSectionsSuccess(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSummary:           "Data engineer with four years building pipelines.",
		types.SectionSkills:            "Languages: Python, SQL\nTools: Airflow, dbt",
		types.SectionProjectExperience: "PIPELINE REBUILD\n• Reduced load times by 40% using Spark",
	}}

	results := RewriteSections(context.Background(), gen, Input{
		JobText:  "Looking for a data engineer",
		Keywords: []string{"python", "sql"},
		Sections: []SectionInput{
			{Name: types.SectionSummary, OriginalText: "old summary"},
			{Name: types.SectionSkills, OriginalText: "old skills"},
			{Name: types.SectionProjectExperience, OriginalText: "old projects"},
		},
	})

	require.Len(t, results, 3)
	assert.Equal(t, types.SectionSummary, results[0].Name)
	assert.Equal(t, "Data engineer with four years building pipelines.", results[0].Text)
	assert.False(t, results[0].Fallback)
	assert.Empty(t, results[0].Warning)

	assert.Equal(t, "Languages: Python, SQL\nTools: Airflow, dbt", results[1].Text)

	assert.Contains(t, results[2].Text, "Reduced load times")
	require.Len(t, results[2].Checks, 1)
	assert.True(t, results[2].Checks[0].StrongVerb)
	assert.True(t, results[2].Checks[0].Quantified)
}

func TestRewriteSectionsFailureFallsBackPerSection(t *testing.T) {
	gen := &stubGenerator{
		responses: map[types.SectionName]string{
			types.SectionSummary: "Rewritten summary.",
		},
		errs: map[types.SectionName]error{
			types.SectionSkills: &APICallError{Message: "rate limited"},
		},
	}

	results := RewriteSections(context.Background(), gen, Input{
		Sections: []SectionInput{
			{Name: types.SectionSummary, OriginalText: "old summary"},
			{Name: types.SectionSkills, OriginalText: "Languages: Go"},
		},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "Rewritten summary.", results[0].Text)
	assert.False(t, results[0].Fallback)

	assert.Equal(t, "Languages: Go", results[1].Text)
	assert.True(t, results[1].Fallback)
	assert.Contains(t, results[1].Warning, "rate limited")
}

func TestRewriteSectionsOverrideSkipsGeneration(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{}}

	results := RewriteSections(context.Background(), gen, Input{
		Sections: []SectionInput{
			{Name: types.SectionSummary, OriginalText: "old", Override: "My own words."},
		},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "My own words.", results[0].Text)
	assert.True(t, results[0].UsedOverride)
	assert.Empty(t, gen.requests, "override should not call the generator")
}

func TestRewriteSectionsUnwrapsJSONObjectReply(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSummary: "```json\n{\"summary\": \"Unwrapped summary text.\"}\n```",
	}}

	results := RewriteSections(context.Background(), gen, Input{
		Sections: []SectionInput{{Name: types.SectionSummary, OriginalText: "old"}},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "Unwrapped summary text.", results[0].Text)
	assert.False(t, results[0].Fallback)
}

func TestRewriteSectionsMalformedSkillsFallsBack(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionSkills: "just a blob of prose with no category lines",
	}}

	results := RewriteSections(context.Background(), gen, Input{
		Sections: []SectionInput{{Name: types.SectionSkills, OriginalText: "Languages: Go"}},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "Languages: Go", results[0].Text)
	assert.True(t, results[0].Fallback)
	assert.Contains(t, results[0].Warning, "no category lines")
}

func TestRewriteSectionsCancelledContextFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &stubGenerator{errs: map[types.SectionName]error{
		types.SectionSummary: context.Canceled,
	}}

	results := RewriteSections(ctx, gen, Input{
		Sections: []SectionInput{{Name: types.SectionSummary, OriginalText: "old summary"}},
	})

	require.Len(t, results, 1)
	assert.Equal(t, "old summary", results[0].Text)
	assert.True(t, results[0].Fallback)
	assert.Contains(t, results[0].Warning, "context canceled")
}

func TestRewriteSectionsPassesConstraintsThrough(t *testing.T) {
	gen := &stubGenerator{responses: map[types.SectionName]string{
		types.SectionProjectExperience: "• Built a thing that cut costs 12%",
	}}

	projects := []types.RankedProject{{
		Project: types.ProjectEntry{Title: "ETL Rework", Tags: []string{"python"}},
		Score:   0.5,
	}}

	RewriteSections(context.Background(), gen, Input{
		JobText:    "the posting",
		Keywords:   []string{"python"},
		ResumeText: "SUMMARY\nEdited summary.\n\nPROJECT EXPERIENCE\nold",
		Sections:   []SectionInput{{Name: types.SectionProjectExperience, OriginalText: "old"}},
		Projects:   projects,
	})

	require.Len(t, gen.requests, 1)
	req := gen.requests[0]
	assert.Equal(t, "the posting", req.JobText)
	assert.Equal(t, []string{"python"}, req.Keywords)
	assert.Equal(t, "SUMMARY\nEdited summary.\n\nPROJECT EXPERIENCE\nold", req.ResumeText)
	require.Len(t, req.SelectedProjects, 1)
	assert.Equal(t, "ETL Rework", req.SelectedProjects[0].Project.Title)
}
