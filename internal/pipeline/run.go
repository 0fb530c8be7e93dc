// Package pipeline provides the high-level orchestration for the resume
// optimization process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/ranking"
	"github.com/jonathan/resume-optimizer/internal/rendering"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/sections"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// targetSections lists the section kinds the optimizer rewrites, in the
// order they are processed and reported.
var targetSections = []types.SectionName{
	types.SectionSummary,
	types.SectionSkills,
	types.SectionProjectExperience,
}

// Options holds configuration for running the optimizer pipeline.
type Options struct {
	Generator rewriting.Generator
	Verbose   bool
}

// InputFormatError indicates the input document cannot be optimized at all.
// It is the only fatal condition in the pipeline.
type InputFormatError struct {
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("invalid input document: %s", e.Reason)
}

// Run executes the full optimization pipeline over one request. Rewriting
// failures degrade to the original content with per-section warnings; only a
// structurally empty document is fatal.
func Run(ctx context.Context, req *types.OptimizationRequest, opts Options) (*types.OptimizationResult, error) {
	if req == nil || req.Document == nil || len(req.Document.Paragraphs) == 0 {
		return nil, &InputFormatError{Reason: "document has no paragraphs"}
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	result := &types.OptimizationResult{
		RunID:    runID,
		Document: req.Document,
	}

	// Step 1: Extract keywords from the job description and score the
	// unmodified resume against them.
	fmt.Printf("Step 1/5: Extracting job keywords...\n")
	jobKeywords := keywords.Extract(req.JobText, keywords.DefaultStopwords())
	resumeKeywords := keywords.Extract(req.Document.Text(), keywords.DefaultStopwords())
	result.BaselineScore = keywords.Score(resumeKeywords, jobKeywords)
	if opts.Verbose {
		printer.PrintKeywordStats(jobKeywords, resumeKeywords, result.BaselineScore)
	}

	// Step 2: Partition the document into sections.
	fmt.Printf("Step 2/5: Locating resume sections...\n")
	located, err := sections.Locate(req.Document, nil)
	if err != nil {
		return nil, &InputFormatError{Reason: err.Error()}
	}
	result.LowConfidence = located.LowConfidence
	if opts.Verbose {
		printer.PrintSections(located)
	}
	if located.LowConfidence {
		fmt.Printf("Warning: no recognizable section headings found; returning document unchanged\n")
		result.OptimizedScore = result.BaselineScore
		return result, nil
	}

	// Step 3: Rank the project library against the job keywords.
	fmt.Printf("Step 3/5: Ranking project library...\n")
	result.SelectedProjects = ranking.RankProjectsByKeywords(req.Library, jobKeywords, req.TopProjects)
	if opts.Verbose {
		printer.PrintRankedProjects(result.SelectedProjects)
	}

	// Step 4: Rewrite the target sections.
	fmt.Printf("Step 4/5: Rewriting sections...\n")
	inputs := buildSectionInputs(located, req.Overrides, len(result.SelectedProjects) > 0)
	rewriteResults := rewriting.RewriteSections(ctx, opts.Generator, rewriting.Input{
		JobText:    req.JobText,
		Keywords:   jobKeywords.Sorted(),
		ResumeText: located.EffectiveText(req.Overrides),
		Sections:   inputs,
		Projects:   result.SelectedProjects,
	})

	rewrites := make(map[types.SectionName]string, len(rewriteResults))
	for _, r := range rewriteResults {
		// A section that fell back keeps its original paragraphs untouched.
		if !r.Fallback && r.Text != "" {
			rewrites[r.Name] = r.Text
		}
		result.Sections = append(result.Sections, types.SectionStatus{
			Name:               r.Name,
			Rewritten:          !r.Fallback && !r.UsedOverride,
			UsedOverride:       r.UsedOverride,
			FallbackToOriginal: r.Fallback,
			Warning:            r.Warning,
		})
	}

	// Step 5: Rebuild the document and re-score.
	fmt.Printf("Step 5/5: Rebuilding document...\n")
	rebuilt, report, err := rendering.Rebuild(req.Document, located, rewrites)
	if err != nil {
		return nil, fmt.Errorf("document reconstruction failed: %w", err)
	}
	markSynthesized(result, report)
	if opts.Verbose {
		for _, note := range report.Notes {
			fmt.Printf("[VERBOSE] %s\n", note)
		}
	}

	result.Document = rebuilt
	optimizedKeywords := keywords.Extract(rebuilt.Text(), keywords.DefaultStopwords())
	result.OptimizedScore = keywords.Score(optimizedKeywords, jobKeywords)

	if opts.Verbose {
		printer.PrintResult(result)
	}
	return result, nil
}

// buildSectionInputs assembles the rewriter inputs for every target section
// present in the document, plus absent sections that have an override or (for
// the project section) selected library projects to synthesize from.
func buildSectionInputs(located *sections.Located, overrides map[types.SectionName]string, hasProjects bool) []rewriting.SectionInput {
	var inputs []rewriting.SectionInput
	for _, name := range targetSections {
		s := located.ByName(name)
		override := overrides[name]
		if s == nil && override == "" {
			if name != types.SectionProjectExperience || !hasProjects {
				continue
			}
		}

		in := rewriting.SectionInput{Name: name, Override: override}
		if s != nil {
			in.OriginalText = s.RawText
		}
		inputs = append(inputs, in)
	}
	return inputs
}

// markSynthesized flags section statuses for sections the reconstructor had
// to create from scratch.
func markSynthesized(result *types.OptimizationResult, report *rendering.Report) {
	for _, name := range report.Synthesized {
		for i := range result.Sections {
			if result.Sections[i].Name == name {
				result.Sections[i].Synthesized = true
			}
		}
	}
}
