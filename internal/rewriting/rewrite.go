package rewriting

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// SectionInput describes one target section for rewriting.
type SectionInput struct {
	Name         types.SectionName
	OriginalText string
	// Override carries user-edited text for the section. A non-empty
	// override is honored verbatim and generation is skipped.
	Override string
}

// Result carries the final text plus status flags for one section.
type Result struct {
	Name         types.SectionName
	Text         string
	UsedOverride bool
	// Fallback is set when generation failed or returned malformed output
	// and the section's original text was kept instead.
	Fallback bool
	Warning  string
	// Checks holds per-bullet advisory style checks for project write-ups.
	Checks []types.StyleChecks
}

// Input bundles everything the rewriter needs for one optimization run.
type Input struct {
	JobText  string
	Keywords []string
	// ResumeText is the whole resume as plain text with any user overrides
	// already spliced in, so every section's prompt sees the edited content.
	ResumeText string
	Sections   []SectionInput
	Projects   []types.RankedProject
}

// RewriteSections produces the final text for every input section. Sections
// are logically independent, so generation calls run concurrently; all
// results are joined before returning, which the reconstructor requires.
//
// RewriteSections never fails as a whole: a failed, empty, or malformed
// response for one section falls back to that section's original text with a
// per-section warning, and cancellation of ctx degrades every unfinished
// section the same way. Results are returned in input order.
func RewriteSections(ctx context.Context, gen Generator, in Input) []Result {
	results := make([]Result, len(in.Sections))

	g, gCtx := errgroup.WithContext(ctx)
	for i, section := range in.Sections {
		i, section := i, section
		g.Go(func() error {
			results[i] = rewriteOne(gCtx, gen, in, section)
			return nil
		})
	}
	// Workers never return errors; per-section failures are in the results.
	_ = g.Wait()

	return results
}

// rewriteOne handles a single section: override, generation, validation,
// fallback.
func rewriteOne(ctx context.Context, gen Generator, in Input, section SectionInput) Result {
	res := Result{Name: section.Name, Text: section.OriginalText}

	if section.Override != "" {
		res.Text = section.Override
		res.UsedOverride = true
		return res
	}

	raw, err := gen.Generate(ctx, GenerateRequest{
		Section:          section.Name,
		JobText:          in.JobText,
		Keywords:         in.Keywords,
		ResumeText:       in.ResumeText,
		OriginalText:     section.OriginalText,
		SelectedProjects: in.Projects,
	})
	if err != nil {
		res.Fallback = true
		res.Warning = fmt.Sprintf("generation failed, kept original text: %v", err)
		return res
	}

	text := normalizeResponse(section.Name, raw)
	if err := validateResponse(section.Name, text); err != nil {
		res.Fallback = true
		res.Warning = fmt.Sprintf("kept original text: %v", err)
		return res
	}

	res.Text = text
	if section.Name == types.SectionProjectExperience {
		res.Checks = CollectBulletChecks(text)
	}
	return res
}
