// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/sections"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywordStats outputs the extracted job keywords, how many the resume
// already covers, and the baseline overlap score.
func (p *Printer) PrintKeywordStats(jobKeywords, resumeKeywords keywords.Set, score float64) {
	if len(jobKeywords) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job keywords:     %d\n", len(jobKeywords)))
	sb.WriteString(fmt.Sprintf("Matched:          %d\n", len(keywords.Intersect(resumeKeywords, jobKeywords))))
	sb.WriteString(fmt.Sprintf("Baseline score:   %.2f\n", score))
	sb.WriteString("\n")

	sorted := jobKeywords.Sorted()
	count := min(len(sorted), maxItemsToShow)
	for i := 0; i < count; i++ {
		marker := " "
		if resumeKeywords.Contains(sorted[i]) {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, sorted[i]))
	}
	if len(sorted) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sorted)-maxItemsToShow))
	}

	p.printBox("JOB KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the located section layout of the document.
func (p *Printer) PrintSections(located *sections.Located) {
	if located == nil || len(located.Sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, s := range located.Sections {
		heading := s.Heading
		if heading == "" {
			heading = "(no heading)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-25s [%d:%d]\n", s.Name, heading, s.Start, s.End))
	}
	if located.LowConfidence {
		sb.WriteString("\nLOW CONFIDENCE: no recognizable headings\n")
	}

	p.printBox("LOCATED SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedProjects outputs the selected library projects with scores.
func (p *Printer) PrintRankedProjects(ranked []types.RankedProject) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	for i, rp := range ranked {
		sb.WriteString(fmt.Sprintf("%d. %s (score: %.2f)\n", i+1, rp.Project.Title, rp.Score))
		if len(rp.Project.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("   Tags: %s\n", strings.Join(rp.Project.Tags, ", ")))
		}
	}

	p.printBox("SELECTED PROJECTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the optimization outcome: scores, per-section status
// and warnings.
func (p *Printer) PrintResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run ID:           %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Baseline score:   %.2f\n", result.BaselineScore))
	sb.WriteString(fmt.Sprintf("Optimized score:  %.2f\n", result.OptimizedScore))

	if len(result.Sections) > 0 {
		sb.WriteString("\n")
		for _, s := range result.Sections {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", s.Name, sectionStatusLabel(s)))
		}
	}

	if warnings := result.Warnings(); len(warnings) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range warnings {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	p.printBox("OPTIMIZATION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// sectionStatusLabel renders one word for how a section was produced.
func sectionStatusLabel(s types.SectionStatus) string {
	switch {
	case s.UsedOverride:
		return "override"
	case s.FallbackToOriginal:
		return "fallback"
	case s.Synthesized:
		return "synthesized"
	case s.Rewritten:
		return "rewritten"
	default:
		return "unchanged"
	}
}
