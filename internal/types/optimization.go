package types

// OptimizationRequest is the unit of work for the optimizer pipeline.
type OptimizationRequest struct {
	Document *Document      `json:"document"`
	JobText  string         `json:"job_text"`
	Library  []ProjectEntry `json:"library,omitempty"`

	// Overrides holds per-section user-edited text. Overridden sections are
	// honored verbatim and skipped by the content rewriter.
	Overrides map[SectionName]string `json:"overrides,omitempty"`

	// TopProjects is the number of library projects to select (default 3).
	TopProjects int `json:"top_projects,omitempty"`
}

// SectionStatus reports how a target section was produced.
type SectionStatus struct {
	Name               SectionName `json:"name"`
	Rewritten          bool        `json:"rewritten"`
	UsedOverride       bool        `json:"used_override,omitempty"`
	FallbackToOriginal bool        `json:"fallback_to_original,omitempty"`
	Synthesized        bool        `json:"synthesized,omitempty"`
	Warning            string      `json:"warning,omitempty"`
}

// OptimizationResult is the reconstructed document plus the computed match
// metrics and selection outcome.
type OptimizationResult struct {
	RunID            string          `json:"run_id"`
	Document         *Document       `json:"document"`
	BaselineScore    float64         `json:"baseline_score"`
	OptimizedScore   float64         `json:"optimized_score"`
	SelectedProjects []RankedProject `json:"selected_projects,omitempty"`
	Sections         []SectionStatus `json:"sections"`

	// LowConfidence is set when the locator found no recognizable headings
	// and rewriting was skipped.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// Warnings collects the non-empty per-section warnings.
func (r *OptimizationResult) Warnings() []string {
	var out []string
	for _, s := range r.Sections {
		if s.Warning != "" {
			out = append(out, string(s.Name)+": "+s.Warning)
		}
	}
	return out
}

// StyleChecks flags advisory style properties of a generated bullet line.
type StyleChecks struct {
	StrongVerb bool `json:"strong_verb"`
	Quantified bool `json:"quantified"`
}
