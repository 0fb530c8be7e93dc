package types

import "strings"

// ProjectEntry is one item from the project library. Identity is the entry's
// position in the library; no unique IDs beyond the index.
type ProjectEntry struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

// CombinedText returns title, description and tags as one text blob for
// keyword extraction.
func (p *ProjectEntry) CombinedText() string {
	parts := []string{p.Title, p.Description}
	if len(p.Tags) > 0 {
		parts = append(parts, strings.Join(p.Tags, " "))
	}
	return strings.Join(parts, "\n")
}

// RankedProject pairs a ProjectEntry with its relevance score against a job
// description. Ordering is total: score descending, ties broken by original
// library order.
type RankedProject struct {
	Project ProjectEntry `json:"project"`
	Score   float64      `json:"score"`
}

// ProjectLibrary is a flat ordered sequence of project entries.
type ProjectLibrary struct {
	Projects []ProjectEntry `json:"projects"`
}
