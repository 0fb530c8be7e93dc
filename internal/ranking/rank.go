// Package ranking scores project library entries against a job description
// and selects the most relevant ones.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultTopN is the number of projects selected when the caller does not
// specify one.
const DefaultTopN = 3

// RankProjects scores each library entry against the job description and
// returns the top-N entries sorted by score descending, ties broken by
// original library order. The result length is min(topN, len(projects));
// an empty library yields an empty result.
//
// The score denominator is the project's own keyword count, not the job
// description's: projects are short, and normalizing by project size avoids
// rewarding verbose entries purely for volume.
func RankProjects(projects []types.ProjectEntry, jdText string, topN int) []types.RankedProject {
	jdKeywords := keywords.Extract(jdText, keywords.DefaultStopwords())
	return RankProjectsByKeywords(projects, jdKeywords, topN)
}

// RankProjectsByKeywords ranks against an already-extracted job keyword set.
func RankProjectsByKeywords(projects []types.ProjectEntry, jdKeywords keywords.Set, topN int) []types.RankedProject {
	if topN <= 0 {
		topN = DefaultTopN
	}

	stopwords := keywords.DefaultStopwords()
	ranked := make([]types.RankedProject, 0, len(projects))
	for _, project := range projects {
		projectKeywords := keywords.Extract(project.CombinedText(), stopwords)
		score := scoreProject(jdKeywords, projectKeywords)
		ranked = append(ranked, types.RankedProject{Project: project, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// scoreProject computes |jd ∩ project| / max(1, |project|).
func scoreProject(jdKeywords, projectKeywords keywords.Set) float64 {
	denom := len(projectKeywords)
	if denom < 1 {
		denom = 1
	}
	matched := len(keywords.Intersect(jdKeywords, projectKeywords))
	return float64(matched) / float64(denom)
}
