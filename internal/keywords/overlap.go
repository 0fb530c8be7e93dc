package keywords

import "sort"

// Score compares a resume keyword set against a job description keyword set
// and returns the match ratio |resume ∩ jd| / |jd| in [0,1].
//
// An empty job description keyword set scores 0 by convention: there is
// nothing to match against, and a zero score is more honest than a
// division-by-zero failure or a vacuous 1.
func Score(resumeKeywords, jdKeywords Set) float64 {
	if len(jdKeywords) == 0 {
		return 0
	}

	matched := 0
	for term := range jdKeywords {
		if resumeKeywords.Contains(term) {
			matched++
		}
	}

	return float64(matched) / float64(len(jdKeywords))
}

// Intersect returns the terms present in both sets.
func Intersect(a, b Set) Set {
	out := make(Set)
	for term := range a {
		if b.Contains(term) {
			out[term] = struct{}{}
		}
	}
	return out
}

// Sorted returns the set's terms in lexical order, for stable reporting.
func (s Set) Sorted() []string {
	terms := make([]string, 0, len(s))
	for term := range s {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
