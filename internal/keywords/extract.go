// Package keywords provides keyword extraction and overlap scoring between a
// resume and a job description, the proxy metric for ATS match quality.
package keywords

import (
	"strings"
	"unicode"
)

// minTokenLength is the shortest token kept by the extractor.
const minTokenLength = 2

// Set is a deduplicated collection of normalized lowercase terms.
type Set map[string]struct{}

// NewSet builds a Set from a list of terms, lowercasing each.
func NewSet(terms ...string) Set {
	s := make(Set, len(terms))
	for _, t := range terms {
		s[strings.ToLower(t)] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the given term.
func (s Set) Contains(term string) bool {
	_, ok := s[term]
	return ok
}

// Sorted is implemented in overlap.go where it is used for reporting.

// isTokenRune reports whether a rune belongs inside a token. Besides letters
// and digits, '+', '#' and '.' are kept so terms like c++, c# and node.js
// survive tokenization.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.'
}

// Extract turns free text into a normalized set of significant terms. It
// lowercases the input, splits on non-alphanumeric boundaries, and discards
// tokens shorter than two runes as well as stopwords. Empty input yields an
// empty set.
func Extract(text string, stopwords Set) Set {
	out := make(Set)
	if text == "" {
		return out
	}

	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})

	for _, tok := range tokens {
		// Trailing dots come from sentence punctuation, not the token itself.
		tok = strings.Trim(tok, ".")
		if len([]rune(tok)) < minTokenLength {
			continue
		}
		if stopwords != nil && stopwords.Contains(tok) {
			continue
		}
		out[tok] = struct{}{}
	}

	return out
}
