package keywords

// DefaultStopwords returns the stopword set used when the caller does not
// supply one. The list is intentionally small: common English function words
// plus filler that shows up in nearly every job posting.
func DefaultStopwords() Set {
	return NewSet(
		"a", "an", "and", "are", "as", "at", "be", "been", "but", "by",
		"can", "do", "for", "from", "has", "have", "in", "into", "is", "it",
		"its", "of", "on", "or", "our", "such", "that", "the", "their",
		"then", "there", "these", "they", "this", "to", "was", "we", "were",
		"which", "will", "with", "you", "your",
		// job-posting filler
		"ability", "experience", "including", "required", "requirements",
		"responsibilities", "role", "skills", "strong", "team", "work",
		"working", "years",
	)
}
