package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Common strong action verbs for resume bullets (heuristic check)
var strongVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "engineered": true,
	"implemented": true, "improved": true, "increased": true, "launched": true,
	"led": true, "optimized": true, "reduced": true, "scaled": true,
	"shipped": true, "transformed": true,
}

var digitRe = regexp.MustCompile(`\d`)

// ValidateBullet runs the advisory style checks on one bullet line: does it
// start with a strong action verb, and does it carry a quantified outcome.
func ValidateBullet(text string) types.StyleChecks {
	return types.StyleChecks{
		StrongVerb: checkStrongVerb(strings.ToLower(strings.TrimSpace(text))),
		Quantified: digitRe.MatchString(text) || strings.Contains(text, "%"),
	}
}

// CollectBulletChecks validates every bullet line of a generated project
// experience block.
func CollectBulletChecks(sectionText string) []types.StyleChecks {
	var checks []types.StyleChecks
	for _, line := range strings.Split(sectionText, "\n") {
		if isBulletLine(line) {
			checks = append(checks, ValidateBullet(cleanLeadingBullet(line)))
		}
	}
	return checks
}

// checkStrongVerb checks if text starts with a strong action verb.
func checkStrongVerb(textLower string) bool {
	words := strings.Fields(textLower)
	if len(words) == 0 {
		return false
	}

	firstWord := strings.TrimRight(words[0], ".,!?;:")
	if strongVerbs[firstWord] {
		return true
	}

	// Past-tense -ed words are usually action verbs in resume bullets.
	return strings.HasSuffix(firstWord, "ed") && len(firstWord) > 3
}
