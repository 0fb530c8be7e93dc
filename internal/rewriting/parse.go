package rewriting

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// sectionKeyVariants lists the JSON keys under which a model may deliver a
// section when it wraps the reply in an object despite instructions.
var sectionKeyVariants = map[types.SectionName][]string{
	types.SectionSummary:           {"summary"},
	types.SectionSkills:            {"skills"},
	types.SectionProjectExperience: {"projects", "project experience", "projectexperience"},
}

// normalizeResponse strips markdown fences and unwraps a JSON object reply,
// looking the section up under its canonical key and common variants. Plain
// text replies pass through trimmed.
func normalizeResponse(section types.SectionName, raw string) string {
	text := llm.CleanJSONBlock(raw)

	if strings.HasPrefix(text, "{") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(text), &obj); err == nil {
			norm := make(map[string]string, len(obj))
			for k, v := range obj {
				if s, ok := v.(string); ok {
					key := strings.TrimSpace(strings.ToLower(strings.ReplaceAll(k, "_", " ")))
					norm[key] = s
				}
			}
			for _, key := range sectionKeyVariants[section] {
				if s, ok := norm[key]; ok {
					return strings.TrimSpace(s)
				}
			}
			// A JSON object without the expected key carries no usable text.
			return ""
		}
	}

	return strings.TrimSpace(text)
}

// validateResponse checks the section's output convention: skills must have
// at least one "Category: items" line, project experience at least one
// bullet line. A violation is recoverable by falling back to original text.
func validateResponse(section types.SectionName, text string) error {
	if strings.TrimSpace(text) == "" {
		return &MalformedResponseError{Section: string(section), Reason: "empty response"}
	}

	switch section {
	case types.SectionSkills:
		for _, line := range strings.Split(text, "\n") {
			line = cleanLeadingBullet(line)
			if i := strings.Index(line, ":"); i > 0 && strings.TrimSpace(line[i+1:]) != "" {
				return nil
			}
		}
		return &MalformedResponseError{Section: string(section), Reason: "no category lines"}
	case types.SectionProjectExperience:
		for _, line := range strings.Split(text, "\n") {
			if isBulletLine(line) {
				return nil
			}
		}
		return &MalformedResponseError{Section: string(section), Reason: "no bullet lines"}
	}

	return nil
}

// bulletPrefixes are the glyphs a model may emit in front of a bullet line.
var bulletPrefixes = []string{"• ", "- ", "– ", "* ", "•\t"}

// isBulletLine reports whether the line starts with a bullet glyph.
func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// cleanLeadingBullet strips a leading bullet glyph so the reconstructor can
// apply the document's own bullet formatting instead.
func cleanLeadingBullet(line string) string {
	s := strings.TrimSpace(line)
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(s, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}
