package rendering

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// profile is the formatting cloned onto every emitted paragraph of a kind:
// the run font plus the paragraph format.
type profile struct {
	font   types.FontSpec
	format types.ParagraphFormat
}

// Default profiles used when a section has no usable template paragraph.
// Falling back is reported but never fatal.
var (
	defaultHeadingProfile = profile{
		font:   types.FontSpec{Name: "Calibri", SizePt: 12, Bold: true},
		format: types.ParagraphFormat{Style: "Heading 2", SpaceBeforePt: 8, SpaceAfterPt: 4},
	}
	defaultBodyProfile = profile{
		font:   types.FontSpec{Name: "Calibri", SizePt: 11},
		format: types.ParagraphFormat{Style: "Normal"},
	}
	defaultBulletProfile = profile{
		font:   types.FontSpec{Name: "Calibri", SizePt: 11},
		format: types.ParagraphFormat{Style: "List Paragraph", Bullet: true, BulletMarker: "•", IndentLevel: 1},
	}
)

// syntheticHeadings are the heading spellings written when a target section
// has to be created from scratch.
var syntheticHeadings = map[types.SectionName]string{
	types.SectionSummary:           "SUMMARY",
	types.SectionSkills:            "SKILLS",
	types.SectionProjectExperience: "PROJECT EXPERIENCE",
}

// profileFromParagraph extracts a formatting profile from an existing
// paragraph. It fails when the paragraph carries no runs to copy a font from.
func profileFromParagraph(p *types.Paragraph) (profile, bool) {
	if p == nil || len(p.Runs) == 0 {
		return profile{}, false
	}
	return profile{font: p.Runs[0].Font, format: p.Format}, true
}

// templateProfile resolves the profile for the template paragraph at idx,
// falling back to the given default when the index is absent or the
// paragraph is unusable.
func templateProfile(doc *types.Document, idx int, fallback profile) (profile, bool) {
	if idx < 0 || idx >= len(doc.Paragraphs) {
		return fallback, false
	}
	p, ok := profileFromParagraph(&doc.Paragraphs[idx])
	if !ok {
		return fallback, false
	}
	return p, true
}

// newParagraph emits one paragraph of text in the profile's formatting.
func newParagraph(text string, prof profile) types.Paragraph {
	return types.Paragraph{
		Runs:   []types.Run{{Text: text, Font: prof.font}},
		Format: prof.format,
	}
}

// bulletGlyphs are stripped from generated lines so the paragraph format's
// own marker is the only bullet rendered.
var bulletGlyphs = []string{"• ", "- ", "– ", "* ", "•\t"}

func stripBulletGlyph(line string) string {
	s := strings.TrimSpace(line)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(s, g) {
			return strings.TrimSpace(s[len(g):])
		}
	}
	return s
}

func hasBulletGlyph(line string) bool {
	s := strings.TrimSpace(line)
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(s, g) {
			return true
		}
	}
	return false
}

// titleUppercaseRatio is the share of uppercase letters above which a
// non-bulleted project line is treated as a project title.
const titleUppercaseRatio = 0.65

// looksLikeTitle reports whether a line is mostly uppercase letters.
func looksLikeTitle(line string) bool {
	var letters, upper int
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return false
	}
	return float64(upper)/float64(letters) > titleUppercaseRatio
}
