package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-optimizer/internal/types"
)

var (
	paraSplitRe = regexp.MustCompile(`</w:p>`)
	runRe       = regexp.MustCompile(`(?s)<w:r[ >].*?</w:r>`)
	textRe      = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
	boldRe      = regexp.MustCompile(`<w:b[ />]`)
	pStyleRe    = regexp.MustCompile(`<w:pStyle[^>]*w:val="([^"]+)"`)
	numPrRe     = regexp.MustCompile(`<w:numPr>`)
)

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

// ImportDocx reads a .docx file and converts it into a structured document.
// Character-level formatting is reduced to what the optimizer needs: run
// text, bold flags, paragraph styles and bullet membership.
func ImportDocx(path string) (*types.Document, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx: %w", err)
	}
	defer func() { _ = reader.Close() }()

	return parseDocxContent(reader.Editable().GetContent()), nil
}

// parseDocxContent converts raw document.xml markup into paragraphs.
func parseDocxContent(content string) *types.Document {
	doc := &types.Document{}

	for _, block := range paraSplitRe.Split(content, -1) {
		start := strings.Index(block, "<w:p")
		if start == -1 {
			continue
		}
		block = block[start:]

		para := types.Paragraph{Format: paragraphFormat(block)}
		for _, run := range runRe.FindAllString(block, -1) {
			text := runText(run)
			if text == "" {
				continue
			}
			para.Runs = append(para.Runs, types.Run{
				Text: text,
				Font: types.FontSpec{Bold: boldRe.MatchString(run)},
			})
		}

		doc.Paragraphs = append(doc.Paragraphs, para)
	}

	return doc
}

// paragraphFormat extracts paragraph-level style and list membership.
func paragraphFormat(block string) types.ParagraphFormat {
	format := types.ParagraphFormat{}

	if m := pStyleRe.FindStringSubmatch(block); m != nil {
		format.Style = normalizeStyleName(m[1])
	}
	if numPrRe.MatchString(block) {
		format.Bullet = true
		format.BulletMarker = "•"
	}

	return format
}

// runText joins all text nodes of a run and unescapes XML entities.
func runText(run string) string {
	var sb strings.Builder
	for _, m := range textRe.FindAllStringSubmatch(run, -1) {
		sb.WriteString(xmlUnescaper.Replace(m[1]))
	}
	return sb.String()
}

// normalizeStyleName turns style ids like "Heading1" into "Heading 1" so
// heading detection can match on the "heading" prefix.
func normalizeStyleName(style string) string {
	if rest, ok := strings.CutPrefix(style, "Heading"); ok && rest != "" && !strings.HasPrefix(rest, " ") {
		return "Heading " + rest
	}
	return style
}
