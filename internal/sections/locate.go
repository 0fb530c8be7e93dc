package sections

import (
	"errors"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// ErrEmptyDocument is returned when the document has no paragraph structure
// to partition. This is the only fatal condition in the locator.
var ErrEmptyDocument = errors.New("document has no paragraphs")

// Located is the result of partitioning a document into sections. The
// sections are contiguous, non-overlapping, and cover the whole paragraph
// range exactly once.
type Located struct {
	Sections []types.Section `json:"sections"`

	// LowConfidence is set when no recognizable heading was found and the
	// entire document landed in a single Other section. Downstream stages
	// should skip rewriting in that case.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// Locate scans the document's paragraph stream and partitions it into named
// sections. A paragraph matching no known heading belongs to the nearest
// preceding section, or to a leading Other bucket before the first heading.
// Named sections whose heading never appears are simply absent from the
// result. The first heading matching a named kind wins; repeats of the same
// kind are demoted to Other.
func Locate(doc *types.Document, aliases Aliases) (*Located, error) {
	if doc == nil || len(doc.Paragraphs) == 0 {
		return nil, ErrEmptyDocument
	}
	if aliases == nil {
		aliases = DefaultAliases()
	}

	type boundary struct {
		index int
		name  types.SectionName
		text  string
	}

	var boundaries []boundary
	seen := make(map[types.SectionName]bool)
	for i := range doc.Paragraphs {
		p := &doc.Paragraphs[i]
		name, ok := classifyHeading(p, aliases)
		if !ok {
			continue
		}
		if name != types.SectionOther && seen[name] {
			name = types.SectionOther
		}
		seen[name] = true
		boundaries = append(boundaries, boundary{index: i, name: name, text: strings.TrimSpace(p.Text())})
	}

	located := &Located{}

	if len(boundaries) == 0 {
		s := buildSection(doc, types.SectionOther, "", 0, len(doc.Paragraphs), false)
		located.Sections = []types.Section{s}
		located.LowConfidence = true
		return located, nil
	}

	// Leading span before the first heading.
	if boundaries[0].index > 0 {
		s := buildSection(doc, types.SectionOther, "", 0, boundaries[0].index, false)
		located.Sections = append(located.Sections, s)
	}

	for k, b := range boundaries {
		end := len(doc.Paragraphs)
		if k+1 < len(boundaries) {
			end = boundaries[k+1].index
		}
		s := buildSection(doc, b.name, b.text, b.index, end, true)
		located.Sections = append(located.Sections, s)
	}

	return located, nil
}

// buildSection assembles a Section over doc[start:end). When hasHeading is
// true the paragraph at start is the heading and the body starts at start+1.
func buildSection(doc *types.Document, name types.SectionName, heading string, start, end int, hasHeading bool) types.Section {
	bodyStart := start
	if hasHeading {
		bodyStart = start + 1
	}

	var lines []string
	templateIdx, bulletIdx, titleIdx := -1, -1, -1
	for i := bodyStart; i < end; i++ {
		p := &doc.Paragraphs[i]
		lines = append(lines, p.Text())
		if p.IsEmpty() {
			continue
		}
		if templateIdx == -1 {
			templateIdx = i
		}
		if p.Format.Bullet && bulletIdx == -1 {
			bulletIdx = i
		}
		if !p.Format.Bullet && titleIdx == -1 {
			titleIdx = i
		}
	}

	if templateIdx == -1 && hasHeading {
		templateIdx = start // empty section: heading formatting is the template
	}

	return types.Section{
		Name:                name,
		Heading:             heading,
		Start:               start,
		End:                 end,
		RawText:             strings.TrimSpace(strings.Join(lines, "\n")),
		TemplateIndex:       templateIdx,
		BulletTemplateIndex: bulletIdx,
		TitleTemplateIndex:  titleIdx,
	}
}

// ByName returns the first section of the given kind, or nil when absent.
func (l *Located) ByName(name types.SectionName) *types.Section {
	for i := range l.Sections {
		if l.Sections[i].Name == name {
			return &l.Sections[i]
		}
	}
	return nil
}

// InsertionIndex returns the paragraph index where a missing named section
// should be synthesized: immediately after Summary, or at the document end
// when Summary is also absent.
func (l *Located) InsertionIndex(docLen int) int {
	if s := l.ByName(types.SectionSummary); s != nil {
		return s.End
	}
	return docLen
}
