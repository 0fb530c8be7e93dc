// Package library parses the project library text format: one entry per
// blank-line-separated block, first line title, optional "Tags:" line, the
// rest free-text description.
package library

import (
	"os"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Parse splits the library text into ProjectEntry records. Empty input
// yields an empty library, not an error.
func Parse(text string) []types.ProjectEntry {
	blocks := splitBlocks(text)

	entries := make([]types.ProjectEntry, 0, len(blocks))
	for _, block := range blocks {
		lines := strings.Split(block, "\n")
		entry := types.ProjectEntry{
			Index: len(entries),
			Title: strings.TrimSpace(lines[0]),
		}

		var desc []string
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if tags, ok := parseTagsLine(line); ok {
				entry.Tags = tags
				continue
			}
			desc = append(desc, line)
		}
		entry.Description = strings.Join(desc, "\n")

		if entry.Title == "" && entry.Description == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// LoadFile reads and parses a project library file.
func LoadFile(path string) ([]types.ProjectEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}

// splitBlocks splits text on runs of blank lines.
func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// parseTagsLine recognizes "Tags: a, b, c" lines, case-insensitively.
func parseTagsLine(line string) ([]string, bool) {
	const prefix = "tags:"
	if !strings.HasPrefix(strings.ToLower(line), prefix) {
		return nil, false
	}
	raw := strings.Split(line[len(prefix):], ",")
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags, true
}
