package parser

import (
	"strings"

	"copydesk/internal/domain"
)

const (
	titleMinRunes       = 30
	titleMaxRunes       = 70
	descriptionMinRunes = 120
	descriptionMaxRunes = 160
)

// ParseSEO extracts a title tag and meta description. It first looks for
// "Title:" and "Description:" lines, then for headed sections, and finally
// guesses from line lengths.
func ParseSEO(raw string) domain.SEOContent {
	if title, desc, ok := seoFromMarkers(raw); ok {
		return domain.SEOContent{Title: title, Description: desc}
	}

	var out domain.SEOContent
	for _, section := range strings.Split(raw, "\n\n") {
		section = strings.TrimSpace(section)
		lines := splitLines(section)
		switch {
		case hasPrefixFold(section, "title"), hasPrefixFold(section, "# title"):
			if len(lines) > 1 {
				out.Title = strings.TrimSpace(lines[1])
			}
		case hasPrefixFold(section, "description"), hasPrefixFold(section, "# description"):
			if len(lines) > 1 {
				out.Description = strings.TrimSpace(lines[1])
			}
		}
	}
	if out.Title != "" && out.Description != "" {
		return out
	}

	lines := nonBlankLines(raw)
	if len(lines) == 0 {
		return out
	}
	if out.Title == "" {
		out.Title = guessTitle(lines)
	}
	if out.Description == "" {
		out.Description = guessDescription(lines, out.Title)
	}
	return out
}

// seoFromMarkers succeeds only when both markers carry a value. A later
// marker line replaces an earlier one.
func seoFromMarkers(raw string) (string, string, bool) {
	var title, desc string
	for _, line := range splitLines(strings.TrimSpace(raw)) {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "title:"):
			title = afterColon(line)
		case hasPrefixFold(line, "description:"):
			desc = afterColon(line)
		}
	}
	return title, desc, title != "" && desc != ""
}

func nonBlankLines(raw string) []string {
	var lines []string
	for _, line := range splitLines(raw) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func guessTitle(lines []string) string {
	for _, line := range lines {
		if n := runeLen(line); n >= titleMinRunes && n <= titleMaxRunes {
			return line
		}
	}
	return truncateRunes(lines[0], titleMaxRunes)
}

func guessDescription(lines []string, title string) string {
	for _, line := range lines {
		if runeLen(line) >= descriptionMinRunes && line != title {
			return truncateRunes(line, descriptionMaxRunes)
		}
	}
	var rest []string
	for _, line := range lines {
		if line != title {
			rest = append(rest, line)
		}
	}
	return truncateRunes(strings.Join(rest, " "), descriptionMaxRunes)
}
