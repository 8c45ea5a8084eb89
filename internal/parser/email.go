package parser

import (
	"strings"

	"copydesk/internal/domain"
)

const (
	subjectMarker = "subject line:"
	bodyMarker    = "email body:"
)

// ParseEmail pulls the subject and body out of a generated email. Subject and
// body are found independently; a missing marker leaves that part empty.
func ParseEmail(raw string) domain.EmailContent {
	return domain.EmailContent{
		Subject: emailSubject(raw),
		Body:    emailBody(raw),
	}
}

func emailSubject(raw string) string {
	for _, line := range splitLines(raw) {
		line = strings.TrimSpace(line)
		if hasPrefixFold(line, subjectMarker) {
			return afterColon(line)
		}
	}
	return ""
}

// emailBody keeps the text after the body marker on its own line plus every
// following line, blank lines and indentation included.
func emailBody(raw string) string {
	var body []string
	capturing := false
	for _, line := range splitLines(raw) {
		if !capturing {
			trimmed := strings.TrimSpace(line)
			if !hasPrefixFold(trimmed, bodyMarker) {
				continue
			}
			capturing = true
			if rest := afterColon(trimmed); rest != "" {
				body = append(body, rest)
			}
			continue
		}
		body = append(body, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}
