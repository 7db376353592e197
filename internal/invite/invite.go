// Package invite extracts meeting details from pasted calendar-invite text
// using line-oriented heuristics. The parser is deliberately forgiving: any
// field it cannot find is left empty for the caller to fill in.
package invite

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spboyer/meetprep/internal/config"
)

const (
	maxCompanyChars   = 120
	maxAttendeesChars = 2000
)

var durationRe = regexp.MustCompile(`(?i)(\d{1,3})\s*(min|mins|minutes)\b`)

// Details holds what could be recovered from an invite.
type Details struct {
	Company         string
	Attendees       string
	DurationMinutes int // zero when no duration was found
}

// Parse scans invite text line by line. The subject or title line becomes
// the company/topic, attendee-style lines are collected, and the first
// "N minutes" phrase becomes the duration (clamped to the supported range).
func Parse(text string) Details {
	var d Details
	var attendees []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case d.Company == "" && hasPrefixAny(lower, "subject:", "title:"):
			d.Company = clip(valueAfterColon(line), maxCompanyChars)
		case hasPrefixAny(lower, "attendees:", "participants:", "with:", "required:", "optional:"):
			if v := valueAfterColon(line); v != "" {
				attendees = append(attendees, v)
			}
		}
	}

	if m := durationRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			d.DurationMinutes = config.ClampDuration(n)
		}
	}

	d.Attendees = clip(strings.Join(attendees, ", "), maxAttendeesChars)
	return d
}

func hasPrefixAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func valueAfterColon(line string) string {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(after)
}

// clip bounds s to at most max bytes without splitting a rune.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
