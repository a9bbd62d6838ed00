package cue

import "strings"

// line is one tokenized CUE sheet line.
type line struct {
	// number is the 1-based line number in the input.
	number int

	// raw is the line exactly as it appeared.
	raw string

	// keyword is the first whitespace-delimited token, upper-cased.
	// Empty for blank lines.
	keyword string

	// rest is the remainder after the keyword, trimmed.
	rest string

	// indented is true when the line starts with two or more spaces or
	// a tab. CUE sheets indent track-level directives.
	indented bool
}

// tokenize splits raw CUE text into classified lines.
func tokenize(text string) []line {
	rawLines := strings.Split(text, "\n")
	lines := make([]line, 0, len(rawLines))

	for i, raw := range rawLines {
		trimmedEOL := strings.TrimRight(raw, "\r")
		l := line{
			number:   i + 1,
			raw:      trimmedEOL,
			indented: strings.HasPrefix(trimmedEOL, "  ") || strings.HasPrefix(trimmedEOL, "\t"),
		}

		fields := strings.Fields(trimmedEOL)
		if len(fields) > 0 {
			l.keyword = strings.ToUpper(fields[0])
			l.rest = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(trimmedEOL), fields[0]))
		}

		lines = append(lines, l)
	}

	return lines
}

// quotedValue extracts a double-quoted string from the start of s.
// Returns the unquoted value and true, or "" and false when s does not
// start with a complete quoted string.
func quotedValue(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' {
		return "", false
	}
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return "", false
	}
	return s[1 : 1+end], true
}
