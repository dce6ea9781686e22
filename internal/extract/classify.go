package extract

import (
	"regexp"
	"strings"
)

// headingMatch is the result of classifying a single trimmed line.
type headingMatch struct {
	matched bool
	title   string
}

// headingMatcher inspects a trimmed line and, on success, returns the
// chapter title the line carries.
type headingMatcher func(line string) (title string, ok bool)

// headingMatchers are tried in order; the first success wins. The order
// encodes precedence: explicit markers beat numbered list items, which
// beat shouted lines.
var headingMatchers = []headingMatcher{
	matchExplicitMarker,
	matchNumberedItem,
	matchShoutedLine,
}

// classifyLine decides whether a trimmed line starts a new chapter.
func classifyLine(line string) headingMatch {
	for _, m := range headingMatchers {
		if title, ok := m(line); ok {
			return headingMatch{matched: true, title: title}
		}
	}
	return headingMatch{}
}

var (
	chapterMarkerRe = regexp.MustCompile(`(?i)^chapter\s+\d+\s*[:.\-—]\s*(.+)$`)
	markdownRe      = regexp.MustCompile(`^#{1,3}\s+(.+)$`)
	numberedItemRe  = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	shoutedLineRe   = regexp.MustCompile(`^[A-Z :\-]+$`)
)

// matchExplicitMarker recognizes "Chapter <n>: Title" style markers
// (separators: colon, period, hyphen, em-dash) and markdown headings
// up to three levels deep.
func matchExplicitMarker(line string) (string, bool) {
	if m := chapterMarkerRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := markdownRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// matchNumberedItem recognizes "<n>. Title" list items.
func matchNumberedItem(line string) (string, bool) {
	if m := numberedItemRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// matchShoutedLine recognizes all-caps lines used as headings. The
// thresholds (11+ characters, 3+ words) keep short emphatic fragments
// like "OK GO" in the body text, though a long uppercase sentence in
// body copy will still be misread as a heading.
func matchShoutedLine(line string) (string, bool) {
	if len(line) < 11 || !shoutedLineRe.MatchString(line) {
		return "", false
	}
	words := strings.Fields(line)
	if len(words) < 3 {
		return "", false
	}
	if !strings.ContainsFunc(line, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return "", false
	}
	return titleCaseAll(line), true
}
