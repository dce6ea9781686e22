package extract

import (
	"regexp"
	"strings"
)

// Verb tables for the final verb-to-noun conversion. Drop verbs vanish
// entirely, action verbs become a trailing gerund, noun verbs become a
// trailing noun.
var (
	dropVerbs = map[string]bool{
		"start": true, "launch": true, "create": true,
		"build": true, "make": true, "learn": true, "master": true,
	}
	actionVerbs = map[string]string{
		"flip": "Flipping", "trade": "Trading", "sell": "Selling",
		"buy": "Buying", "cook": "Cooking", "write": "Writing",
		"invest": "Investing", "fix": "Fixing",
	}
	nounVerbs = map[string]string{
		"grow": "Growth", "manage": "Management",
		"design": "Design", "scale": "Scaling",
	}
)

var (
	selfRefRe     = regexp.MustCompile(`(?i)^(?:i'?m\s+an?|i\s+am\s+an?|i'?ve\s+been|i\s+have\s+spent)\s+`)
	howToRe       = regexp.MustCompile(`(?i)^i\s+\w+\s+(?:people\s+)?how\s+to\s+(.+)$`)
	doVerbRe      = regexp.MustCompile(`(?i)^i\s+(?:do|teach|help|run|coach|train|specialize|focus)(?:\s+(?:on|in|people|with))?\s+`)
	bareIRe       = regexp.MustCompile(`(?i)^i\s+`)
	expertiseRe   = regexp.MustCompile(`(?i)^my\s+(?:expertise|background|experience|specialty|niche)\s+is(?:\s+in)?\s+`)
	specializeRe  = regexp.MustCompile(`(?i)\bspecializ(?:ing|e)\s+in\s+(.+)$`)
	trailClauseRe = regexp.MustCompile(`(?i)\s+(?:for|since|over|and|i've)\s+.*$`)
	gerundFillRe  = regexp.MustCompile(`(?i)^(?:doing|running|building|making|creating|selling|buying|teaching|learning)\s+`)
	possessiveRe  = regexp.MustCompile(`(?i)\b(?:their|your|my|his|her|our)\s+`)
	whoClauseRe   = regexp.MustCompile(`(?i)\s+who\s+.*$`)
)

// topicRules rewrite an expertise statement into a short noun phrase.
// Each stage strips or transforms one recognized pattern and leaves
// unrecognized text alone; order is load-bearing.
var topicRules = []rule{
	{"strip self-reference", func(s string) string {
		return selfRefRe.ReplaceAllString(s, "")
	}},
	{"resolve I-verb phrasing", func(s string) string {
		if m := howToRe.FindStringSubmatch(s); m != nil {
			return m[1]
		}
		s = doVerbRe.ReplaceAllString(s, "")
		return bareIRe.ReplaceAllString(s, "")
	}},
	{"strip expertise preamble", func(s string) string {
		return expertiseRe.ReplaceAllString(s, "")
	}},
	{"adopt specialization", func(s string) string {
		if m := specializeRe.FindStringSubmatch(s); m != nil {
			return m[1]
		}
		return s
	}},
	{"truncate at punctuation", truncateAtPunctuation},
	{"strip trailing qualifier", func(s string) string {
		return trailClauseRe.ReplaceAllString(s, "")
	}},
	{"strip gerund filler", func(s string) string {
		return gerundFillRe.ReplaceAllString(s, "")
	}},
	{"strip possessives", func(s string) string {
		return possessiveRe.ReplaceAllString(s, "")
	}},
	{"strip who-clause", func(s string) string {
		return whoClauseRe.ReplaceAllString(s, "")
	}},
	{"verb to noun", verbToNoun},
}

// NormalizeTopic reduces a free-form expertise statement to a short
// title-cased noun phrase suitable for use in generated titles, e.g.
// "I flip cars for profit, I've done 200+ flips" -> "Car Flipping".
//
// The pipeline is a best-effort heuristic, not a grammar: phrasing it
// does not anticipate falls through the rules unchanged and is caught
// by the length-based fallback, so the result is never empty.
func NormalizeTopic(expertise string) string {
	s := applyRules(strings.TrimSpace(expertise), topicRules)
	s = titleCasePhrase(s)
	if len(s) < 3 {
		return firstWordsFallback(expertise, 4)
	}
	return s
}

// truncateAtPunctuation cuts the working text at the first comma,
// semicolon, or period. Hyphens are not delimiters: they may be part
// of the topic itself.
func truncateAtPunctuation(s string) string {
	if i := strings.IndexAny(s, ",;."); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// verbToNoun rewrites a leading verb against the three fixed tables
// when the text still has an object to attach it to.
func verbToNoun(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	verb := strings.ToLower(words[0])
	object := strings.Join(words[1:], " ")
	switch {
	case dropVerbs[verb]:
		return object
	case actionVerbs[verb] != "":
		return singularizeLastWord(object) + " " + actionVerbs[verb]
	case nounVerbs[verb] != "":
		return singularizeLastWord(object) + " " + nounVerbs[verb]
	}
	return s
}

// singularizeLastWord singularizes the final word of a phrase so the
// suffixed form reads naturally ("cars" -> "car" before "Flipping").
func singularizeLastWord(phrase string) string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return phrase
	}
	words[len(words)-1] = singularize(words[len(words)-1])
	return strings.Join(words, " ")
}
