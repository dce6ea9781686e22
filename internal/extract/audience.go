package extract

import (
	"regexp"
	"strings"
)

// genericAudienceWords are placeholder subjects that carry no audience
// information on their own.
var genericAudienceWords = map[string]bool{
	"people": true, "those": true, "anyone": true, "someone": true,
	"everybody": true, "everyone": true, "folks": true,
	"individuals": true, "a person": true, "person": true, "persons": true,
}

// fallbackGenericWords are results too generic to stand alone as an
// audience label; they trigger the first-words fallback. A smaller set
// than genericAudienceWords: "folks" or "individuals" surviving the
// pipeline is kept as-is.
var fallbackGenericWords = map[string]bool{
	"someone": true, "anyone": true, "everybody": true,
	"everyone": true, "person": true, "people": true,
}

var (
	genericWhoRe   = regexp.MustCompile(`(?i)^(?:people|those|anyone|someone|everybody|everyone|folks|individuals|a\s+person|persons)\s+who\s+`)
	nounPhraseRe   = regexp.MustCompile(`(?i)^(.+?)\s+(?:who|that|looking|wanting|trying|struggling)\b`)
	fanPatternRe   = regexp.MustCompile(`(?i)\b(?:listens?\s+to|(?:is|are)\s+into|(?:is|are)\s+obsessed\s+with|loves?|(?:is|are)\s+(?:a\s+)?(?:huge\s+|big\s+)?fans?\s+of)\s+(.+)$`)
	learnRe        = regexp.MustCompile(`(?i)\b(?:wants?|trying|hoping)\s+to\s+learn(?:\s+about)?\s+(.+)$`)
	becomeRe       = regexp.MustCompile(`(?i)\b(?:wants?|trying|hoping)\s+to\s+(?:become|be)(?:\s+an?)?\s+(.+)$`)
	intensifierRe  = regexp.MustCompile(`(?i)\s+(?:a\s+lot|all\s+the\s+time|constantly|obsessively|really)\s*$`)
	participialRe  = regexp.MustCompile(`(?i)\s+(?:dealing|drowning|struggling|suffering|coping|worried|scared|confused|tired|sick)\s+(?:with|in|of|about)\b.*$`)
	fillerAdverbRe = regexp.MustCompile(`(?i)^(?:obsessively|constantly|really|just|basically)\s+`)
)

// audienceRules rewrite a reader-description sentence into a short
// audience label. Same engine as the topic rules, different patterns:
// readers get described by what they want, love, or struggle with, so
// the recognizers target those shapes.
var audienceRules = []rule{
	{"strip generic who-prefix", func(s string) string {
		return genericWhoRe.ReplaceAllString(s, "")
	}},
	{"adopt concrete noun phrase", adoptNounPhrase},
	{"fan pattern", fanPattern},
	{"learner pattern", learnerPattern},
	{"aspiration pattern", aspirationPattern},
	{"truncate at punctuation", truncateAtPunctuation},
	{"strip participial clause", func(s string) string {
		return participialRe.ReplaceAllString(s, "")
	}},
	{"strip filler adverbs", func(s string) string {
		return fillerAdverbRe.ReplaceAllString(s, "")
	}},
	{"cap at four words", func(s string) string {
		words := strings.Fields(s)
		if len(words) > 4 {
			words = words[:4]
		}
		return strings.Join(words, " ")
	}},
}

// NormalizeAudience reduces a free-form description of the target
// reader to a short title-cased label, e.g. "beginners who want to
// start flipping cars" -> "Beginners".
//
// Like NormalizeTopic this is a guarded best-effort pipeline: every
// rule leaves unrecognized text untouched, and a result that is empty,
// too short, or a bare generic word falls back to the first words of
// the original input.
func NormalizeAudience(audience string) string {
	s := applyRules(strings.TrimSpace(audience), audienceRules)
	s = titleCasePhrase(s)
	if len(s) < 3 || fallbackGenericWords[strings.ToLower(s)] {
		return firstWordsFallback(audience, 4)
	}
	return s
}

// adoptNounPhrase captures a concrete subject preceding a relative or
// participial marker ("busy moms who ...") and adopts it when it is
// more specific than a generic placeholder.
func adoptNounPhrase(s string) string {
	m := nounPhraseRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	candidate := strings.TrimSpace(m[1])
	if len(candidate) <= 3 || genericAudienceWords[strings.ToLower(candidate)] {
		return s
	}
	return candidate
}

// fanPattern turns "loves X" / "is obsessed with X" descriptions into
// "<X> Fans", dropping trailing intensifiers first.
func fanPattern(s string) string {
	m := fanPatternRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	subject := strings.TrimSpace(intensifierRe.ReplaceAllString(m[1], ""))
	subject = truncateAtPunctuation(subject)
	if subject == "" || len(strings.Fields(subject)) > 4 {
		return s
	}
	return subject + " Fans"
}

// learnerPattern turns "wants to learn X" into "<X> Beginners".
func learnerPattern(s string) string {
	m := learnRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	skill := truncateAtPunctuation(strings.TrimSpace(m[1]))
	if skill == "" || len(strings.Fields(skill)) > 3 {
		return s
	}
	return skill + " Beginners"
}

// aspirationPattern turns "wants to become a X" into "Aspiring <X>s".
func aspirationPattern(s string) string {
	m := becomeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	role := truncateAtPunctuation(strings.TrimSpace(m[1]))
	if role == "" || len(strings.Fields(role)) > 2 {
		return s
	}
	if !strings.HasSuffix(role, "s") {
		role += "s"
	}
	return "Aspiring " + capitalize(role)
}
