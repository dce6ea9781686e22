package extract

import "strings"

// smallWords stay lowercase when title-casing a phrase, unless they
// lead the phrase.
var smallWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true,
	"in": true, "on": true, "of": true,
	"for": true, "to": true, "with": true,
}

// titleCasePhrase title-cases a phrase, keeping recognized small words
// lowercase except in the leading position.
func titleCasePhrase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

// titleCaseAll capitalizes the first letter of every word and lowercases
// the rest, with no small-word exceptions. Used for shouted headings.
func titleCaseAll(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first byte of an ASCII word, leaving the
// rest untouched.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	if w[0] >= 'a' && w[0] <= 'z' {
		return string(w[0]-'a'+'A') + w[1:]
	}
	return w
}

// singularize applies the noun heuristic used before gerund/noun
// suffixing: "businesses" -> "business", "companies" -> "company",
// otherwise a trailing "s" is stripped unless preceded by another "s".
func singularize(w string) string {
	switch {
	case strings.HasSuffix(w, "nesses"):
		return strings.TrimSuffix(w, "es")
	case strings.HasSuffix(w, "ies"):
		return strings.TrimSuffix(w, "ies") + "y"
	case strings.HasSuffix(w, "ss"):
		return w
	case strings.HasSuffix(w, "s"):
		return strings.TrimSuffix(w, "s")
	default:
		return w
	}
}

// firstWordsFallback returns the first n words of the original input,
// each with its first letter capitalized. Used when a normalization
// pipeline reduces its input to nothing useful.
func firstWordsFallback(original string, n int) string {
	words := strings.Fields(original)
	if len(words) > n {
		words = words[:n]
	}
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
