package extract

// rule is one step of a normalization pipeline: a named, pure string
// rewrite. A rule that does not recognize its pattern returns the input
// unchanged, so later rules always see the best effort so far.
type rule struct {
	name  string
	apply func(s string) string
}

// applyRules folds s through each rule in order and returns the result.
// Rule order is significant: later rules operate on the output of
// earlier ones.
func applyRules(s string, rules []rule) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}
