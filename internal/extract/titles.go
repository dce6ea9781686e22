package extract

import (
	"fmt"
	"strings"
)

// GenerateTitles combines a normalized topic and audience into five
// templated candidate titles. Order is fixed and significant: the first
// entry is the primary suggestion. There is no ranking beyond that.
func GenerateTitles(topic, audience string) []string {
	return []string{
		fmt.Sprintf("The %s Playbook: A Practical Guide for %s", topic, audience),
		fmt.Sprintf("%s Made Simple: What Every %s Needs to Know", topic, strings.TrimSuffix(audience, "s")),
		fmt.Sprintf("The No-BS Guide to %s", topic),
		fmt.Sprintf("%s Secrets: What Most %s Get Wrong", topic, audience),
		fmt.Sprintf("Master %s: From Confused to Confident", topic),
	}
}
