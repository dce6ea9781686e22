package extract

import (
	"strings"
	"testing"
)

func TestNormalizeTopic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"action verb with trailing qualifiers",
			"I flip cars for profit, I've done 200+ flips in 3 years",
			"Car Flipping",
		},
		{
			"specializing clause",
			"I'm a nutritionist specializing in gut health",
			"Gut Health",
		},
		{
			"teach people how to",
			"I teach people how to trade options",
			"Option Trading",
		},
		{
			"expertise preamble",
			"My expertise is in real estate investing",
			"Real Estate Investing",
		},
		{
			"noun verb with possessive",
			"I help people grow their businesses",
			"Business Growth",
		},
		{
			"self reference with gerund filler",
			"I've been building furniture for 10 years",
			"Furniture",
		},
		{
			"drop verb",
			"I teach people how to start podcasts",
			"Podcasts",
		},
		{
			"hyphens survive truncation",
			"e-commerce growth",
			"E-commerce Growth",
		},
		{
			"plain topic passes through",
			"sourdough baking",
			"Sourdough Baking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTopic(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTopic(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTopicFallback(t *testing.T) {
	t.Run("too-short result falls back to first words", func(t *testing.T) {
		got := NormalizeTopic("ok")
		if got != "Ok" {
			t.Errorf("expected capitalized original, got %q", got)
		}
	})

	t.Run("never returns empty or padded output", func(t *testing.T) {
		inputs := []string{"", "I", "a b c d e f g", "   spaced out   "}
		for _, in := range inputs {
			got := NormalizeTopic(in)
			if in != "" && got == "" {
				t.Errorf("NormalizeTopic(%q) returned empty", in)
			}
			if got != strings.TrimSpace(got) {
				t.Errorf("NormalizeTopic(%q) = %q has surrounding whitespace", in, got)
			}
		}
	})
}
