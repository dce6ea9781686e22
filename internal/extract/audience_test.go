package extract

import (
	"strings"
	"testing"
)

func TestNormalizeAudience(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"concrete subject before relative clause",
			"Beginners who want to start flipping cars but don't know where to begin",
			"Beginners",
		},
		{
			"participial clause stripped",
			"women over 40 dealing with bloating and fatigue",
			"Women Over 40",
		},
		{
			"aspiration pattern",
			"people who want to become a chef",
			"Aspiring Chefs",
		},
		{
			"fan pattern with intensifier",
			"anyone who listens to true crime podcasts constantly",
			"True Crime Podcasts Fans",
		},
		{
			"learner pattern",
			"someone trying to learn day trading",
			"Day Trading Beginners",
		},
		{
			"four word cap",
			"overwhelmed first time startup founders everywhere",
			"Overwhelmed First Time Startup",
		},
		{
			"plain audience passes through",
			"new parents",
			"New Parents",
		},
		{
			"truncates at comma",
			"freelancers, mostly designers and writers",
			"Freelancers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAudience(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeAudience(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeAudienceFallback(t *testing.T) {
	t.Run("bare generic word falls back to original words", func(t *testing.T) {
		got := NormalizeAudience("everyone")
		if got != "Everyone" {
			t.Errorf("expected Everyone, got %q", got)
		}
	})

	t.Run("only the fixed generic set triggers the fallback", func(t *testing.T) {
		// "folks" blocks noun-phrase adoption mid-pipeline but is not in
		// the fallback set, so a reduction that ends at "Folks" keeps it
		// instead of reverting to the first words of the input.
		got := NormalizeAudience("folks, the quiet kind")
		if got != "Folks" {
			t.Errorf("expected Folks, got %q", got)
		}
	})

	t.Run("generic word with descriptive tail keeps the tail", func(t *testing.T) {
		// "people who" is stripped, leaving the description to normalize.
		got := NormalizeAudience("people who hate spreadsheets")
		if got == "" || got == "People" {
			t.Errorf("expected a descriptive label, got %q", got)
		}
	})

	t.Run("output is always trimmed and non-empty", func(t *testing.T) {
		inputs := []string{"x", "anyone", "busy moms", "   readers   "}
		for _, in := range inputs {
			got := NormalizeAudience(in)
			if got == "" {
				t.Errorf("NormalizeAudience(%q) returned empty", in)
			}
			if got != strings.TrimSpace(got) {
				t.Errorf("NormalizeAudience(%q) = %q has surrounding whitespace", in, got)
			}
		}
	})
}
