package extract

import (
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	t.Run("empty input yields a single empty chapter", func(t *testing.T) {
		got := Segment("")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "Chapter 1" {
			t.Errorf("expected title Chapter 1, got %q", got[0].Title)
		}
		if got[0].Content != "" {
			t.Errorf("expected empty content, got %q", got[0].Content)
		}
	})

	t.Run("no headings yields one chapter with all text", func(t *testing.T) {
		got := Segment("  Hello world\nSecond line\n")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "Chapter 1" {
			t.Errorf("expected title Chapter 1, got %q", got[0].Title)
		}
		if got[0].Content != "Hello world\nSecond line" {
			t.Errorf("unexpected content: %q", got[0].Content)
		}
	})

	t.Run("markdown headings split chapters", func(t *testing.T) {
		got := Segment("# Intro\nHello\n\n# Next\nWorld")
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "Intro" || got[0].Content != "Hello" {
			t.Errorf("chapter 1 = %q/%q", got[0].Title, got[0].Content)
		}
		if got[1].Title != "Next" || got[1].Content != "World" {
			t.Errorf("chapter 2 = %q/%q", got[1].Title, got[1].Content)
		}
	})

	t.Run("explicit chapter marker ignores the parsed number", func(t *testing.T) {
		got := Segment("Chapter 2: Growth\nBody text")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "Growth" {
			t.Errorf("expected title Growth, got %q", got[0].Title)
		}
		if got[0].Content != "Body text" {
			t.Errorf("unexpected content: %q", got[0].Content)
		}
	})

	t.Run("text before the first heading becomes a numbered chapter", func(t *testing.T) {
		got := Segment("some preamble\n# One\nbody")
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "Chapter 1" || got[0].Content != "some preamble" {
			t.Errorf("chapter 1 = %q/%q", got[0].Title, got[0].Content)
		}
		if got[1].Title != "One" {
			t.Errorf("chapter 2 title = %q", got[1].Title)
		}
	})

	t.Run("internal blank lines are preserved in content", func(t *testing.T) {
		got := Segment("# T\nfirst paragraph\n\nsecond paragraph")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Content != "first paragraph\n\nsecond paragraph" {
			t.Errorf("unexpected content: %q", got[0].Content)
		}
	})

	t.Run("numbered list items become chapter titles", func(t *testing.T) {
		got := Segment("1. First Steps\nalpha\n2. Next Steps\nbeta")
		if len(got) != 2 {
			t.Fatalf("expected 2 chapters, got %d", len(got))
		}
		if got[0].Title != "First Steps" || got[1].Title != "Next Steps" {
			t.Errorf("titles = %q, %q", got[0].Title, got[1].Title)
		}
	})

	t.Run("shouted lines are title-cased headings", func(t *testing.T) {
		got := Segment("THE BIG IDEA HERE\ncontent")
		if len(got) != 1 {
			t.Fatalf("expected 1 chapter, got %d", len(got))
		}
		if got[0].Title != "The Big Idea Here" {
			t.Errorf("expected title-cased heading, got %q", got[0].Title)
		}
	})

	t.Run("re-joining titles and contents reproduces the structure", func(t *testing.T) {
		first := Segment("# One\nalpha\n\n# Two\nbeta\nbeta line two\n# Three\ngamma")

		// Rebuild the manuscript from the result, headings restored.
		parts := make([]string, len(first))
		for i, ch := range first {
			parts[i] = "# " + ch.Title + "\n" + ch.Content
		}
		second := Segment(strings.Join(parts, "\n"))

		if len(second) != len(first) {
			t.Fatalf("round trip changed chapter count: %d vs %d", len(second), len(first))
		}
		for i := range first {
			if second[i] != first[i] {
				t.Errorf("chapter %d round-tripped to %+v, want %+v", i, second[i], first[i])
			}
		}
	})

	t.Run("chapter order follows input order", func(t *testing.T) {
		got := Segment("## B\nx\n## A\ny\n## C\nz")
		want := []string{"B", "A", "C"}
		if len(got) != 3 {
			t.Fatalf("expected 3 chapters, got %d", len(got))
		}
		for i, title := range want {
			if got[i].Title != title {
				t.Errorf("chapter %d title = %q, want %q", i, got[i].Title, title)
			}
		}
	})
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		matched bool
		title   string
	}{
		{"markdown h1", "# Intro", true, "Intro"},
		{"markdown h3", "### Deep Dive", true, "Deep Dive"},
		{"markdown h4 is body", "#### Too Deep", false, ""},
		{"chapter colon", "Chapter 1: Getting Started", true, "Getting Started"},
		{"chapter period", "chapter 10. the end", true, "the end"},
		{"chapter em-dash", "Chapter 3 — Momentum", true, "Momentum"},
		{"bare chapter label is body", "Chapter 4", false, ""},
		{"numbered item", "12. Scaling Up", true, "Scaling Up"},
		{"decimal-free number only is body", "12.", false, ""},
		{"shouted heading", "WHY MOST DIETS FAIL", true, "Why Most Diets Fail"},
		{"shouted with colon", "PART ONE: BASICS", true, "Part One: Basics"},
		{"short caps are body", "OK GO", false, ""},
		{"two shouted words are body", "HELLO WORLDLINGS", false, ""},
		{"mixed case is body", "Why Most Diets Fail", false, ""},
		{"plain body line", "just some text here", false, ""},
		{"empty line", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyLine(tt.line)
			if got.matched != tt.matched {
				t.Fatalf("matched = %v, want %v", got.matched, tt.matched)
			}
			if got.title != tt.title {
				t.Errorf("title = %q, want %q", got.title, tt.title)
			}
		})
	}
}
