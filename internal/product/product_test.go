package product

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		raw := []byte(`{"pages":[{"type":"cover","data":{"title":"Hi"}}]}`)
		cfg, err := Parse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Title != "Untitled" {
			t.Errorf("title = %q, want Untitled", cfg.Title)
		}
		if cfg.Design.PageSize != "letter" {
			t.Errorf("page size = %q, want letter", cfg.Design.PageSize)
		}
		if cfg.Design.Layout != "editorial" {
			t.Errorf("layout = %q, want editorial", cfg.Design.Layout)
		}
		if cfg.Design.Margins.Left != 90 || cfg.Design.Margins.Bottom != 60 {
			t.Errorf("margins = %+v", cfg.Design.Margins)
		}
	})

	t.Run("rejects empty pages", func(t *testing.T) {
		_, err := Parse([]byte(`{"title":"T","pages":[]}`))
		if !errors.Is(err, ErrNoPages) {
			t.Fatalf("expected ErrNoPages, got %v", err)
		}
	})

	t.Run("rejects unknown page type", func(t *testing.T) {
		_, err := Parse([]byte(`{"pages":[{"type":"poster"}]}`))
		if !errors.Is(err, ErrUnknownPageType) {
			t.Fatalf("expected ErrUnknownPageType, got %v", err)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		if _, err := Parse([]byte(`{"pages":`)); err == nil {
			t.Fatal("expected error for malformed JSON")
		}
	})

	t.Run("rejects schema violations", func(t *testing.T) {
		// pages must be an array, links entries need url+display
		bad := [][]byte{
			[]byte(`{"pages":"nope"}`),
			[]byte(`{"pages":[{"type":"cover"}],"design":{"page_size":"tabloid"}}`),
			[]byte(`{"pages":[{"type":"cover"}],"links":{"site":{"url":"https://x"}}}`),
		}
		for _, raw := range bad {
			if _, err := Parse(raw); err == nil {
				t.Errorf("expected schema error for %s", raw)
			}
		}
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		raw := []byte(`{
			"title": "My Book",
			"author": "A. Author",
			"filename": "book",
			"design": {"page_size": "a4", "layout": "warm", "margins": {"left": 50, "right": 50, "top": 40, "bottom": 40}},
			"links": {"site": {"url": "https://example.com", "display": "example.com"}},
			"pages": [{"type": "chapter", "data": {"title": "One"}}]
		}`)
		cfg, err := Parse(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Design.PageSize != "a4" || cfg.Design.Margins.Left != 50 {
			t.Errorf("design = %+v", cfg.Design)
		}
		if cfg.OutputFilename() != "book.pdf" {
			t.Errorf("filename = %q, want book.pdf", cfg.OutputFilename())
		}
	})
}

func TestOutputFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", "output.pdf"},
		{"book", "book.pdf"},
		{"book.pdf", "book.pdf"},
		{"a", "a.pdf"},
	}
	for _, tt := range tests {
		c := Config{Filename: tt.in}
		if got := c.OutputFilename(); got != tt.want {
			t.Errorf("OutputFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
