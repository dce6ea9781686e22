package wizard

import (
	"fmt"
	"strings"

	"github.com/productforge/forge/internal/product"
)

// buildConfig assembles the final product document from everything the
// session collected: a cover, a table of contents, one chapter page
// per chapter, and a closing CTA page. Page data keys follow the
// render service's vocabulary.
func (s *Session) buildConfig() *product.Config {
	cfg := &product.Config{
		Title:    s.Title,
		Author:   s.Author,
		Filename: slugify(s.Title),
		Design:   s.design,
		Pages:    make([]product.PageSpec, 0, len(s.Chapters)+3),
	}

	cover := map[string]any{
		"title":  s.Title,
		"author": s.Author,
	}
	if s.LogoPath != "" {
		cover["logo_path"] = s.LogoPath
	}
	cfg.Pages = append(cfg.Pages, product.PageSpec{Type: "cover", Data: cover})

	entries := make([]string, len(s.Chapters))
	for i, ch := range s.Chapters {
		entries[i] = ch.Title
	}
	cfg.Pages = append(cfg.Pages, product.PageSpec{
		Type: "toc",
		Data: map[string]any{"entries": entries},
	})

	for i, ch := range s.Chapters {
		cfg.Pages = append(cfg.Pages, product.PageSpec{
			Type: "chapter",
			Data: map[string]any{
				"chapter_number": fmt.Sprintf("%d", i+1),
				"chapter_title":  ch.Title,
				"paragraphs":     splitParagraphs(ch.Content),
			},
		})
	}

	cta := map[string]any{
		"headline": []string{"Want to go further?"},
	}
	if s.SiteURL != "" {
		cta["links"] = []map[string]string{{"url": s.SiteURL, "display": s.SiteURL}}
		cfg.Links = map[string]product.LinkSpec{
			"site": {URL: s.SiteURL, Display: s.SiteURL},
		}
	}
	cfg.Pages = append(cfg.Pages, product.PageSpec{Type: "cta", Data: cta})

	cfg.ApplyDefaults()
	return cfg
}

// splitParagraphs breaks chapter content on blank lines, the same
// paragraph boundaries the segmenter preserved.
func splitParagraphs(content string) []string {
	var out []string
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// slugify turns a title into a safe lowercase filename stem.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "untitled"
	}
	return slug + ".pdf"
}
