// Package extract turns loosely structured user text into the pieces of
// an ebook: chapter lists split out of pasted manuscripts, short topic
// and audience phrases distilled from free-form answers, and candidate
// titles assembled from those phrases.
//
// Every function in this package is total: malformed or unanticipated
// input degrades to a deterministic fallback (a synthetic "Chapter N"
// title, a first-words phrase) instead of returning an error. The
// output always feeds a user-editable review step, so a reasonable
// guess beats a refusal.
package extract

import (
	"fmt"
	"strings"

	"github.com/productforge/forge/internal/types"
)

// Segment splits a raw text blob into an ordered list of chapters by
// detecting heading lines. It is a single linear pass over the input:
// each trimmed line is classified as a heading or body text, heading
// lines start a new chapter, and body lines accumulate (with their
// original spacing and internal blank lines) under the current one.
//
// The result is never empty: input with no headings yields one chapter
// holding all the text, and empty input yields a single "Chapter 1".
func Segment(text string) []types.Chapter {
	var (
		chapters []types.Chapter
		title    string
		body     []string
	)

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if title == "" && content == "" {
			return
		}
		t := title
		if t == "" {
			t = fmt.Sprintf("Chapter %d", len(chapters)+1)
		}
		chapters = append(chapters, types.Chapter{Title: t, Content: content})
	}

	for _, raw := range strings.Split(text, "\n") {
		if m := classifyLine(strings.TrimSpace(raw)); m.matched {
			flush()
			title = m.title
			body = nil
			continue
		}
		body = append(body, raw)
	}
	flush()

	if len(chapters) == 0 {
		chapters = append(chapters, types.Chapter{
			Title:   "Chapter 1",
			Content: strings.TrimSpace(text),
		})
	}
	return chapters
}
