package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfLine is a line of text recovered from a page content stream,
// tagged with the font size active when it was drawn.
type pdfLine struct {
	text string
	size float64
}

// extractPDF pulls text out of a PDF's page content streams. Heading
// detection mirrors the upload flow's other extractors: find the
// dominant body font size across the document, then mark lines drawn
// noticeably larger as "# " headings.
func extractPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTCONTENT
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF %s: %w", filepath.Base(path), err)
	}

	var lines []pdfLine
	for page := 1; page <= ctx.PageCount; page++ {
		r, err := pdfcpu.ExtractPageContent(ctx, page)
		if err != nil || r == nil {
			continue
		}
		stream, err := io.ReadAll(r)
		if err != nil {
			continue
		}
		lines = append(lines, contentLines(string(stream))...)
	}

	if len(lines) == 0 {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(path))
	}
	return markHeadings(lines), nil
}

// markHeadings finds the dominant body font size (weighted by text
// length) and rewrites lines drawn more than 1.5pt larger as markdown
// headings. Very long lines stay body text regardless of size.
func markHeadings(lines []pdfLine) string {
	weights := make(map[float64]int)
	for _, l := range lines {
		weights[l.size] += len(l.text)
	}
	bodySize := 12.0
	best := 0
	for size, weight := range weights {
		if weight > best {
			bodySize = size
			best = weight
		}
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.size > bodySize+1.5 && len(l.text) < 120 {
			out = append(out, "# "+l.text)
			continue
		}
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}

// contentLines scans a decoded content stream and recovers the shown
// text, one line per text-positioning operation. This is a heuristic
// reading of the operator stream, not a full interpreter: it tracks
// the Tf font size, collects string literals, and starts a new line on
// Td/TD/T*/ET. Hex strings (usually CID-encoded) are skipped.
func contentLines(stream string) []pdfLine {
	var (
		lines   []pdfLine
		cur     strings.Builder
		size    = 12.0
		curSize = size
		lastNum float64
	)

	flush := func() {
		text := strings.Join(strings.Fields(cur.String()), " ")
		cur.Reset()
		if text != "" {
			lines = append(lines, pdfLine{text: text, size: curSize})
		}
		curSize = size
	}

	i := 0
	for i < len(stream) {
		c := stream[i]
		switch {
		case c == '(':
			s, n := parseLiteral(stream[i:])
			cur.WriteString(s)
			i += n

		case c == '<':
			// Hex string or dict open; skip to the closing bracket.
			j := strings.IndexByte(stream[i+1:], '>')
			if j < 0 {
				return lines
			}
			i += j + 2

		case c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '[' || c == ']':
			i++

		default:
			start := i
			i++
			for i < len(stream) && !isDelimiter(stream[i]) {
				i++
			}
			tok := stream[start:i]
			if v, err := strconv.ParseFloat(tok, 64); err == nil {
				lastNum = v
				continue
			}
			switch tok {
			case "Tf":
				size = lastNum
				if cur.Len() == 0 {
					curSize = size
				}
			case "Td", "TD", "T*", "ET", "'", "\"":
				flush()
			}
		}
	}
	flush()
	return lines
}

func isDelimiter(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', '(', ')', '<', '>', '[', ']', '/', '%':
		return true
	}
	return false
}

// parseLiteral reads a parenthesized PDF string literal starting at
// s[0] == '(' and returns the decoded text plus the number of bytes
// consumed. Escapes and balanced nested parentheses are handled.
func parseLiteral(s string) (string, int) {
	var b strings.Builder
	depth := 0
	i := 0
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return b.String(), i + 1
			}
			i++
			switch e := s[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 'r', 't', 'b', 'f':
				b.WriteByte(' ')
			case '(', ')', '\\':
				b.WriteByte(e)
			case '\n':
				// line continuation
			default:
				if e >= '0' && e <= '7' {
					oct := string(e)
					for len(oct) < 3 && i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '7' {
						i++
						oct += string(s[i])
					}
					if v, err := strconv.ParseUint(oct, 8, 16); err == nil && v < 256 {
						b.WriteByte(byte(v))
					}
				}
			}
			i++
		case '(':
			if depth > 0 {
				b.WriteByte(c)
			}
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i
}
