package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"golang.org/x/net/html"
)

// extractEPUB walks an EPUB's spine in reading order and converts each
// XHTML document to text. h1-h3 elements become "# " heading lines so
// the segmenter can pick up the book's existing chapter structure.
func extractEPUB(path string) (string, error) {
	rc, err := epub.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open EPUB %s: %w", filepath.Base(path), err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return "", fmt.Errorf("no rootfiles in EPUB %s", filepath.Base(path))
	}
	book := rc.Rootfiles[0]

	var blocks []string
	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}
		blocks = append(blocks, xhtmlBlocks(string(data))...)
	}

	if len(blocks) == 0 {
		return "", fmt.Errorf("no extractable text in %s", filepath.Base(path))
	}
	return strings.Join(blocks, "\n\n"), nil
}

var headingTags = map[string]bool{"h1": true, "h2": true, "h3": true}

// xhtmlBlocks converts one XHTML document into text blocks: one block
// per heading or paragraph-level element, headings prefixed with "# ".
func xhtmlBlocks(doc string) []string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}

	var blocks []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case headingTags[n.Data]:
				if text := nodeText(n); text != "" {
					blocks = append(blocks, "# "+text)
				}
				return
			case n.Data == "p" || n.Data == "li" || n.Data == "blockquote":
				if text := nodeText(n); text != "" {
					blocks = append(blocks, text)
				}
				return
			case n.Data == "script" || n.Data == "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return blocks
}

// nodeText flattens the text content of a node, collapsing whitespace.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
