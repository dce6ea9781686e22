package ingest

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractPlain(t *testing.T) {
	t.Run("markdown passes through unchanged", func(t *testing.T) {
		content := "# Intro\nHello\n\n# Next\nWorld"
		got, err := Extract(writeFile(t, "book.md", content))
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if got != content {
			t.Errorf("got %q, want %q", got, content)
		}
	})

	t.Run("invalid UTF-8 is replaced", func(t *testing.T) {
		got, err := Extract(writeFile(t, "book.txt", "ok\xff\xfetext"))
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if strings.Contains(got, "\xff") {
			t.Errorf("invalid bytes survived: %q", got)
		}
		if !strings.Contains(got, "ok") || !strings.Contains(got, "text") {
			t.Errorf("valid text lost: %q", got)
		}
	})
}

func TestExtractUnsupported(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		_, err := Extract(writeFile(t, "book.xyz", "data"))
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
	})

	t.Run("docx names the workaround", func(t *testing.T) {
		_, err := Extract(writeFile(t, "book.docx", "data"))
		if !errors.Is(err, ErrUnsupported) {
			t.Fatalf("expected ErrUnsupported, got %v", err)
		}
		if !strings.Contains(err.Error(), "convert") {
			t.Errorf("error should suggest conversion: %v", err)
		}
	})
}

func TestContentLines(t *testing.T) {
	t.Run("recovers text with font sizes", func(t *testing.T) {
		stream := `BT /F1 24 Tf 72 700 Td (Big Heading) Tj ET
BT /F2 11 Tf 72 650 Td (Body text here.) Tj ET`
		lines := contentLines(stream)
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %+v", len(lines), lines)
		}
		if lines[0].text != "Big Heading" || lines[0].size != 24 {
			t.Errorf("line 0 = %+v", lines[0])
		}
		if lines[1].text != "Body text here." || lines[1].size != 11 {
			t.Errorf("line 1 = %+v", lines[1])
		}
	})

	t.Run("joins TJ array fragments", func(t *testing.T) {
		stream := `BT /F1 11 Tf [(Hel) -20 (lo world)] TJ ET`
		lines := contentLines(stream)
		if len(lines) != 1 || lines[0].text != "Hello world" {
			t.Fatalf("lines = %+v", lines)
		}
	})

	t.Run("decodes escapes and nested parens", func(t *testing.T) {
		stream := `BT (a \(b\) c \\ d (nested)) Tj ET`
		lines := contentLines(stream)
		if len(lines) != 1 {
			t.Fatalf("lines = %+v", lines)
		}
		if lines[0].text != `a (b) c \ d (nested)` {
			t.Errorf("text = %q", lines[0].text)
		}
	})

	t.Run("skips hex strings", func(t *testing.T) {
		stream := `BT <00480065> Tj (visible) Tj ET`
		lines := contentLines(stream)
		if len(lines) != 1 || lines[0].text != "visible" {
			t.Fatalf("lines = %+v", lines)
		}
	})
}

func TestMarkHeadings(t *testing.T) {
	lines := []pdfLine{
		{text: "Chapter Title", size: 24},
		{text: "Body paragraph one that goes on for a while.", size: 11},
		{text: "Another body line.", size: 11},
		{text: "Second Title", size: 18},
		{text: "More body.", size: 11},
	}
	got := markHeadings(lines)
	want := "# Chapter Title\nBody paragraph one that goes on for a while.\nAnother body line.\n# Second Title\nMore body."
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

// minimalEPUB writes a tiny two-chapter EPUB for extraction tests.
func minimalEPUB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.epub")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	files := []struct{ name, body string }{
		{"mimetype", "application/epub+zip"},
		{"META-INF/container.xml", `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`},
		{"content.opf", `<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="2.0" unique-identifier="id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>Test Book</dc:title>
    <dc:identifier id="id">test-book</dc:identifier>
  </metadata>
  <manifest>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
    <item id="ch2" href="ch2.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
  <spine>
    <itemref idref="ch1"/>
    <itemref idref="ch2"/>
  </spine>
</package>`},
		{"ch1.xhtml", `<html><body><h1>First Chapter</h1><p>Opening paragraph.</p></body></html>`},
		{"ch2.xhtml", `<html><body><h2>Second Chapter</h2><p>Closing paragraph.</p></body></html>`},
	}
	for _, file := range files {
		fw, err := w.Create(file.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(file.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractEPUB(t *testing.T) {
	got, err := Extract(minimalEPUB(t))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, want := range []string{"# First Chapter", "Opening paragraph.", "# Second Chapter", "Closing paragraph."} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestXHTMLBlocks(t *testing.T) {
	blocks := xhtmlBlocks(`<html><body>
		<h1>Title</h1>
		<p>One <em>emphasized</em> paragraph.</p>
		<script>ignore()</script>
		<ul><li>first item</li></ul>
	</body></html>`)

	want := []string{"# Title", "One emphasized paragraph.", "first item"}
	if len(blocks) != len(want) {
		t.Fatalf("blocks = %v", blocks)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block %d = %q, want %q", i, blocks[i], want[i])
		}
	}
}
