// Package product defines the JSON page-description document the
// render service consumes, along with parsing, defaulting, and schema
// validation for documents submitted over the API.
package product

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoPages is returned when a document defines no pages at all.
var ErrNoPages = errors.New("no pages defined")

// ErrUnknownPageType is returned when a page names a type no renderer handles.
var ErrUnknownPageType = errors.New("unknown page type")

// PageTypes are the page kinds the render service understands.
var PageTypes = map[string]bool{
	"cover":   true,
	"letter":  true,
	"prompt":  true,
	"writing": true,
	"cta":     true,
	"toc":     true,
	"section": true,
	"chapter": true,
}

// Margins are page margins in points.
type Margins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// DesignSystem is the visual design configuration for a product.
type DesignSystem struct {
	// Colors keys: primary, secondary, accent, background, muted, line, ink, earth.
	Colors map[string]string `json:"colors,omitempty"`
	// Fonts keys: heading, body, body_italic, mono.
	Fonts    map[string]string `json:"fonts,omitempty"`
	PageSize string            `json:"page_size,omitempty"` // "letter" | "a4"
	Margins  Margins           `json:"margins,omitempty"`
	Layout   string            `json:"layout,omitempty"` // e.g. "clean", "warm", "editorial"
}

// LinkSpec is a hyperlink with display text and URL.
type LinkSpec struct {
	URL     string `json:"url"`
	Display string `json:"display"`
}

// PageSpec is a single page definition: a renderer type plus its data.
type PageSpec struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// Config is the complete product document sent to the render service.
type Config struct {
	Title    string              `json:"title"`
	Subtitle string              `json:"subtitle,omitempty"`
	Author   string              `json:"author,omitempty"`
	Filename string              `json:"filename,omitempty"`
	Design   DesignSystem        `json:"design"`
	Links    map[string]LinkSpec `json:"links,omitempty"`
	Pages    []PageSpec          `json:"pages"`
}

// DefaultDesign returns the design settings applied when a document
// leaves them unspecified.
func DefaultDesign() DesignSystem {
	return DesignSystem{
		PageSize: "letter",
		Margins:  Margins{Left: 90, Right: 90, Top: 80, Bottom: 60},
		Layout:   "editorial",
	}
}

// Parse decodes and validates a raw JSON document, applying defaults
// for missing fields. It rejects documents with no pages or with page
// types no renderer handles.
func Parse(raw []byte) (*Config, error) {
	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}

	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("invalid product config: %w", err)
	}
	c.ApplyDefaults()

	if len(c.Pages) == 0 {
		return nil, ErrNoPages
	}
	for i, p := range c.Pages {
		if !PageTypes[p.Type] {
			return nil, fmt.Errorf("page %d: %w: %q", i, ErrUnknownPageType, p.Type)
		}
	}
	return &c, nil
}

// ApplyDefaults fills zero-valued fields with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Title == "" {
		c.Title = "Untitled"
	}
	if c.Filename == "" {
		c.Filename = "output.pdf"
	}
	def := DefaultDesign()
	if c.Design.PageSize == "" {
		c.Design.PageSize = def.PageSize
	}
	if c.Design.Layout == "" {
		c.Design.Layout = def.Layout
	}
	if c.Design.Margins == (Margins{}) {
		c.Design.Margins = def.Margins
	}
}

// OutputFilename returns the download filename, always .pdf suffixed.
func (c *Config) OutputFilename() string {
	name := c.Filename
	if name == "" {
		name = "output.pdf"
	}
	if len(name) < 4 || name[len(name)-4:] != ".pdf" {
		name += ".pdf"
	}
	return name
}
