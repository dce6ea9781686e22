// Package types provides shared types used across multiple packages.
// This package has no dependencies on other forge packages to avoid import cycles.
package types

// Chapter is one ordered unit of book content: a display title and the
// raw paragraph text that belongs to it. Chapter order is book order.
// Titles are not required to be unique.
type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
