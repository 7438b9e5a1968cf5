// Package template renders the HTML page written next to a voice comparison.
package template

import (
	"fmt"
	"net/url"
)

//go:generate templ generate

type ComparisonView struct {
	Title    string
	TextFile string
	Preview  string
	Entries  []ComparisonEntry
}

type ComparisonEntry struct {
	Voice       string
	Description string
	// File is relative to the page.
	File       string
	SizeMB     float64
	Minutes    float64
	GenSeconds float64
	OK         bool
	Error      string
}

func audioSrc(file string) string {
	return (&url.URL{Path: file}).String()
}

func entryStats(e ComparisonEntry) string {
	return fmt.Sprintf("%.1f MB, %.1f min, generated in %.1fs", e.SizeMB, e.Minutes, e.GenSeconds)
}
