package model

import "time"

// Metadata is persisted as metadata.yml at the root of a book directory.
type Metadata struct {
	Title         string    `yaml:"title"`
	OriginalTitle string    `yaml:"original_title,omitempty"`
	Author        string    `yaml:"author"`
	Language      string    `yaml:"language"`
	Publisher     string    `yaml:"publisher"`
	Description   string    `yaml:"description"`
	Slug          string    `yaml:"slug"`
	Source        string    `yaml:"source"`
	ChapterCount  int       `yaml:"chapter_count"`
	ConvertedAt   time.Time `yaml:"converted_at"`
}

// TOC is persisted as toc.yml. Chapters are kept in reading order.
type TOC struct {
	Chapters []TOCEntry `yaml:"chapters"`
}

type TOCEntry struct {
	Number    int    `yaml:"number"`
	Title     string `yaml:"title"`
	Filename  string `yaml:"filename"`
	WordCount int    `yaml:"word_count"`
}

// Find returns the entry with the given chapter number.
func (t *TOC) Find(number int) (TOCEntry, bool) {
	for _, ch := range t.Chapters {
		if ch.Number == number {
			return ch, true
		}
	}
	return TOCEntry{}, false
}

// Chapter is a converted chapter before it is written to disk.
type Chapter struct {
	Number    int
	Title     string
	Filename  string
	Markdown  string
	Text      string
	WordCount int
}

func (c *Chapter) Entry() TOCEntry {
	return TOCEntry{
		Number:    c.Number,
		Title:     c.Title,
		Filename:  c.Filename,
		WordCount: c.WordCount,
	}
}

// AudioManifest is persisted as audio/<model>/manifest.yml.
type AudioManifest struct {
	Model   string       `yaml:"model"`
	Entries []AudioEntry `yaml:"entries"`
}

type AudioEntry struct {
	Chapter         int       `yaml:"chapter"`
	Voice           string    `yaml:"voice"`
	Files           []string  `yaml:"files"`
	Format          string    `yaml:"format"`
	Segments        int       `yaml:"segments"`
	DurationSeconds float64   `yaml:"duration_seconds"`
	RunID           string    `yaml:"run_id"`
	GeneratedAt     time.Time `yaml:"generated_at"`
}

// Put replaces the entry for the same chapter and voice, or appends it.
func (m *AudioManifest) Put(entry AudioEntry) {
	for i, e := range m.Entries {
		if e.Chapter == entry.Chapter && e.Voice == entry.Voice {
			m.Entries[i] = entry
			return
		}
	}
	m.Entries = append(m.Entries, entry)
}

// Voices returns the voices with audio for chapter, in manifest order.
func (m *AudioManifest) Voices(chapter int) []string {
	var voices []string
	for _, e := range m.Entries {
		if e.Chapter == chapter {
			voices = append(voices, e.Voice)
		}
	}
	return voices
}
