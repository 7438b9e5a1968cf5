// Package book reads and writes the on-disk book directory produced by convert.
package book

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"bookvoice/model"
	"bookvoice/text"
	"bookvoice/utils"

	"gopkg.in/yaml.v3"
)

var (
	ErrBookNotFound     = errors.New("book directory not found")
	ErrTOCNotFound      = errors.New("table of contents not found, run convert first")
	ErrMetadataNotFound = errors.New("metadata not found")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrBookExists       = errors.New("book already exists")
)

// Book is a converted book directory with its metadata and table of contents loaded.
type Book struct {
	Layout
	Metadata model.Metadata
	TOC      model.TOC
}

func Open(dir string) (*Book, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, dir)
	}
	b := &Book{Layout: Layout{Root: dir}}

	if err := readYAML(b.TOCPath(), &b.TOC); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTOCNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", TOCFile, err)
	}
	if err := readYAML(b.MetadataPath(), &b.Metadata); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, b.MetadataPath())
		}
		return nil, fmt.Errorf("failed to read %s: %w", MetadataFile, err)
	}
	return b, nil
}

func (b *Book) Chapter(number int) (model.TOCEntry, error) {
	entry, ok := b.TOC.Find(number)
	if !ok {
		return model.TOCEntry{}, fmt.Errorf("%w: %d", ErrChapterNotFound, number)
	}
	return entry, nil
}

// ChapterText returns the speech input for a chapter: the plain-text file, or
// the Markdown file with its syntax stripped when no text file exists.
func (b *Book) ChapterText(entry model.TOCEntry) (string, error) {
	data, err := os.ReadFile(b.TextPath(entry.Filename))
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read chapter text: %w", err)
	}
	data, err = os.ReadFile(b.ChapterPath(entry.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to read chapter %d source: %w", entry.Number, err)
	}
	return text.StripMarkdown(string(data)), nil
}

// LoadManifest returns the audio manifest for model, empty when none was written yet.
func (l Layout) LoadManifest(modelName string) (*model.AudioManifest, error) {
	m := &model.AudioManifest{}
	if err := readYAML(l.ManifestPath(modelName), m); err != nil {
		if os.IsNotExist(err) {
			return &model.AudioManifest{Model: modelName}, nil
		}
		return nil, fmt.Errorf("failed to read audio manifest: %w", err)
	}
	if m.Model == "" {
		m.Model = modelName
	}
	return m, nil
}

func (l Layout) SaveManifest(m *model.AudioManifest) error {
	return WriteYAML(l.ManifestPath(m.Model), m)
}

func WriteYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}
