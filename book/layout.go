package book

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	MetadataFile = "metadata.yml"
	TOCFile      = "toc.yml"
	ManifestFile = "manifest.yml"
)

// Layout resolves the paths of one book directory.
type Layout struct {
	Root string
}

func (l Layout) MetadataPath() string { return filepath.Join(l.Root, MetadataFile) }
func (l Layout) TOCPath() string      { return filepath.Join(l.Root, TOCFile) }
func (l Layout) SourceDir() string    { return filepath.Join(l.Root, "source") }
func (l Layout) ChaptersDir() string  { return filepath.Join(l.Root, "content", "chapters") }
func (l Layout) TextDir() string      { return filepath.Join(l.Root, "content", "text") }
func (l Layout) AudioRoot() string    { return filepath.Join(l.Root, "audio") }
func (l Layout) LogsDir() string      { return filepath.Join(l.Root, "processing", "logs") }
func (l Layout) TempDir() string      { return filepath.Join(l.Root, "processing", "temp") }

func (l Layout) ChapterPath(filename string) string {
	return filepath.Join(l.ChaptersDir(), filename+".md")
}

func (l Layout) TextPath(filename string) string {
	return filepath.Join(l.TextDir(), filename+".txt")
}

func (l Layout) AudioDir(model string) string {
	return filepath.Join(l.AudioRoot(), model, "chapters")
}

func (l Layout) ManifestPath(model string) string {
	return filepath.Join(l.AudioRoot(), model, ManifestFile)
}

// AudioPath is audio/<model>/chapters/<filename>_<voice>.<ext>.
func (l Layout) AudioPath(model, filename, voice, ext string) string {
	return filepath.Join(l.AudioDir(model), AudioName(filename, voice)+"."+ext)
}

// SegmentPath is the path of segment index (0-based) when segments are not combined.
func (l Layout) SegmentPath(model, filename, voice string, index int, ext string) string {
	return filepath.Join(l.AudioDir(model), fmt.Sprintf("%s_%03d.%s", AudioName(filename, voice), index, ext))
}

// AudioName is the artifact stem shared by combined and segmented audio.
func AudioName(filename, voice string) string {
	return filename + "_" + voice
}

// RemoveStaleAudio deletes every combined or segment file of the chapter
// and voice, in any format, except the paths in keep.
func (l Layout) RemoveStaleAudio(model, filename, voice string, keep []string) error {
	dir := l.AudioDir(model)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	kept := make(map[string]bool, len(keep))
	for _, k := range keep {
		kept[filepath.Clean(k)] = true
	}
	name := AudioName(filename, voice)
	for _, e := range entries {
		if e.IsDir() || !isChapterAudio(e.Name(), name) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if kept[path] {
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove old audio %s: %w", e.Name(), err)
		}
	}
	return nil
}

// isChapterAudio matches "<name>.<ext>" and "<name>_NNN.<ext>".
func isChapterAudio(file, name string) bool {
	if ext, ok := strings.CutPrefix(file, name+"."); ok {
		return ext != "" && !strings.Contains(ext, ".")
	}
	if rest, ok := strings.CutPrefix(file, name+"_"); ok {
		return isSegmentSuffix(rest)
	}
	return false
}

// isSegmentSuffix matches "NNN.<ext>".
func isSegmentSuffix(s string) bool {
	dot := strings.IndexByte(s, '.')
	if dot < 3 || dot == len(s)-1 {
		return false
	}
	for _, r := range s[:dot] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Create makes every directory of a new book.
func (l Layout) Create() error {
	dirs := []string{
		l.SourceDir(),
		l.ChaptersDir(),
		l.TextDir(),
		l.AudioRoot(),
		l.LogsDir(),
		l.TempDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
