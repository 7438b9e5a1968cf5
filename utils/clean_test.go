package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "The Hobbit", "the-hobbit"},
		{"punctuation", "Dune: Part One (1965)", "dune-part-one-1965"},
		{"accents", "Les Misérables", "les-miserables"},
		{"underscores and dashes", "a_b -- c", "a-b-c"},
		{"non latin kept", "三体 II", "三体-ii"},
		{"only symbols", "?!*", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestChapterFilename(t *testing.T) {
	assert.Equal(t, "01-introduction", ChapterFilename(1, 12, "Introduction"))
	assert.Equal(t, "007-chapter", ChapterFilename(7, 120, "***"))
	assert.Equal(t, "10-a-new-hope", ChapterFilename(10, 10, "A New Hope!"))

	long := ChapterFilename(2, 5, "one two three four five six seven eight nine ten eleven twelve thirteen")
	assert.LessOrEqual(t, len([]rune(long)), len("02-")+maxSlugRunes)
	assert.NotEqual(t, '-', rune(long[len(long)-1]))
}

func TestCleanDirName(t *testing.T) {
	assert.Equal(t, "a_b_c.epub", CleanDirName(" a/b:c.epub "))
}

func TestWriteFileAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.wav")

	require.NoError(t, WriteFileAtomic(path, []byte("first")))
	require.NoError(t, WriteFileAtomic(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
