package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"bookvoice/epub/epubtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, root interface {
	SetArgs([]string)
	Execute() error
}, args ...string) error {
	t.Helper()
	root.SetArgs(args)
	return root.Execute()
}

func TestConvertAndList(t *testing.T) {
	tmp := t.TempDir()
	epubPath := filepath.Join(tmp, "book.epub")
	epubtest.Write(t, epubPath, epubtest.Book{
		Title:  "Fixture",
		Author: "Someone",
		Chapters: []epubtest.Chapter{
			{Heading: "Beginning", Body: "<p>Once upon a time.</p>"},
			{Heading: "Ending", Body: "<p>The end.</p>"},
		},
	})
	booksDir := filepath.Join(tmp, "books")

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { RootCmd.SetOut(nil); RootCmd.SetErr(nil) })

	require.NoError(t, execute(t, RootCmd, "convert", epubPath, "Fixture Book", "--books-dir", booksDir))
	assert.Contains(t, out.String(), "Converted 2 chapters")

	out.Reset()
	require.NoError(t, execute(t, RootCmd, "list-chapters", filepath.Join(booksDir, "fixture-book"), "--books-dir", booksDir))
	s := out.String()
	assert.Contains(t, s, "Fixture Book by Someone")
	assert.Less(t, strings.Index(s, "Beginning"), strings.Index(s, "Ending"))

	err := execute(t, RootCmd, "convert", epubPath, "Fixture Book", "--books-dir", booksDir)
	assert.ErrorContains(t, err, "already exists")
}

func TestGenerateAudioRequiresChapters(t *testing.T) {
	RootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { RootCmd.SetErr(nil) })
	assert.Error(t, execute(t, RootCmd, "generate-audio", t.TempDir()))
}

func TestPlaygroundCreateSample(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "samples")
	var out bytes.Buffer
	PlaygroundCmd.SetOut(&out)
	PlaygroundCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { PlaygroundCmd.SetOut(nil); PlaygroundCmd.SetErr(nil) })

	require.NoError(t, execute(t, PlaygroundCmd, "create-sample", "--dir", dir))
	assert.FileExists(t, filepath.Join(dir, "medium_sample.txt"))
	assert.Contains(t, out.String(), "voice-playground compare")
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	t.Cleanup(func() { RootCmd.SetOut(nil) })

	require.NoError(t, execute(t, RootCmd, "version"))
	assert.Equal(t, "version: dev\n", out.String())
}
