package text

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chapterHTML = `<?xml version="1.0" encoding="utf-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>Chapter File</title><style>p { color: red; }</style></head>
<body>
  <div class="chapter">
    <h2>The   First Morning</h2>
    <p>It was <em>very</em> early, and the <strong>sun</strong> was low.</p>
    <p>12</p>
    <blockquote><p>Quoted line.</p></blockquote>
    <ul><li>apples</li><li>pears<ol><li>green</li></ol></li></ul>
    <img src="x.png" alt="x"/>
    <p>Line one<br/>line two</p>
  </div>
</body>
</html>`

func TestDocumentMarkdown(t *testing.T) {
	doc, err := Parse([]byte(chapterHTML))
	require.NoError(t, err)

	assert.Equal(t, "The First Morning", doc.Heading())
	assert.Equal(t, "Chapter File", doc.Title())

	md := doc.Markdown()
	assert.True(t, strings.HasPrefix(md, "## The First Morning\n\nIt was *very* early, and the **sun** was low."))
	assert.Contains(t, md, "> Quoted line.")
	assert.Contains(t, md, "- apples")
	assert.Contains(t, md, "1. green")
	assert.Contains(t, md, "line two")
	assert.NotContains(t, md, "12")
	assert.NotContains(t, md, "x.png")
	assert.NotContains(t, md, "color: red")
}

func TestDocumentPlainText(t *testing.T) {
	doc, err := Parse([]byte(chapterHTML))
	require.NoError(t, err)

	plain := doc.PlainText()
	assert.True(t, strings.HasPrefix(plain, "The First Morning\n\nIt was very early, and the sun was low."))
	assert.NotContains(t, plain, "*")
	assert.NotContains(t, plain, "color: red")
	assert.NotContains(t, plain, "\n\n12\n\n")
	assert.Equal(t, 21, WordCount(plain))
}

func TestDocumentWithoutHeading(t *testing.T) {
	doc, err := Parse([]byte(`<html><head><title>T</title></head><body><p>Only text.</p></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "", doc.Heading())
	assert.Equal(t, "Only text.", doc.PlainText())
}

func TestStripMarkdown(t *testing.T) {
	md := "# Title\n\n## Part\n\nSome *soft* and **bold** words.\n\n> quoted\n\n- one\n- two\n\n---\n\n```\ncode\n```"
	got := StripMarkdown(md)
	assert.Equal(t, "Title\n\nPart\n\nSome soft and bold words.\n\nquoted\n\none\ntwo\n\ncode", got)

	got = StripMarkdown("See [the notes](notes.xhtml#n1) from 1999\\. Line  \nbreak")
	assert.Equal(t, "See the notes from 1999. Line\nbreak", got)
}

func TestDocumentLinksAreRead(t *testing.T) {
	doc, err := Parse([]byte(`<html><body><p>Read <a href="notes.xhtml">the notes</a> first.</p></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Read the notes first.", doc.PlainText())
}

func TestSegments(t *testing.T) {
	t.Run("short text is one segment", func(t *testing.T) {
		assert.Equal(t, []string{"Hello there."}, Segments("  Hello there. ", 100))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Segments(" \n ", 100))
	})

	t.Run("paragraphs are packed", func(t *testing.T) {
		got := Segments("aaaa.\n\nbbbb.\n\ncccc.", 13)
		assert.Equal(t, []string{"aaaa.\n\nbbbb.", "cccc."}, got)
	})

	t.Run("long paragraph splits on sentences", func(t *testing.T) {
		para := "One sentence here. Another one follows! Does a third? Yes."
		got := Segments(para, 25)
		for _, s := range got {
			assert.LessOrEqual(t, utf8.RuneCountInString(s), 25)
		}
		assert.Equal(t, "One sentence here.", got[0])
		assert.Equal(t, strings.Join(strings.Fields(para), " "), strings.Join(strings.Fields(strings.Join(got, " ")), " "))
	})

	t.Run("overlong word is cut", func(t *testing.T) {
		got := Segments(strings.Repeat("x", 25), 10)
		assert.Equal(t, []string{"xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, got)
	})
}
