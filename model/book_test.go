package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioManifestPutReplaces(t *testing.T) {
	m := &AudioManifest{Model: "kokoro"}
	m.Put(AudioEntry{Chapter: 1, Voice: "af_heart", RunID: "a"})
	m.Put(AudioEntry{Chapter: 1, Voice: "af_bella", RunID: "b"})
	m.Put(AudioEntry{Chapter: 1, Voice: "af_heart", RunID: "c"})

	require.Len(t, m.Entries, 2)
	assert.Equal(t, "c", m.Entries[0].RunID)
	assert.Equal(t, []string{"af_heart", "af_bella"}, m.Voices(1))
	assert.Empty(t, m.Voices(2))
}

func TestTOCFind(t *testing.T) {
	toc := TOC{Chapters: []TOCEntry{{Number: 1, Title: "One"}, {Number: 2, Title: "Two"}}}

	ch, ok := toc.Find(2)
	assert.True(t, ok)
	assert.Equal(t, "Two", ch.Title)

	_, ok = toc.Find(3)
	assert.False(t, ok)
}
