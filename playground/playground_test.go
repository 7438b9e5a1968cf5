package playground

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookvoice/tts"
	"bookvoice/tts/ttstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeText(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCompareOneFilePerVoice(t *testing.T) {
	engine := ttstest.New("af_heart", "af_sarah", "af_bella")
	textFile := writeText(t, "My Sample.txt", "Hello there. This is a test.")
	outDir := t.TempDir()

	var out bytes.Buffer
	cmp, err := Compare(context.Background(), engine, CompareOptions{
		TextFile:  textFile,
		Voices:    []string{"af_bella", "af_heart"},
		OutputDir: outDir,
		Out:       &out,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "my-sample"), cmp.SessionDir)
	require.Len(t, cmp.Results, 2)

	entries, err := os.ReadDir(cmp.SessionDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"my-sample_af_bella.wav", "my-sample_af_heart.wav", "index.html"}, names)

	index, err := os.ReadFile(filepath.Join(cmp.SessionDir, IndexFile))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(index), "<audio "))
	assert.Contains(t, out.String(), "Next steps:")
}

func TestCompareAllVoicesByDefault(t *testing.T) {
	engine := ttstest.New("af_heart", "af_sarah", "af_bella")
	textFile := writeText(t, "s.txt", "# Title\n\nSome **bold** text.")

	cmp, err := Compare(context.Background(), engine, CompareOptions{TextFile: textFile, OutputDir: t.TempDir()})
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)
	for _, c := range engine.Calls() {
		assert.Equal(t, "Title\n\nSome bold text.", c.Text)
	}
}

func TestCompareRecordsFailedVoice(t *testing.T) {
	engine := ttstest.New("af_heart", "af_sarah")
	engine.FailVoices["af_sarah"] = true
	textFile := writeText(t, "s.txt", "Hello.")

	var out bytes.Buffer
	cmp, err := Compare(context.Background(), engine, CompareOptions{TextFile: textFile, All: true, OutputDir: t.TempDir(), Out: &out})
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.NoError(t, cmp.Results[0].Err)
	assert.ErrorIs(t, cmp.Results[1].Err, ttstest.ErrSynthesis)
	assert.Contains(t, out.String(), "failed")

	index, err := os.ReadFile(filepath.Join(cmp.SessionDir, IndexFile))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(index), "<audio "))
}

func TestCompareRepeatedVoiceRunsOnce(t *testing.T) {
	engine := ttstest.New("af_heart", "af_bella")
	textFile := writeText(t, "s.txt", "Hello there.")

	cmp, err := Compare(context.Background(), engine, CompareOptions{
		TextFile:  textFile,
		Voices:    []string{"af_heart", "af_bella", "af_heart"},
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, "af_heart", cmp.Results[0].Voice)
	assert.Equal(t, "af_bella", cmp.Results[1].Voice)
	assert.Len(t, engine.Calls(), 2)
}

func TestCompareRejectsBadInput(t *testing.T) {
	engine := ttstest.New("af_heart")
	ctx := context.Background()

	_, err := Compare(ctx, engine, CompareOptions{TextFile: filepath.Join(t.TempDir(), "none.txt"), OutputDir: t.TempDir()})
	assert.ErrorContains(t, err, "text file not found")

	_, err = Compare(ctx, engine, CompareOptions{TextFile: writeText(t, "e.txt", "  \n"), OutputDir: t.TempDir()})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = Compare(ctx, engine, CompareOptions{TextFile: writeText(t, "s.txt", "Hi."), Voices: []string{"zz"}, OutputDir: t.TempDir()})
	assert.ErrorIs(t, err, tts.ErrUnknownVoice)
	assert.ErrorContains(t, err, "af_heart")
	assert.Empty(t, engine.Calls())
}

func TestCreateSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "voice_samples")
	paths, err := CreateSamples(dir, nil)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	short, err := os.ReadFile(filepath.Join(dir, "short_sample.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(short), "Hello, this is a short voice test."))

	long, err := os.ReadFile(filepath.Join(dir, "long_sample.txt"))
	require.NoError(t, err)
	assert.Greater(t, len(long), len(short))
}

func TestListVoices(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ListVoices(context.Background(), ttstest.New("af_heart", "af_bella"), &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[3], "af_heart"))
	assert.Contains(t, lines[4], "test voice af_bella")
}

func TestSay(t *testing.T) {
	engine := ttstest.New("af_heart")
	dir := filepath.Join(t.TempDir(), "cli_output")

	var out bytes.Buffer
	files, err := Say(context.Background(), engine, SayOptions{Text: "Hello there.", Voice: "af_heart", OutputDir: dir, Combine: true, Out: &out})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "output.wav")}, files)
	assert.FileExists(t, files[0])
	assert.Contains(t, out.String(), "Generated 1 audio files")

	files, err = Say(context.Background(), engine, SayOptions{Text: "One short line. Two short lines.", Voice: "af_heart", OutputDir: dir, MaxChars: 16})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "output_000.wav"), files[0])

	_, err = Say(context.Background(), engine, SayOptions{Text: "Hi.", Voice: "nobody", OutputDir: dir})
	assert.ErrorIs(t, err, tts.ErrUnknownVoice)

	_, err = Say(context.Background(), engine, SayOptions{Text: " ", Voice: "af_heart", OutputDir: dir})
	assert.ErrorIs(t, err, tts.ErrEmptyText)
}
