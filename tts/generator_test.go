package tts_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bookvoice/audio"
	"bookvoice/tts"
	"bookvoice/tts/ttstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeParagraphs = "First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph here."

func TestGenerateCombined(t *testing.T) {
	engine := ttstest.New("af_heart")
	dir := t.TempDir()
	path := filepath.Join(dir, "01-intro_af_heart.wav")

	res, err := tts.NewGenerator(engine, 25).Generate(context.Background(), threeParagraphs, "af_heart", tts.Output{
		Combined: path,
		Combine:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Segments)
	assert.Equal(t, []string{path}, res.Files)
	assert.InDelta(t, 3*ttstest.SegmentSeconds, res.Seconds, 1e-9)
	assert.Len(t, engine.Calls(), 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	d, err := audio.Duration(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, d, 1e-9)
}

func TestGenerateSegments(t *testing.T) {
	engine := ttstest.New("af_heart")
	dir := t.TempDir()

	res, err := tts.NewGenerator(engine, 25).Generate(context.Background(), threeParagraphs, "af_heart", tts.Output{
		Combined: filepath.Join(dir, "x.wav"),
		Segment:  func(i int) string { return filepath.Join(dir, fmt.Sprintf("x_%03d.wav", i)) },
	})
	require.NoError(t, err)
	require.Len(t, res.Files, 3)
	assert.Equal(t, filepath.Join(dir, "x_000.wav"), res.Files[0])
	for _, f := range res.Files {
		assert.FileExists(t, f)
	}
	assert.NoFileExists(t, filepath.Join(dir, "x.wav"))
}

func TestGenerateOverwrites(t *testing.T) {
	engine := ttstest.New("af_heart")
	dir := t.TempDir()
	out := tts.Output{Combined: filepath.Join(dir, "a.wav"), Combine: true}
	g := tts.NewGenerator(engine, 1000)

	_, err := g.Generate(context.Background(), "one", "af_heart", out)
	require.NoError(t, err)
	_, err = g.Generate(context.Background(), "two", "af_heart", out)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.wav", entries[0].Name())
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	out := tts.Output{Combined: filepath.Join(dir, "a.wav"), Combine: true}

	t.Run("empty text", func(t *testing.T) {
		_, err := tts.NewGenerator(ttstest.New(), 100).Generate(context.Background(), "  \n", "v", out)
		assert.ErrorIs(t, err, tts.ErrEmptyText)
	})

	t.Run("engine failure leaves no file", func(t *testing.T) {
		engine := ttstest.New()
		engine.FailText = "Third"
		_, err := tts.NewGenerator(engine, 25).Generate(context.Background(), threeParagraphs, "v", out)
		assert.ErrorIs(t, err, ttstest.ErrSynthesis)
		assert.Contains(t, err.Error(), "segment 3/3")
		assert.NoFileExists(t, out.Combined)
	})

	t.Run("bad format", func(t *testing.T) {
		bad := out
		bad.Format = "ogg"
		_, err := tts.NewGenerator(ttstest.New(), 100).Generate(context.Background(), "text", "v", bad)
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := tts.NewGenerator(ttstest.New(), 100).Generate(ctx, "text", "v", out)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidateVoices(t *testing.T) {
	engine := ttstest.New("af_heart", "af_bella")
	ctx := context.Background()

	assert.NoError(t, tts.ValidateVoices(ctx, engine, "af_bella"))
	err := tts.ValidateVoices(ctx, engine, "af_heart", "nobody")
	assert.ErrorIs(t, err, tts.ErrUnknownVoice)
	assert.True(t, strings.Contains(err.Error(), "nobody"))

	// engines that cannot list voices accept anything
	assert.NoError(t, tts.ValidateVoices(ctx, ttstest.New(), "anything"))
}
