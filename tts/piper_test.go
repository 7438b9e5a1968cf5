package tts_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"bookvoice/audio"
	"bookvoice/config"
	"bookvoice/tts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePiper writes a shell script that copies a fixed WAV to --output_file.
func fakePiper(t *testing.T) (bin, voicesDir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}
	dir := t.TempDir()
	fixture := filepath.Join(dir, "fixture.wav")
	require.NoError(t, os.WriteFile(fixture, audio.Silence(1, 8000), 0644))

	bin = filepath.Join(dir, "piper")
	script := "#!/bin/sh\n" +
		"while [ $# -gt 0 ]; do\n" +
		"  if [ \"$1\" = \"--output_file\" ]; then out=\"$2\"; fi\n" +
		"  shift\n" +
		"done\n" +
		"cat > /dev/null\n" +
		"cp '" + fixture + "' \"$out\"\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))

	voicesDir = filepath.Join(dir, "voices")
	require.NoError(t, os.MkdirAll(voicesDir, 0755))
	for _, name := range []string{"en_US-lessac-medium.onnx", "en_GB-alba-medium.onnx", "README.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(voicesDir, name), nil, 0644))
	}
	return bin, voicesDir
}

func TestPiperEngine(t *testing.T) {
	bin, voicesDir := fakePiper(t)
	engine := tts.NewPiperEngine(&config.Config{PiperBin: bin, PiperVoicesDir: voicesDir})
	ctx := context.Background()

	voices, err := engine.Voices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en_GB-alba-medium", "en_US-lessac-medium"}, tts.VoiceNames(voices))

	data, err := engine.Synthesize(ctx, "Hello.", "en_US-lessac-medium")
	require.NoError(t, err)
	d, err := audio.Duration(data)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)

	_, err = engine.Synthesize(ctx, "Hello.", "missing")
	assert.ErrorIs(t, err, tts.ErrUnknownVoice)
}
