package audio

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWAV(t *testing.T) {
	w, err := ParseWAV(Silence(1.5, 8000))
	require.NoError(t, err)
	assert.Equal(t, uint16(1), w.Format.Channels)
	assert.Equal(t, uint32(8000), w.Format.SampleRate)
	assert.Len(t, w.Data, 24000)
	assert.InDelta(t, 1.5, w.Seconds(), 1e-9)

	_, err = ParseWAV([]byte("ID3 not a wav"))
	assert.ErrorIs(t, err, ErrNotWAV)
}

func TestParseWAVWithPlaceholderSize(t *testing.T) {
	b := Silence(1, 8000)
	// streamed responses carry 0xFFFFFFFF as the data size
	copy(b[40:44], []byte{0xff, 0xff, 0xff, 0xff})

	d, err := Duration(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

func TestConcat(t *testing.T) {
	joined, err := Concat([][]byte{Silence(1, 8000), Silence(0.5, 8000), Silence(0.25, 8000)})
	require.NoError(t, err)

	d, err := Duration(joined)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, d, 1e-9)

	_, err = Concat([][]byte{Silence(1, 8000), Silence(1, 16000)})
	assert.ErrorIs(t, err, ErrFormatMismatch)

	_, err = Concat(nil)
	assert.Error(t, err)
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, ValidateFormat("wav"))
	assert.NoError(t, ValidateFormat("mp3"))
	assert.Error(t, ValidateFormat("flac"))
}

func TestTranscode(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	dir := t.TempDir()
	src := filepath.Join(dir, "in.wav")
	dst := filepath.Join(dir, "out.mp3")
	require.NoError(t, os.WriteFile(src, Silence(1, 16000), 0644))

	require.NoError(t, Transcode(src, dst, FormatMP3))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
