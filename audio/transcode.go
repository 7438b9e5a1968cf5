package audio

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

const (
	FormatWAV = "wav"
	FormatMP3 = "mp3"
)

var encoderArgs = map[string]ffmpeg.KwArgs{
	FormatMP3: {"c:a": "libmp3lame", "q:a": 2},
}

// ValidateFormat reports whether format can be produced.
func ValidateFormat(format string) error {
	if format == FormatWAV {
		return nil
	}
	if _, ok := encoderArgs[format]; ok {
		return nil
	}
	return fmt.Errorf("unsupported audio format %q (use wav or mp3)", format)
}

// Transcode encodes the WAV file src into dst using ffmpeg.
func Transcode(src, dst, format string) error {
	args, ok := encoderArgs[format]
	if !ok {
		return fmt.Errorf("unsupported audio format %q", format)
	}
	var stderr bytes.Buffer
	err := ffmpeg.Input(src).
		Output(dst, args).
		OverWriteOutput().
		WithErrorOutput(&stderr).
		Run()
	if err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to transcode to %s: %w: %s", format, err, lastLine(stderr.String()))
	}
	return nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
