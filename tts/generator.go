package tts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"bookvoice/audio"
	"bookvoice/text"
	"bookvoice/utils"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("no text to synthesize")

// Output says where generated audio goes.
type Output struct {
	// Combined is the single-file path used when segments are joined.
	Combined string
	// Segment returns the path of segment i (0-based) when they are not.
	Segment func(i int) string
	Combine bool
	Format  string
}

type Result struct {
	Files    []string
	Segments int
	Seconds  float64
}

// Generator splits text into engine-sized segments and writes the audio.
type Generator struct {
	Engine   Synthesizer
	MaxChars int
}

func NewGenerator(engine Synthesizer, maxChars int) *Generator {
	return &Generator{Engine: engine, MaxChars: maxChars}
}

func (g *Generator) Generate(ctx context.Context, input, voice string, out Output) (*Result, error) {
	if out.Format == "" {
		out.Format = audio.FormatWAV
	}
	if err := audio.ValidateFormat(out.Format); err != nil {
		return nil, err
	}
	segments := text.Segments(input, g.MaxChars)
	if len(segments) == 0 {
		return nil, ErrEmptyText
	}

	parts := make([][]byte, 0, len(segments))
	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		slog.Debug("synthesizing segment", "engine", g.Engine.Name(), "voice", voice, "segment", i+1, "of", len(segments), "chars", len(seg))
		data, err := g.Engine.Synthesize(ctx, seg, voice)
		if err != nil {
			return nil, fmt.Errorf("segment %d/%d: %w", i+1, len(segments), err)
		}
		parts = append(parts, data)
	}

	res := &Result{Segments: len(segments)}
	if out.Combine || out.Segment == nil {
		joined, err := audio.Concat(parts)
		if err != nil {
			return nil, fmt.Errorf("failed to combine segments: %w", err)
		}
		if res.Seconds, err = audio.Duration(joined); err != nil {
			return nil, err
		}
		if err := writeAudio(out.Combined, joined, out.Format); err != nil {
			return nil, err
		}
		res.Files = []string{out.Combined}
		return res, nil
	}

	for i, data := range parts {
		if d, err := audio.Duration(data); err == nil {
			res.Seconds += d
		}
		path := out.Segment(i)
		if err := writeAudio(path, data, out.Format); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
	}
	return res, nil
}

// writeAudio stores WAV data at path, transcoding first when format is not wav.
// The final rename replaces any earlier file at path.
func writeAudio(path string, wav []byte, format string) error {
	if format == audio.FormatWAV {
		return utils.WriteFileAtomic(path, wav)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	stem := "." + strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "." + uuid.NewString()
	src := filepath.Join(dir, stem+".wav")
	dst := filepath.Join(dir, stem+"."+format)
	if err := os.WriteFile(src, wav, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	defer os.Remove(src)
	if err := audio.Transcode(src, dst, format); err != nil {
		return err
	}
	if err := os.Rename(dst, path); err != nil {
		os.Remove(dst)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
