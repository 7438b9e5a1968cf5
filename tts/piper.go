package tts

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"bookvoice/config"

	"github.com/google/uuid"
)

// PiperEngine runs the piper binary once per segment. A voice is the name of
// an .onnx model in the voices directory.
type PiperEngine struct {
	bin       string
	voicesDir string
}

func NewPiperEngine(cfg *config.Config) *PiperEngine {
	return &PiperEngine{bin: cfg.PiperBin, voicesDir: cfg.PiperVoicesDir}
}

func (e *PiperEngine) Name() string { return string(EnginePiper) }

func (e *PiperEngine) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	model := filepath.Join(e.voicesDir, voice+".onnx")
	if _, err := os.Stat(model); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVoice, voice)
	}
	out := filepath.Join(os.TempDir(), fmt.Sprintf("piper-%s.wav", uuid.NewString()))
	defer os.Remove(out)

	cmd := exec.CommandContext(ctx, e.bin, "--model", model, "--output_file", out)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("piper: %w", ctx.Err())
		}
		return nil, fmt.Errorf("piper: failed to synthesize: %w, output: %s", err, truncate(stderr.String(), 200))
	}
	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("piper: failed to read output: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("piper: generated empty file")
	}
	return data, nil
}

func (e *PiperEngine) Voices(ctx context.Context) ([]Voice, error) {
	matches, err := filepath.Glob(filepath.Join(e.voicesDir, "*.onnx"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	voices := make([]Voice, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(filepath.Base(m), ".onnx")
		voices = append(voices, Voice{Name: name, Description: "piper model " + filepath.Base(m)})
	}
	return voices, nil
}
