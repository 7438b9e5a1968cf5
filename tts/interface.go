// Package tts talks to local speech engines and turns chapter text into audio files.
package tts

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEngine = errors.New("unknown tts engine")
	ErrUnknownVoice  = errors.New("unknown voice")
)

type Voice struct {
	Name        string
	Description string
}

// Synthesizer converts text to WAV audio with a named voice.
type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
	Voices(ctx context.Context) ([]Voice, error)
}

// ValidateVoices checks every name against the engine's voice list.
func ValidateVoices(ctx context.Context, s Synthesizer, names ...string) error {
	voices, err := s.Voices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s voices: %w", s.Name(), err)
	}
	if len(voices) == 0 {
		return nil
	}
	known := make(map[string]bool, len(voices))
	for _, v := range voices {
		known[v.Name] = true
	}
	var unknown []string
	for _, n := range names {
		if !known[n] {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s (available: %s)", ErrUnknownVoice, strings.Join(unknown, ", "), strings.Join(VoiceNames(voices), ", "))
	}
	return nil
}

func VoiceNames(voices []Voice) []string {
	names := make([]string, len(voices))
	for i, v := range voices {
		names[i] = v.Name
	}
	return names
}
