package tts

import (
	"fmt"

	"bookvoice/config"
)

type EngineType string

const (
	EngineKokoro EngineType = "kokoro"
	EnginePiper  EngineType = "piper"
)

// NewSynthesizer returns the engine registered under name.
func NewSynthesizer(name string, cfg *config.Config) (Synthesizer, error) {
	switch EngineType(name) {
	case EngineKokoro:
		return NewKokoroEngine(cfg), nil
	case EnginePiper:
		return NewPiperEngine(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", ErrUnknownEngine, name, EngineKokoro, EnginePiper)
	}
}
