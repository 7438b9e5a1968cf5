// Package ttstest provides an in-memory speech engine for tests.
package ttstest

import (
	"context"
	"errors"
	"strings"
	"sync"

	"bookvoice/audio"
	"bookvoice/tts"
)

const (
	SampleRate = 8000
	// SegmentSeconds is the length of the audio returned for every call.
	SegmentSeconds = 0.5
)

var ErrSynthesis = errors.New("synthesis failed")

type Call struct {
	Text  string
	Voice string
}

// Engine returns half a second of silence per call and records what it was asked.
type Engine struct {
	VoiceList []tts.Voice
	// FailVoices makes every call with these voices fail.
	FailVoices map[string]bool
	// FailText makes calls whose text contains it fail.
	FailText string

	mu    sync.Mutex
	calls []Call
}

func New(voices ...string) *Engine {
	e := &Engine{FailVoices: map[string]bool{}}
	for _, v := range voices {
		e.VoiceList = append(e.VoiceList, tts.Voice{Name: v, Description: "test voice " + v})
	}
	return e
}

func (e *Engine) Name() string { return "fake" }

func (e *Engine) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	e.mu.Lock()
	e.calls = append(e.calls, Call{Text: text, Voice: voice})
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.FailVoices[voice] || (e.FailText != "" && strings.Contains(text, e.FailText)) {
		return nil, ErrSynthesis
	}
	return audio.Silence(SegmentSeconds, SampleRate), nil
}

func (e *Engine) Voices(ctx context.Context) ([]tts.Voice, error) {
	return e.VoiceList, nil
}

func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}
