package tts

import (
	"context"
	"fmt"
	"log/slog"

	"bookvoice/audio"
	"bookvoice/config"
	"bookvoice/utils"

	"github.com/go-resty/resty/v2"
)

// KokoroEngine calls a Kokoro-FastAPI server through its OpenAI compatible speech endpoint.
type KokoroEngine struct {
	client *resty.Client
	model  string
	speed  float64
}

type speechRequest struct {
	Model          string  `json:"model"`
	Input          string  `json:"input"`
	Voice          string  `json:"voice"`
	ResponseFormat string  `json:"response_format"`
	Speed          float64 `json:"speed"`
}

type voicesResponse struct {
	Voices []string `json:"voices"`
}

func NewKokoroEngine(cfg *config.Config) *KokoroEngine {
	return &KokoroEngine{
		client: utils.NewRestyClient(cfg.KokoroURL, cfg.RequestTimeout, cfg.RetryCount),
		model:  cfg.KokoroModel,
		speed:  cfg.KokoroSpeed,
	}
}

func (e *KokoroEngine) Name() string { return string(EngineKokoro) }

func (e *KokoroEngine) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		SetHeader("Accept", "audio/wav").
		SetBody(speechRequest{
			Model:          e.model,
			Input:          text,
			Voice:          voice,
			ResponseFormat: "wav",
			Speed:          e.speed,
		}).
		Post("/v1/audio/speech")
	if err != nil {
		return nil, fmt.Errorf("kokoro: failed to request speech: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("kokoro: server returned %s: %s", resp.Status(), truncate(resp.String(), 200))
	}
	data := resp.Body()
	if _, err := audio.ParseWAV(data); err != nil {
		return nil, fmt.Errorf("kokoro: unexpected response: %w", err)
	}
	return data, nil
}

// Voices asks the server for its voices, falling back to the built-in list
// when the server does not answer.
func (e *KokoroEngine) Voices(ctx context.Context) ([]Voice, error) {
	var out voicesResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetResult(&out).
		ForceContentType("application/json").
		Get("/v1/audio/voices")
	if err != nil || resp.IsError() || len(out.Voices) == 0 {
		slog.Debug("kokoro voice list unavailable, using built-in list", "error", err)
		return append([]Voice(nil), kokoroVoices...), nil
	}
	voices := make([]Voice, 0, len(out.Voices))
	for _, name := range out.Voices {
		voices = append(voices, Voice{Name: name, Description: describe(name)})
	}
	return voices, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
