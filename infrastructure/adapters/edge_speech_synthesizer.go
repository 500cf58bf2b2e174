package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/config"
)

// edgeSpeechSynthesizer talks to an edge-tts compatible HTTP gateway:
// POST {text, voice, rate} -> audio/mpeg bytes.
type edgeSpeechSynthesizer struct {
	ContentFetcher
	logger outbound.LoggerPort
	cfg    *config.SynthesizerConfig
}

type synthesizeRequestBody struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
	Rate  string `json:"rate"`
}

func NewEdgeSpeechSynthesizer(contentFetcher ContentFetcher, cfg *config.SynthesizerConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &edgeSpeechSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		cfg:            cfg,
	}
}

func (s *edgeSpeechSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeRequest) ([]byte, error) {
	httpReq, err := s.getRequest(ctx, req)
	if err != nil {
		s.logger.ErrorWithFields(err, "failed to build synthesis request", map[string]interface{}{
			"voice": req.Voice,
			"rate":  req.Rate,
		})
		return nil, err
	}

	return s.FetchContent(httpReq)
}

func (s *edgeSpeechSynthesizer) getRequest(ctx context.Context, req outbound.SynthesizeRequest) (*http.Request, error) {
	payload, err := json.Marshal(synthesizeRequestBody{
		Text:  req.Text,
		Voice: req.Voice,
		Rate:  req.Rate,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ApiUrl, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")
	if s.cfg.ApiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.cfg.ApiKey)
	}

	return httpReq, nil
}
