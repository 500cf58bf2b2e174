package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}
func (nopLogger) Debug(string)                                          {}

func TestSynthesizeSendsGatewayContract(t *testing.T) {
	var got synthesizeRequestBody

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	fetcher := NewContentFetcher(nopLogger{}, 5*time.Second)
	synth := NewEdgeSpeechSynthesizer(fetcher, &config.SynthesizerConfig{
		ApiUrl: srv.URL,
		ApiKey: "secret",
	}, nopLogger{})

	audio, err := synth.Synthesize(context.Background(), outbound.SynthesizeRequest{
		Text:  "Hello world",
		Voice: "en-US-AriaNeural",
		Rate:  "+20%",
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "Hello world", got.Text)
	assert.Equal(t, "en-US-AriaNeural", got.Voice)
	assert.Equal(t, "+20%", got.Rate)
}

func TestSynthesizeOmitsAuthorizationWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	fetcher := NewContentFetcher(nopLogger{}, 5*time.Second)
	synth := NewEdgeSpeechSynthesizer(fetcher, &config.SynthesizerConfig{ApiUrl: srv.URL}, nopLogger{})

	_, err := synth.Synthesize(context.Background(), outbound.SynthesizeRequest{
		Text: "Hi", Voice: "en-US-GuyNeural", Rate: "+0%",
	})
	assert.NoError(t, err)
}

func TestSynthesizeFailsOnGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "voice not available", http.StatusBadGateway)
	}))
	defer srv.Close()

	fetcher := NewContentFetcher(nopLogger{}, 5*time.Second)
	synth := NewEdgeSpeechSynthesizer(fetcher, &config.SynthesizerConfig{ApiUrl: srv.URL}, nopLogger{})

	_, err := synth.Synthesize(context.Background(), outbound.SynthesizeRequest{
		Text: "Hi", Voice: "en-US-GuyNeural", Rate: "+0%",
	})
	assert.Error(t, err)
}
