package services

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Info(string)                                       {}
func (nopLogger) InfoWithFields(string, map[string]interface{})     {}
func (nopLogger) Error(error, string)                               {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Warn(string)                                       {}
func (nopLogger) WarnWithFields(string, map[string]interface{})     {}
func (nopLogger) Debug(string)                                      {}

// fakeSynthesizer counts calls and echoes the text back so clips stay
// distinguishable. failOn, when non-empty, fails that exact text.
type fakeSynthesizer struct {
	calls  atomic.Int64
	failOn string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeRequest) ([]byte, error) {
	f.calls.Add(1)
	if f.failOn != "" && req.Text == f.failOn {
		return nil, fmt.Errorf("voice service unavailable")
	}
	return []byte("encoded:" + req.Text), nil
}

// fakeDecoder produces durationMs(text) milliseconds of PCM, every
// sample byte set to a marker derived from the first text character.
type fakeDecoder struct {
	durations map[string]int64
}

func (f *fakeDecoder) DecodePCM(_ context.Context, encoded []byte) ([]byte, error) {
	text := string(encoded[len("encoded:"):])
	ms, ok := f.durations[text]
	if !ok {
		ms = 100
	}
	pcm := make([]byte, domain.SamplesForMs(ms)*domain.FrameBytes)
	for i := range pcm {
		pcm[i] = text[0]
	}
	return pcm, nil
}

// fakeEncoder records the compose request, snapshots the timeline PCM
// before run cleanup deletes it, and fabricates the output file so
// promotion has something to move.
type fakeEncoder struct {
	requests    []outbound.ComposeVideoRequest
	capturedPCM [][]byte
	fail        bool
}

func (f *fakeEncoder) Compose(_ context.Context, req outbound.ComposeVideoRequest) error {
	f.requests = append(f.requests, req)
	pcm, err := os.ReadFile(req.AudioPCMPath)
	if err != nil {
		return err
	}
	f.capturedPCM = append(f.capturedPCM, pcm)
	if f.fail {
		return domain.NewError(domain.EncodingFailed, "muxing video artifact")
	}
	return os.WriteFile(req.OutputPath, []byte("mp4"), 0o644)
}

// goDispatcher runs every task on its own goroutine, standing in for
// the shared ants pool.
type goDispatcher struct{}

func (goDispatcher) Submit(task func()) error {
	go task()
	return nil
}
