package services

import (
	"context"
	"testing"

	"github.com/SyedAhtsham/vistavoice-deployment/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateAdjustment(t *testing.T) {
	cases := []struct {
		speed float64
		want  string
	}{
		{0.5, "-50%"},
		{0.8, "-20%"},
		{1.0, "+0%"},
		{1.2, "+20%"},
		{1.5, "+50%"},
		{2.0, "+100%"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RateAdjustment(c.speed), "speed %v", c.speed)
	}
}

func TestRenderProducesMillisecondAlignedClip(t *testing.T) {
	synth := &fakeSynthesizer{}
	decoder := &fakeDecoder{durations: map[string]int64{"Hello": 730}}
	renderer := NewSegmentRenderer(nopLogger{}, synth, decoder, goDispatcher{})

	clip, err := renderer.Render(context.Background(), domain.NewNarrationSegment("Hello", "en-US-AriaNeural", 1.5, 3))
	require.NoError(t, err)

	assert.Equal(t, 3, clip.Ordinal)
	assert.Equal(t, int64(730), clip.DurationMs)
	assert.Zero(t, len(clip.PCM)%domain.BytesPerMs)
}

func TestRenderRejectsInvalidSegmentBeforeSynthesis(t *testing.T) {
	synth := &fakeSynthesizer{}
	renderer := NewSegmentRenderer(nopLogger{}, synth, &fakeDecoder{}, goDispatcher{})

	segments := []domain.NarrationSegment{
		domain.NewNarrationSegment("", "en-US-AriaNeural", 1.0, 0),
		domain.NewNarrationSegment("Hello", "klingon", 1.0, 0),
		domain.NewNarrationSegment("Hello", "en-US-AriaNeural", 2.5, 0),
	}
	for _, segment := range segments {
		_, err := renderer.Render(context.Background(), segment)
		assert.True(t, domain.IsKind(err, domain.InvalidSegment))
	}
	assert.Zero(t, synth.calls.Load(), "no synthesis call may be issued for invalid segments")
}

func TestRenderWrapsSynthesizerFailure(t *testing.T) {
	synth := &fakeSynthesizer{failOn: "Hello"}
	renderer := NewSegmentRenderer(nopLogger{}, synth, &fakeDecoder{}, goDispatcher{})

	_, err := renderer.Render(context.Background(), domain.NewNarrationSegment("Hello", "en-US-AriaNeural", 1.0, 0))
	assert.True(t, domain.IsKind(err, domain.SynthesisFailed))
}

type failingDecoder struct{}

func (failingDecoder) DecodePCM(context.Context, []byte) ([]byte, error) {
	return nil, assert.AnError
}

func TestRenderWrapsDecodeFailure(t *testing.T) {
	renderer := NewSegmentRenderer(nopLogger{}, &fakeSynthesizer{}, failingDecoder{}, goDispatcher{})

	_, err := renderer.Render(context.Background(), domain.NewNarrationSegment("Hello", "en-US-AriaNeural", 1.0, 0))
	assert.True(t, domain.IsKind(err, domain.SynthesisFailed))
}

func TestRenderAllDeliversEveryOrdinal(t *testing.T) {
	decoder := &fakeDecoder{durations: map[string]int64{"a": 50, "b": 70, "c": 90}}
	renderer := NewSegmentRenderer(nopLogger{}, &fakeSynthesizer{}, decoder, goDispatcher{})

	segments := []domain.NarrationSegment{
		domain.NewNarrationSegment("a", "en-US-AriaNeural", 1.0, 0),
		domain.NewNarrationSegment("b", "en-US-GuyNeural", 1.0, 1),
		domain.NewNarrationSegment("c", "fr-FR-DeniseNeural", 1.0, 2),
	}

	clipCh, errCh := renderer.RenderAll(context.Background(), segments)

	got := make(map[int]int64)
	for clip := range clipCh {
		got[clip.Ordinal] = clip.DurationMs
	}
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, map[int]int64{0: 50, 1: 70, 2: 90}, got)
}

func TestRenderAllStopsOnFirstFailure(t *testing.T) {
	synth := &fakeSynthesizer{failOn: "b"}
	renderer := NewSegmentRenderer(nopLogger{}, synth, &fakeDecoder{}, goDispatcher{})

	segments := []domain.NarrationSegment{
		domain.NewNarrationSegment("a", "en-US-AriaNeural", 1.0, 0),
		domain.NewNarrationSegment("b", "en-US-AriaNeural", 1.0, 1),
	}

	clipCh, errCh := renderer.RenderAll(context.Background(), segments)

	for range clipCh {
	}
	var failure error
	for err := range errCh {
		if err != nil {
			failure = err
		}
	}

	assert.True(t, domain.IsKind(failure, domain.SynthesisFailed))
}
