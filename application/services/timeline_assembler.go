package services

import (
	"fmt"
	"sort"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/inbound"
	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type timelineAssembler struct {
	logger outbound.LoggerPort
}

func NewTimelineAssembler(logger outbound.LoggerPort) inbound.TimelineAssemblerPort {
	return &timelineAssembler{
		logger: logger,
	}
}

// Assemble lays out silence.Before, then each clip in ordinal order
// followed by silence.Between (or silence.After behind the last one),
// as one continuous canonical-PCM track. Every span sits on a whole
// millisecond, so TotalDurationMs is the exact sum of its parts.
func (a *timelineAssembler) Assemble(clips []domain.RenderedClip, silence domain.SilenceSpec) (domain.Timeline, error) {
	if len(clips) == 0 {
		return domain.Timeline{}, domain.NewError(domain.AssemblyFailed, "no rendered clips to assemble")
	}
	if err := domain.ValidateSilence(silence); err != nil {
		return domain.Timeline{}, err
	}

	ordered := make([]domain.RenderedClip, len(clips))
	copy(ordered, clips)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Ordinal < ordered[j].Ordinal
	})

	for _, clip := range ordered {
		if len(clip.PCM)%domain.BytesPerMs != 0 {
			return domain.Timeline{}, domain.NewError(domain.AssemblyFailed,
				fmt.Sprintf("clip %d is not aligned to the canonical frame size", clip.Ordinal))
		}
	}

	var (
		pcm   []byte
		spans []domain.Span
	)

	appendSilence := func(ms int64) {
		if ms <= 0 {
			return
		}
		pcm = append(pcm, make([]byte, domain.SamplesForMs(ms)*domain.FrameBytes)...)
		spans = append(spans, domain.Span{Kind: domain.SilenceSpan, Ordinal: -1, DurationMs: ms})
	}

	appendSilence(silence.BeforeMs)
	for i, clip := range ordered {
		pcm = append(pcm, clip.PCM...)
		spans = append(spans, domain.Span{Kind: domain.SpeechSpan, Ordinal: clip.Ordinal, DurationMs: clip.DurationMs})
		if i < len(ordered)-1 {
			appendSilence(silence.BetweenMs)
		} else {
			appendSilence(silence.AfterMs)
		}
	}

	total := domain.PCMDurationMs(len(pcm))
	a.logger.InfoWithFields("timeline assembled", map[string]interface{}{
		"clips":             len(ordered),
		"total_duration_ms": total,
	})

	return domain.Timeline{
		PCM:             pcm,
		Spans:           spans,
		TotalDurationMs: total,
	}, nil
}
