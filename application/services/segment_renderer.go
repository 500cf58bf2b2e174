package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/inbound"
	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type segmentRenderer struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SpeechSynthesizerPort
	decoder     outbound.AudioDecoderPort
	workerPool  outbound.TaskDispatcher
}

func NewSegmentRenderer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	decoder outbound.AudioDecoderPort, workerPool outbound.TaskDispatcher) inbound.SegmentRendererPort {
	return &segmentRenderer{
		logger:      logger,
		synthesizer: synthesizer,
		decoder:     decoder,
		workerPool:  workerPool,
	}
}

// RateAdjustment maps a playback speed to the signed percentage the
// synthesis capability accepts: 1.5 -> "+50%", 0.5 -> "-50%", 1.0 -> "+0%".
func RateAdjustment(speed float64) string {
	return fmt.Sprintf("%+.0f%%", (speed-1)*100)
}

func (r *segmentRenderer) Render(ctx context.Context, segment domain.NarrationSegment) (domain.RenderedClip, error) {
	if err := domain.ValidateSegment(segment); err != nil {
		return domain.RenderedClip{}, err
	}

	encoded, err := r.synthesizer.Synthesize(ctx, outbound.SynthesizeRequest{
		Text:  segment.Text,
		Voice: segment.Voice,
		Rate:  RateAdjustment(segment.Speed),
	})
	if err != nil {
		r.logger.ErrorWithFields(err, "speech synthesis failed", map[string]interface{}{
			"ordinal": segment.Ordinal,
			"voice":   segment.Voice,
		})
		return domain.RenderedClip{}, domain.WrapError(domain.SynthesisFailed,
			fmt.Sprintf("synthesizing segment %d", segment.Ordinal), err)
	}

	pcm, err := r.decoder.DecodePCM(ctx, encoded)
	if err != nil {
		r.logger.ErrorWithFields(err, "decoding synthesized audio failed", map[string]interface{}{
			"ordinal": segment.Ordinal,
		})
		return domain.RenderedClip{}, domain.WrapError(domain.SynthesisFailed,
			fmt.Sprintf("decoding segment %d", segment.Ordinal), err)
	}

	pcm = padToMillisecond(pcm)

	return domain.RenderedClip{
		PCM:        pcm,
		DurationMs: domain.PCMDurationMs(len(pcm)),
		Ordinal:    segment.Ordinal,
	}, nil
}

// padToMillisecond appends trailing zero samples until the clip length
// is a whole number of milliseconds. Keeping every clip on a ms
// boundary makes the timeline total the exact sum of its parts.
func padToMillisecond(pcm []byte) []byte {
	if rem := len(pcm) % domain.BytesPerMs; rem != 0 {
		pcm = append(pcm, make([]byte, domain.BytesPerMs-rem)...)
	}
	return pcm
}

func (r *segmentRenderer) RenderAll(ctx context.Context, segments []domain.NarrationSegment) (<-chan domain.RenderedClip, <-chan error) {
	out := make(chan domain.RenderedClip)
	errCh := make(chan error, len(segments)+1)

	newCtx, cancel := context.WithCancel(ctx)

	err := r.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		defer cancel()

		var wg sync.WaitGroup

		for _, segment := range segments {
			segment := segment
			wg.Add(1)
			err := r.workerPool.Submit(func() {
				defer wg.Done()
				select {
				case <-newCtx.Done():
					return
				default:
				}
				clip, err := r.Render(newCtx, segment)
				if err != nil {
					errCh <- err
					cancel()
					return
				}
				select {
				case out <- clip:
				case <-newCtx.Done():
				}
			})
			if err != nil {
				wg.Done()
				errCh <- err
				cancel()
			}
		}

		wg.Wait()
	})
	if err != nil {
		errCh <- err
		cancel()
		close(out)
		close(errCh)
	}

	return out, errCh
}
