package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/inbound"
	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type clipPipelineOrchestrator struct {
	logger        outbound.LoggerPort
	renderer      inbound.SegmentRendererPort
	assembler     inbound.TimelineAssemblerPort
	videoEncoder  outbound.VideoEncoderPort
	artifactStore outbound.ArtifactStorePort
	publisher     outbound.ArtifactPublisherPort
}

// NewClipPipelineOrchestrator wires the full request-to-artifact run.
// publisher may be nil; mirroring to remote storage is optional.
func NewClipPipelineOrchestrator(logger outbound.LoggerPort, renderer inbound.SegmentRendererPort,
	assembler inbound.TimelineAssemblerPort, videoEncoder outbound.VideoEncoderPort,
	artifactStore outbound.ArtifactStorePort, publisher outbound.ArtifactPublisherPort) inbound.ClipPipelinePort {
	return &clipPipelineOrchestrator{
		logger:        logger,
		renderer:      renderer,
		assembler:     assembler,
		videoEncoder:  videoEncoder,
		artifactStore: artifactStore,
		publisher:     publisher,
	}
}

func (p *clipPipelineOrchestrator) Run(ctx context.Context, params inbound.RunClipPipelineParams) (*inbound.ClipPipelineResult, error) {
	// The transport layer may have staged the uploaded visual inside
	// WorkDir already, so its cleanup is registered before validation
	// gets a chance to fail the run.
	workDir := params.WorkDir
	if workDir != "" {
		defer p.artifactStore.RemoveScratchDir(workDir)
	}

	if err := p.validate(params); err != nil {
		return nil, err
	}

	if workDir == "" {
		created, err := p.artifactStore.CreateScratchDir(params.RunID)
		if err != nil {
			return nil, domain.WrapError(domain.EncodingFailed, "creating run scratch directory", err)
		}
		workDir = created
		defer p.artifactStore.RemoveScratchDir(workDir)
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	clipCh, renderErrCh := p.renderer.RenderAll(newCtx, params.Segments)
	clips, err := p.collectClips(newCtx, len(params.Segments), clipCh, renderErrCh)
	if err != nil {
		p.logger.Error(err, "segment rendering failed")
		return nil, err
	}

	timeline, err := p.assembler.Assemble(clips, params.Silence)
	if err != nil {
		p.logger.Error(err, "timeline assembly failed")
		return nil, err
	}

	pcmPath := filepath.Join(workDir, "timeline.pcm")
	if err := os.WriteFile(pcmPath, timeline.PCM, 0o600); err != nil {
		p.logger.Error(err, "writing assembled timeline failed")
		return nil, domain.WrapError(domain.AssemblyFailed, "persisting assembled timeline", err)
	}

	artifactName := fmt.Sprintf("%s_%s.mp4", params.Visual.BaseName, params.RunID)
	scratchOut := filepath.Join(workDir, artifactName)

	err = p.videoEncoder.Compose(newCtx, outbound.ComposeVideoRequest{
		ImagePath:    params.Visual.Path,
		AudioPCMPath: pcmPath,
		DurationMs:   timeline.TotalDurationMs,
		FadeIn:       params.FadeIn,
		FadeOut:      params.FadeOut,
		OutputPath:   scratchOut,
	})
	if err != nil {
		p.logger.Error(err, "video composition failed")
		return nil, err
	}

	finalPath, err := p.artifactStore.Promote(scratchOut, artifactName)
	if err != nil {
		p.logger.Error(err, "promoting artifact failed")
		return nil, domain.WrapError(domain.EncodingFailed, "storing finished artifact", err)
	}

	p.mirrorArtifact(newCtx, params.RunID, finalPath, artifactName)

	p.logger.InfoWithFields("clip pipeline finished", map[string]interface{}{
		"run_id":      params.RunID,
		"artifact":    artifactName,
		"duration_ms": timeline.TotalDurationMs,
	})

	return &inbound.ClipPipelineResult{
		Artifact: domain.CompositeArtifact{
			FileName:   artifactName,
			DurationMs: timeline.TotalDurationMs,
		},
	}, nil
}

func (p *clipPipelineOrchestrator) validate(params inbound.RunClipPipelineParams) error {
	if params.Visual.Path == "" {
		return domain.NewError(domain.MalformedRequest, "visual source is required")
	}
	if len(params.Segments) == 0 {
		return domain.NewError(domain.MalformedRequest, "at least one narration segment is required")
	}
	if err := domain.ValidateSilence(params.Silence); err != nil {
		return err
	}
	// Full per-segment validation happens up front so that no synthesis
	// call is issued when any segment of the request is bad.
	for _, segment := range params.Segments {
		if err := domain.ValidateSegment(segment); err != nil {
			return err
		}
	}
	return nil
}

// collectClips drains the renderer fan-out into an ordinal-addressed
// slice, so playback order is request order no matter which segment
// finishes first.
func (p *clipPipelineOrchestrator) collectClips(ctx context.Context, n int,
	clipCh <-chan domain.RenderedClip, errCh <-chan error) ([]domain.RenderedClip, error) {
	clips := make([]domain.RenderedClip, n)
	seen := 0
	for {
		select {
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return nil, err
			}
		case <-ctx.Done():
			return nil, domain.WrapError(domain.SynthesisFailed, "run cancelled", ctx.Err())
		case clip, ok := <-clipCh:
			if !ok {
				if seen != n {
					// Closed early; the buffered error channel holds the cause.
					if errCh != nil {
						if err, open := <-errCh; open && err != nil {
							return nil, err
						}
					}
					return nil, domain.NewError(domain.SynthesisFailed,
						fmt.Sprintf("rendered %d of %d segments", seen, n))
				}
				return clips, nil
			}
			if clip.Ordinal < 0 || clip.Ordinal >= n {
				return nil, domain.NewError(domain.AssemblyFailed,
					fmt.Sprintf("clip ordinal %d outside request range", clip.Ordinal))
			}
			clips[clip.Ordinal] = clip
			seen++
		}
	}
}

// mirrorArtifact is best effort; the local store already holds the
// authoritative copy.
func (p *clipPipelineOrchestrator) mirrorArtifact(ctx context.Context, runID, filePath, fileName string) {
	if p.publisher == nil {
		return
	}
	res, err := p.publisher.Publish(ctx, outbound.PublishArtifactRequest{
		RunID:    runID,
		FilePath: filePath,
		FileName: fileName,
	})
	if err != nil {
		p.logger.WarnWithFields("artifact mirroring failed", map[string]interface{}{
			"run_id": runID,
			"error":  err.Error(),
		})
		return
	}
	p.logger.InfoWithFields("artifact mirrored", map[string]interface{}{
		"run_id": runID,
		"key":    res.ArtifactKey,
		"region": res.StoreRegion,
	})
}
