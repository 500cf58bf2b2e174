package inbound

import (
	"context"

	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type RunClipPipelineParams struct {
	RunID    string
	WorkDir  string
	Visual   domain.VisualSource
	Segments []domain.NarrationSegment
	Silence  domain.SilenceSpec
	FadeIn   bool
	FadeOut  bool
}

type ClipPipelineResult struct {
	Artifact domain.CompositeArtifact
}

// ClipPipelinePort runs one whole image-plus-narration request to a
// finished video artifact. The run owns WorkDir (including the uploaded
// visual copy inside it) and removes it on every exit path.
type ClipPipelinePort interface {
	Run(ctx context.Context, params RunClipPipelineParams) (*ClipPipelineResult, error)
}
