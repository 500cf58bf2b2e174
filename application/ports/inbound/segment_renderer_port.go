package inbound

import (
	"context"

	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

// SegmentRendererPort turns validated narration segments into rendered
// speech clips. Render is the synchronous single-segment contract;
// RenderAll fans a whole sequence out over the worker pool, emitting
// clips tagged with their ordinal in whatever order they finish.
type SegmentRendererPort interface {
	Render(ctx context.Context, segment domain.NarrationSegment) (domain.RenderedClip, error)
	RenderAll(ctx context.Context, segments []domain.NarrationSegment) (<-chan domain.RenderedClip, <-chan error)
}
