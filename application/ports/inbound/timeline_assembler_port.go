package inbound

import "github.com/SyedAhtsham/vistavoice-deployment/domain"

// TimelineAssemblerPort concatenates rendered clips and configured
// silence into one continuous audio track. Clips are laid out strictly
// by ordinal regardless of slice order.
type TimelineAssemblerPort interface {
	Assemble(clips []domain.RenderedClip, silence domain.SilenceSpec) (domain.Timeline, error)
}
