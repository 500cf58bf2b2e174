package outbound

import "context"

type ComposeVideoRequest struct {
	ImagePath    string
	AudioPCMPath string
	DurationMs   int64
	FadeIn       bool
	FadeOut      bool
	OutputPath   string
}

// VideoEncoderPort muxes a static image with the assembled audio
// timeline into a single playable video file.
type VideoEncoderPort interface {
	Compose(ctx context.Context, req ComposeVideoRequest) error
}
