package outbound

import "context"

// SynthesizeRequest carries the narrow contract of the external
// text-to-speech capability. Rate is a signed integral percentage
// deviation from normal speed, e.g. "+50%" or "-20%".
type SynthesizeRequest struct {
	Text  string
	Voice string
	Rate  string
}

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error)
}
