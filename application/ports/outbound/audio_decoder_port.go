package outbound

import "context"

// AudioDecoderPort normalizes an encoded audio clip to the canonical
// PCM format defined in the domain package.
type AudioDecoderPort interface {
	DecodePCM(ctx context.Context, encoded []byte) ([]byte, error)
}
