package domain

import (
	"fmt"
	"strings"
)

// ValidateSegment enforces the per-segment rules before any synthesis
// work is spent on it: non-blank text, a cataloged voice, and a speed
// inside [MinSpeed, MaxSpeed].
func ValidateSegment(segment NarrationSegment) error {
	if strings.TrimSpace(segment.Text) == "" {
		return NewError(InvalidSegment, fmt.Sprintf("segment %d has blank text", segment.Ordinal))
	}
	if !VoiceSupported(segment.Voice) {
		return NewError(InvalidSegment, fmt.Sprintf("segment %d uses unknown voice %q", segment.Ordinal, segment.Voice))
	}
	if segment.Speed < MinSpeed || segment.Speed > MaxSpeed {
		return NewError(InvalidSegment, fmt.Sprintf("segment %d speed %.2f outside [%.1f, %.1f]", segment.Ordinal, segment.Speed, MinSpeed, MaxSpeed))
	}
	return nil
}

// ValidateSilence rejects negative gap durations.
func ValidateSilence(silence SilenceSpec) error {
	if silence.BeforeMs < 0 || silence.BetweenMs < 0 || silence.AfterMs < 0 {
		return NewError(MalformedRequest, "silence durations must be non-negative")
	}
	return nil
}
