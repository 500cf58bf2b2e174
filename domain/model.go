package domain

// Canonical PCM format every rendered clip is normalized to before
// assembly: 24 kHz mono signed 16-bit little-endian. 24 kHz divides
// evenly into milliseconds, so ms<->sample conversions are exact.
const (
	SampleRate     = 24000
	Channels       = 1
	BytesPerSample = 2

	FrameBytes   = Channels * BytesPerSample
	SamplesPerMs = SampleRate / 1000
	BytesPerMs   = SamplesPerMs * FrameBytes
)

// Voices is the fixed catalog of supported synthetic speakers.
var Voices = []string{
	"en-US-AriaNeural", "en-US-GuyNeural", "en-US-JennyNeural", "en-US-ChristopherNeural",
	"es-MX-DaliaNeural", "es-MX-JorgeNeural", "es-US-PalomaNeural", "es-US-AlonsoNeural",
	"fr-FR-DeniseNeural", "fr-FR-HenriNeural",
}

var voiceSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(Voices))
	for _, v := range Voices {
		s[v] = struct{}{}
	}
	return s
}()

func VoiceSupported(voice string) bool {
	_, ok := voiceSet[voice]
	return ok
}

const (
	MinSpeed = 0.5
	MaxSpeed = 2.0
)

func NewNarrationSegment(text string, voice string, speed float64, ordinal int) NarrationSegment {
	return NarrationSegment{
		Text:    text,
		Voice:   voice,
		Speed:   speed,
		Ordinal: ordinal,
	}
}

// NarrationSegment is one unit of narration. Ordinal is the position in
// the incoming request and therefore the playback position.
type NarrationSegment struct {
	Text    string
	Voice   string
	Speed   float64
	Ordinal int
}

// RenderedClip is one synthesized segment decoded to the canonical PCM
// format. Its byte length is always a whole number of milliseconds.
type RenderedClip struct {
	PCM        []byte
	DurationMs int64
	Ordinal    int
}

// SilenceSpec holds the configured gap durations, applied uniformly:
// BeforeMs ahead of the first clip, BetweenMs between each pair,
// AfterMs behind the last.
type SilenceSpec struct {
	BeforeMs  int64
	BetweenMs int64
	AfterMs   int64
}

type SpanKind string

const (
	SpeechSpan  SpanKind = "speech"
	SilenceSpan SpanKind = "silence"
)

// Span is one contiguous slice of the assembled timeline. Ordinal is
// the source segment position for speech spans and -1 for silence.
type Span struct {
	Kind       SpanKind
	Ordinal    int
	DurationMs int64
}

// Timeline is the fully assembled voiceover track: gapless canonical
// PCM plus the span layout it was built from.
type Timeline struct {
	PCM             []byte
	Spans           []Span
	TotalDurationMs int64
}

// VisualSource is the static image backing the whole video.
type VisualSource struct {
	Path     string
	BaseName string
}

// CompositeArtifact is the finished video handed to the serving layer.
type CompositeArtifact struct {
	FileName   string
	DurationMs int64
}

// SamplesForMs converts a duration to a sample count, truncating.
func SamplesForMs(ms int64) int64 {
	return ms * SampleRate / 1000
}

// PCMDurationMs converts a canonical PCM byte count to milliseconds,
// truncating.
func PCMDurationMs(byteLen int) int64 {
	samples := int64(byteLen / FrameBytes)
	return samples * 1000 / SampleRate
}
