package dto

type GenerateClipResponse struct {
	VideoUrl   string `json:"video_url"`
	DurationMs int64  `json:"duration_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type VoicesResponse struct {
	Voices []string `json:"voices"`
}
