package dto

import (
	"fmt"
	"strconv"

	"github.com/SyedAhtsham/vistavoice-deployment/domain"
	"github.com/gin-gonic/gin"
)

// GenerateClipRequest is the parsed multipart form of one clip request.
// The frontend submits texts, voices and speeds as parallel lists; the
// fade flags are presence-based checkboxes.
type GenerateClipRequest struct {
	Segments []domain.NarrationSegment
	Silence  domain.SilenceSpec
	FadeIn   bool
	FadeOut  bool
}

func ParseGenerateClipRequest(c *gin.Context) (*GenerateClipRequest, error) {
	texts := c.PostFormArray("texts[]")
	voices := c.PostFormArray("voices[]")
	speeds := c.PostFormArray("speeds[]")

	if len(texts) == 0 {
		return nil, domain.NewError(domain.MalformedRequest, "at least one narration segment is required")
	}
	if len(texts) != len(voices) || len(texts) != len(speeds) {
		return nil, domain.NewError(domain.MalformedRequest,
			fmt.Sprintf("mismatched segment lists: %d texts, %d voices, %d speeds", len(texts), len(voices), len(speeds)))
	}

	segments := make([]domain.NarrationSegment, 0, len(texts))
	for i := range texts {
		speed, err := strconv.ParseFloat(speeds[i], 64)
		if err != nil {
			return nil, domain.NewError(domain.InvalidSegment,
				fmt.Sprintf("segment %d speed %q is not a number", i, speeds[i]))
		}
		segments = append(segments, domain.NewNarrationSegment(texts[i], voices[i], speed, i))
	}

	silence, err := parseSilence(c)
	if err != nil {
		return nil, err
	}

	_, fadeIn := c.GetPostForm("fadein")
	_, fadeOut := c.GetPostForm("fadeout")

	return &GenerateClipRequest{
		Segments: segments,
		Silence:  silence,
		FadeIn:   fadeIn,
		FadeOut:  fadeOut,
	}, nil
}

func parseSilence(c *gin.Context) (domain.SilenceSpec, error) {
	before, err := silenceField(c, "silence_before")
	if err != nil {
		return domain.SilenceSpec{}, err
	}
	between, err := silenceField(c, "silence_between")
	if err != nil {
		return domain.SilenceSpec{}, err
	}
	after, err := silenceField(c, "silence_after")
	if err != nil {
		return domain.SilenceSpec{}, err
	}
	return domain.SilenceSpec{BeforeMs: before, BetweenMs: between, AfterMs: after}, nil
}

func silenceField(c *gin.Context, name string) (int64, error) {
	raw := c.DefaultPostForm(name, "0")
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, domain.NewError(domain.MalformedRequest,
			fmt.Sprintf("%s must be a non-negative integer", name))
	}
	return value, nil
}
