package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

// fadeSeconds is the fixed ramp applied at either end of the artifact
// when requested.
const fadeSeconds = 0.6

const outputFps = 30

type ffmpegVideoEncoder struct {
	logger outbound.LoggerPort
}

func NewFFmpegVideoEncoder(logger outbound.LoggerPort) outbound.VideoEncoderPort {
	return &ffmpegVideoEncoder{
		logger: logger,
	}
}

func (e *ffmpegVideoEncoder) Compose(ctx context.Context, req outbound.ComposeVideoRequest) error {
	args := buildComposeArgs(req)

	e.logger.Debug("ffmpeg " + strings.Join(args, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.ErrorWithFields(err, "ffmpeg compose failed", map[string]interface{}{
			"output": req.OutputPath,
			"stderr": stderr.String(),
		})
		return domain.WrapError(domain.EncodingFailed, "muxing video artifact",
			fmt.Errorf("%w: %s", err, stderr.String()))
	}

	return nil
}

// fadeDuration clamps the fixed fade to half the total duration so a
// short artifact still composes instead of failing.
func fadeDuration(totalMs int64) float64 {
	half := float64(totalMs) / 2000
	if fadeSeconds > half {
		return half
	}
	return fadeSeconds
}

func buildComposeArgs(req outbound.ComposeVideoRequest) []string {
	totalSeconds := float64(req.DurationMs) / 1000

	// libx264 requires even dimensions; uploaded images are arbitrary.
	videoFilters := []string{"scale=trunc(iw/2)*2:trunc(ih/2)*2"}
	audioFilters := make([]string, 0, 2)

	fade := fadeDuration(req.DurationMs)
	if req.FadeIn {
		videoFilters = append(videoFilters, fmt.Sprintf("fade=t=in:st=0:d=%.3f", fade))
		audioFilters = append(audioFilters, fmt.Sprintf("afade=t=in:st=0:d=%.3f", fade))
	}
	if req.FadeOut {
		start := totalSeconds - fade
		videoFilters = append(videoFilters, fmt.Sprintf("fade=t=out:st=%.3f:d=%.3f", start, fade))
		audioFilters = append(audioFilters, fmt.Sprintf("afade=t=out:st=%.3f:d=%.3f", start, fade))
	}
	videoFilters = append(videoFilters, "format=yuv420p")

	args := []string{
		"-hide_banner", "-loglevel", "error",
		"-loop", "1",
		"-i", req.ImagePath,
		"-f", "s16le",
		"-ar", strconv.Itoa(domain.SampleRate),
		"-ac", strconv.Itoa(domain.Channels),
		"-i", req.AudioPCMPath,
		"-t", fmt.Sprintf("%.3f", totalSeconds),
		"-vf", strings.Join(videoFilters, ","),
	}
	if len(audioFilters) > 0 {
		args = append(args, "-af", strings.Join(audioFilters, ","))
	}
	args = append(args,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-r", strconv.Itoa(outputFps),
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "faststart",
		"-y", req.OutputPath,
	)

	return args
}
