package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
	"github.com/SyedAhtsham/vistavoice-deployment/domain"
)

type ffmpegAudioDecoder struct {
	logger outbound.LoggerPort
}

// NewFFmpegAudioDecoder decodes any audio ffmpeg understands to the
// canonical PCM format, streaming through stdin/stdout so no scratch
// files are needed per clip.
func NewFFmpegAudioDecoder(logger outbound.LoggerPort) outbound.AudioDecoderPort {
	return &ffmpegAudioDecoder{
		logger: logger,
	}
}

func (d *ffmpegAudioDecoder) DecodePCM(ctx context.Context, encoded []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(domain.SampleRate),
		"-ac", strconv.Itoa(domain.Channels),
		"pipe:1")

	var out, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(encoded)
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		d.logger.ErrorWithFields(err, "ffmpeg decode failed", map[string]interface{}{
			"stderr": stderr.String(),
		})
		return nil, fmt.Errorf("ffmpeg decode: %w: %s", err, stderr.String())
	}

	pcm := out.Bytes()
	if len(pcm) == 0 {
		return nil, fmt.Errorf("ffmpeg decode produced no audio")
	}

	return pcm, nil
}
