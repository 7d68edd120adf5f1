package transcode

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ConvertedSuffix is appended to the source path to derive the output path.
const ConvertedSuffix = ".wav"

// Converter normalizes uploaded audio into 16 kHz mono PCM WAV, the format
// the transcription API accepts most reliably.
type Converter struct {
	Binary string
}

// NewConverter returns a Converter running the given ffmpeg binary, or
// "ffmpeg" from PATH when empty.
func NewConverter(binary string) *Converter {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Converter{Binary: binary}
}

// OutputPath derives the converted file location for a source path.
func (c *Converter) OutputPath(src string) string {
	return src + ConvertedSuffix
}

// Convert executes ffmpeg against src and writes the normalized audio to
// dst. The combined ffmpeg output is folded into the returned error.
func (c *Converter) Convert(ctx context.Context, src, dst string) error {
	src = strings.TrimSpace(src)
	if src == "" {
		return errors.New("transcode: empty source path")
	}
	dst = strings.TrimSpace(dst)
	if dst == "" {
		return errors.New("transcode: empty destination path")
	}

	cmd := exec.CommandContext(ctx, c.Binary, convertArgs(src, dst)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("transcode: %w: %s", err, tail(string(output), 512))
	}
	return nil
}

func convertArgs(src, dst string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", src,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dst,
	}
}

func tail(s string, limit int) string {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) <= limit {
		return trimmed
	}
	return "..." + trimmed[len(trimmed)-limit:]
}
