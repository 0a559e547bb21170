// Package ffmpeg wraps the external ffmpeg binary for episode assembly:
// concatenating segment files, normalizing loudness to the broadcast
// target, and writing ID3 tags.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// FFmpeg wraps ffmpeg invocation
type FFmpeg struct {
	ffmpegPath string
}

// New creates a new FFmpeg instance
func New(ffmpegPath string) *FFmpeg {
	return &FFmpeg{ffmpegPath: ffmpegPath}
}

// ValidateBinary checks that the ffmpeg binary is available
func (f *FFmpeg) ValidateBinary() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}
	return nil
}

// Concat concatenates the files listed in listFile (ffmpeg concat
// demuxer format), applies loudness normalization, and writes the
// tagged MP3 to outputPath. Cancellation of ctx kills the process.
func (f *FFmpeg) Concat(ctx context.Context, listFile, outputPath string, opts ConcatOptions) error {
	args := buildConcatArgs(listFile, outputPath, opts)

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return NewProcessingError("concat", outputPath, err, stderr.String())
	}

	return nil
}

// buildConcatArgs assembles the ffmpeg argument list for a concat job
func buildConcatArgs(listFile, outputPath string, opts ConcatOptions) []string {
	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-af", fmt.Sprintf("loudnorm=I=%d:TP=%.1f:LRA=%d", opts.LoudnessTarget, opts.TruePeak, opts.LoudnessRange),
		"-c:a", "libmp3lame",
		"-b:a", opts.Bitrate,
		"-ar", fmt.Sprintf("%d", opts.SampleRate),
	}

	// Tag order is fixed so invocations are reproducible.
	for _, tag := range [...]struct{ name, value string }{
		{"title", opts.Tags.Title},
		{"artist", opts.Tags.Artist},
		{"album", opts.Tags.Album},
		{"genre", opts.Tags.Genre},
	} {
		if tag.value != "" {
			args = append(args, "-metadata", fmt.Sprintf("%s=%s", tag.name, tag.value))
		}
	}

	return append(args, "-y", outputPath)
}
