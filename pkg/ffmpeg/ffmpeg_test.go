package ffmpeg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConcatArgs(t *testing.T) {
	opts := DefaultConcatOptions()
	opts.Tags = Tags{
		Title:  "Attention Is All You Need",
		Artist: "Strollcast",
		Album:  "Strollcast Papers",
		Genre:  "Podcast",
	}

	args := buildConcatArgs("/tmp/job/concat.txt", "/tmp/job/episode.mp3", opts)

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-f concat -safe 0 -i /tmp/job/concat.txt")
	assert.Contains(t, joined, "-af loudnorm=I=-16:TP=-1.5:LRA=11")
	assert.Contains(t, joined, "-c:a libmp3lame -b:a 128k -ar 44100")
	assert.Contains(t, joined, "-metadata title=Attention Is All You Need")
	assert.Contains(t, joined, "-metadata artist=Strollcast")
	assert.Contains(t, joined, "-metadata album=Strollcast Papers")
	assert.Contains(t, joined, "-metadata genre=Podcast")

	require.GreaterOrEqual(t, len(args), 2)
	assert.Equal(t, "-y", args[len(args)-2])
	assert.Equal(t, "/tmp/job/episode.mp3", args[len(args)-1])
}

func TestBuildConcatArgsSkipsEmptyTags(t *testing.T) {
	args := buildConcatArgs("list.txt", "out.mp3", DefaultConcatOptions())
	assert.NotContains(t, args, "-metadata")
}

func TestDefaultConcatOptions(t *testing.T) {
	opts := DefaultConcatOptions()
	assert.Equal(t, -16, opts.LoudnessTarget)
	assert.Equal(t, -1.5, opts.TruePeak)
	assert.Equal(t, 11, opts.LoudnessRange)
	assert.Equal(t, "128k", opts.Bitrate)
	assert.Equal(t, 44100, opts.SampleRate)
}

func TestValidateBinaryMissing(t *testing.T) {
	f := New("definitely-not-a-real-binary-name")
	err := f.ValidateBinary()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFFmpegNotFound)
}

func TestProcessingErrorIncludesStderr(t *testing.T) {
	err := NewProcessingError("concat", "out.mp3", assert.AnError, "Invalid data found")
	assert.Contains(t, err.Error(), "concat")
	assert.Contains(t, err.Error(), "out.mp3")
	assert.Contains(t, err.Error(), "Invalid data found")
	assert.ErrorIs(t, err, assert.AnError)
}
