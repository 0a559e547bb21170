package assembly

import (
	"context"

	"github.com/strollcast/episode-api/pkg/ffmpeg"
)

// Transferrer moves audio between HTTP object storage and local files.
// Satisfied by download.Client.
type Transferrer interface {
	DownloadToFile(ctx context.Context, url, destPath string) (int64, error)
	Upload(ctx context.Context, srcPath, url string) error
}

// Transformer concatenates and normalizes segment files into a single
// episode. Satisfied by ffmpeg.FFmpeg.
type Transformer interface {
	Concat(ctx context.Context, listFile, outputPath string, opts ffmpeg.ConcatOptions) error
}

// JobRequest describes one episode assembly job. EpisodeID labels the
// job in logs and status reporting and may be empty.
type JobRequest struct {
	EpisodeID   string
	SegmentURLs []string
	OutputURL   string
	Tags        ffmpeg.Tags
}

// JobResult reports the finished episode
type JobResult struct {
	DurationSeconds float64
	FileSizeBytes   int64
}
