// Package assembly turns a list of segment URLs into a finished,
// loudness-normalized episode: download each segment, concatenate with
// ffmpeg, probe the result, and upload it to the output URL.
package assembly

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/strollcast/episode-api/pkg/errors"
	"github.com/strollcast/episode-api/pkg/ffmpeg"
	"github.com/strollcast/episode-api/pkg/mp3"
)

// DefaultJobTimeout bounds a single assembly job end to end
const DefaultJobTimeout = 60 * time.Minute

// Service runs assembly jobs one at a time
type Service struct {
	status     *StatusTracker
	transfer   Transferrer
	transform  Transformer
	baseCtx    context.Context
	jobTimeout time.Duration
	tempDir    string
}

// NewService creates an assembly service. baseCtx is the server's
// shutdown context; a job in flight is cancelled when it closes.
func NewService(status *StatusTracker, transfer Transferrer, transform Transformer, baseCtx context.Context, opts ...Option) *Service {
	s := &Service{
		status:     status,
		transfer:   transfer,
		transform:  transform,
		baseCtx:    baseCtx,
		jobTimeout: DefaultJobTimeout,
		tempDir:    os.TempDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures the service
type Option func(*Service)

// WithJobTimeout overrides the per-job timeout
func WithJobTimeout(d time.Duration) Option {
	return func(s *Service) { s.jobTimeout = d }
}

// WithTempDir overrides the scratch directory parent
func WithTempDir(dir string) Option {
	return func(s *Service) { s.tempDir = dir }
}

// ProcessJob runs one assembly job synchronously. Validation happens
// before any status change so a bad request never disturbs the tracker.
func (s *Service) ProcessJob(ctx context.Context, req JobRequest) (*JobResult, *apperrors.AppError) {
	if len(req.SegmentURLs) == 0 {
		return nil, apperrors.ValidationError("segments", "at least one segment URL is required")
	}
	if req.OutputURL == "" {
		return nil, apperrors.MissingFieldError("output_url")
	}

	s.status.Start(req.EpisodeID, len(req.SegmentURLs))
	log.Printf("[INFO] Assembling episode %s from %d segments", req.EpisodeID, len(req.SegmentURLs))

	jobCtx, cancel := context.WithTimeout(ctx, s.jobTimeout)
	defer cancel()
	if s.baseCtx != nil {
		stop := context.AfterFunc(s.baseCtx, cancel)
		defer stop()
	}

	workDir := filepath.Join(s.tempDir, "assemble-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return s.fail(apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create scratch directory"))
	}
	defer os.RemoveAll(workDir)

	localPaths, appErr := s.downloadSegments(jobCtx, workDir, req.SegmentURLs)
	if appErr != nil {
		return s.fail(appErr)
	}

	listFile := filepath.Join(workDir, "concat.txt")
	if err := writeConcatList(listFile, localPaths); err != nil {
		return s.fail(apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to write concat list"))
	}

	outputPath := filepath.Join(workDir, "episode.mp3")
	opts := ffmpeg.DefaultConcatOptions()
	opts.Tags = req.Tags
	if err := s.transform.Concat(jobCtx, listFile, outputPath, opts); err != nil {
		if jobCtx.Err() != nil {
			return s.fail(apperrors.CancelledError("concat", jobCtx.Err()))
		}
		return s.fail(apperrors.Wrap(err, apperrors.ErrCodeTransformFailed, "audio concatenation failed"))
	}

	duration, err := mp3.ProbeFile(outputPath)
	if err != nil {
		log.Printf("[WARN] Duration probe failed for episode %s: %v", req.EpisodeID, err)
		duration = 0
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return s.fail(apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to stat output file"))
	}

	if err := s.transfer.Upload(jobCtx, outputPath, req.OutputURL); err != nil {
		if jobCtx.Err() != nil {
			return s.fail(apperrors.CancelledError("upload", jobCtx.Err()))
		}
		return s.fail(apperrors.Wrap(err, apperrors.ErrCodeUploadFailed, "failed to upload episode"))
	}

	log.Printf("[INFO] Episode %s assembled: %.1fs, %d bytes", req.EpisodeID, duration, info.Size())
	s.status.Reset()

	return &JobResult{
		DurationSeconds: duration,
		FileSizeBytes:   info.Size(),
	}, nil
}

// Status returns the current job status
func (s *Service) Status() JobStatus {
	return s.status.Snapshot()
}

// downloadSegments fetches each segment sequentially, checking for
// cancellation between downloads
func (s *Service) downloadSegments(ctx context.Context, workDir string, urls []string) ([]string, *apperrors.AppError) {
	paths := make([]string, 0, len(urls))

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.CancelledError("download", err)
		}

		dest := filepath.Join(workDir, fmt.Sprintf("segment_%04d.mp3", i))
		if _, err := s.transfer.DownloadToFile(ctx, url, dest); err != nil {
			if ctx.Err() != nil {
				return nil, apperrors.CancelledError("download", ctx.Err())
			}
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeDownloadFailed, "failed to download segment %d", i)
		}

		paths = append(paths, dest)
		s.status.IncrementDownloaded()
	}

	return paths, nil
}

// fail records the error on the tracker and passes it through
func (s *Service) fail(err *apperrors.AppError) (*JobResult, *apperrors.AppError) {
	log.Printf("[WARN] Assembly failed: %v", err)
	s.status.SetError(err.Message)
	return nil, err
}

// writeConcatList writes an ffmpeg concat demuxer list file
func writeConcatList(listFile string, paths []string) error {
	var b []byte
	for _, p := range paths {
		b = append(b, fmt.Sprintf("file '%s'\n", p)...)
	}
	return os.WriteFile(listFile, b, 0644)
}
